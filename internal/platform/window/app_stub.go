//go:build !ebiten

package window

// Run reports that window support was not compiled in.
func Run(Options) error {
	return ErrNoWindow
}
