//go:build ebiten

package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/session"
)

var borderColor = color.RGBA{R: 24, G: 24, B: 27, A: 255}

// imageSurface draws the game onto an offscreen image in logical units.
type imageSurface struct {
	img *ebiten.Image
}

func (s *imageSurface) Clear(c color.RGBA) {
	s.img.Fill(c)
}

func (s *imageSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *imageSurface) FillCircle(cx, cy, r float64, c color.RGBA) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

// app adapts the session bridge to the ebiten.Game interface.
type app struct {
	*imageSurface
	frames  frameQueue
	inputs  handlerSet
	pointer pointerTracker

	bridge *session.Bridge
	layout breakout.Layout
	bounds breakout.Bounds
	logger *log.Logger

	touchIDs []ebiten.TouchID
	status   string
}

func newApp(opts Options) *app {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &app{
		imageSurface: &imageSurface{
			img: ebiten.NewImage(int(opts.Layout.CanvasWidth), int(opts.Layout.CanvasHeight)),
		},
		layout: opts.Layout,
		logger: logger,
	}
	a.bridge = session.New(a, &a.frames, session.Options{
		Layout:  opts.Layout,
		Palette: opts.Palette,
		Store:   opts.Store,
		Logger:  logger,
		Host:    "window",
	})
	a.bridge.Open()
	return a
}

// Bounds returns where the canvas sits in the window, in window pixels.
func (a *app) Bounds() breakout.Bounds {
	return a.bounds
}

// Attach registers an input handler.
func (a *app) Attach(h breakout.InputHandler) func() {
	return a.inputs.Attach(h)
}

// Update handles keys, polls the pointer and runs due frames.
func (a *app) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		a.bridge.Close()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.status = ""
		if err := a.bridge.StartGame(); err != nil {
			a.status = err.Error()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.bridge.Close()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		a.bridge.Open()
	}

	cx, cy := ebiten.CursorPosition()
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	touches := make([]breakout.Point, 0, len(a.touchIDs))
	for _, id := range a.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		touches = append(touches, breakout.Point{X: float64(tx), Y: float64(ty)})
	}
	// Ebiten has no default touch scroll to cancel; consumed is unused.
	for _, ev := range a.pointer.events(cx, cy, touches) {
		a.inputs.dispatch(ev)
	}

	a.frames.flush()
	return nil
}

// Draw letterboxes the canvas into the window and prints the HUD.
func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(borderColor)

	if a.bounds.Width > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(a.bounds.Width/a.layout.CanvasWidth, a.bounds.Height/a.layout.CanvasHeight)
		op.GeoM.Translate(a.bounds.Left, a.bounds.Top)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(a.img, op)
	}

	var hud string
	switch a.bridge.Phase() {
	case session.PhasePlaying:
		hud = fmt.Sprintf("SCORE %d  BEST %d", a.bridge.Score(), max(a.bridge.Best(), a.bridge.Score()))
	case session.PhaseIntro:
		hud = fmt.Sprintf("BRICK BREAKER  enter: start  esc: close  q: quit  best %d", a.bridge.Best())
	default:
		hud = fmt.Sprintf("last run %d  best %d  g: open  enter: play  q: quit", a.bridge.LastScore(), a.bridge.Best())
	}
	if a.status != "" {
		hud += "  " + a.status
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 4)
}

// Layout uses the full window and recomputes the letterbox.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.bounds = letterbox(outsideWidth, outsideHeight, a.layout.CanvasWidth, a.layout.CanvasHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if err := opts.Layout.Validate(); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	a := newApp(opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = "Brick Breaker"
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	ebiten.SetWindowSize(int(opts.Layout.CanvasWidth*scale), int(opts.Layout.CanvasHeight*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
