package breakout

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

// Surface is a fixed-resolution drawing target in logical canvas units.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
}

// Palette holds the colors of each drawn element.
type Palette struct {
	Background color.RGBA
	Paddle     color.RGBA
	Ball       color.RGBA
	Brick      color.RGBA
}

// DefaultPalette returns black background, cyan paddle, white ball and blue bricks.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0x00, 0x00, 0x00, 0xff},
		Paddle:     color.RGBA{0x00, 0xf2, 0xff, 0xff},
		Ball:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		Brick:      color.RGBA{0x3b, 0x82, 0xf6, 0xff},
	}
}

// ParsePalette parses "#rrggbb" strings into a Palette.
func ParsePalette(pc config.PaletteConfig) (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", pc.Background, &p.Background},
		{"paddle", pc.Paddle, &p.Paddle},
		{"ball", pc.Ball, &p.Ball},
		{"brick", pc.Brick, &p.Brick},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("breakout: invalid %s color %q: %w", f.name, f.hex, err)
		}
		r, g, b := c.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p, nil
}

// Render paints the state onto dst: background, paddle, ball, then every
// active brick. It keeps nothing between calls.
func Render(dst Surface, s *State, p Palette) {
	dst.Clear(p.Background)
	dst.FillRect(s.Paddle.X, s.Paddle.Y, s.Paddle.Width, s.Paddle.Height, p.Paddle)
	dst.FillCircle(s.Ball.X, s.Ball.Y, s.Ball.Radius, p.Ball)
	for _, b := range s.Bricks {
		if b.Active() {
			dst.FillRect(b.X, b.Y, b.Width, b.Height, p.Brick)
		}
	}
}
