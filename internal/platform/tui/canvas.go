package tui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
)

// Glyphs used to draw the playfield.
const (
	FillGlyph = '█'
	BallGlyph = '●'
)

// cellCanvas draws the logical canvas onto a core.Screen, scaling logical
// units to cells. It implements breakout.Canvas.
type cellCanvas struct {
	screen   *core.Screen
	logicalW float64
	logicalH float64
	top      int // Terminal row of the screen's first line
	colors   *quantizer

	handlers map[int]breakout.InputHandler
	nextID   int
}

func newCellCanvas(screen *core.Screen, logicalW, logicalH float64, top int) *cellCanvas {
	return &cellCanvas{
		screen:   screen,
		logicalW: logicalW,
		logicalH: logicalH,
		top:      top,
		colors:   newQuantizer(),
		handlers: make(map[int]breakout.InputHandler),
	}
}

func (c *cellCanvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / c.logicalW, float64(c.screen.Height()) / c.logicalH
}

// cellRect converts a logical rectangle to cells, at least one cell in each
// direction, clipped to the screen.
func (c *cellCanvas) cellRect(x, y, w, h float64) core.Rect {
	sx, sy := c.scale()
	x0 := int(math.Round(x * sx))
	y0 := int(math.Round(y * sy))
	x1 := max(int(math.Round((x+w)*sx)), x0+1)
	y1 := max(int(math.Round((y+h)*sy)), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0).Intersect(c.screen.Bounds())
}

// Clear fills the screen with the background. Black leaves the terminal's
// own background showing.
func (c *cellCanvas) Clear(col color.RGBA) {
	code := c.colors.Quantize(col)
	if code == black {
		c.screen.Clear()
		return
	}
	c.screen.Fill(FillGlyph, code)
}

func (c *cellCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	r := c.cellRect(x, y, w, h)
	if r.Empty() {
		return
	}
	c.screen.DrawRect(r, FillGlyph, c.colors.Quantize(col))
}

// FillCircle draws every cell whose center lies inside the circle, or a
// single ball glyph when the circle is smaller than a cell.
func (c *cellCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	code := c.colors.Quantize(col)
	sx, sy := c.scale()

	drawn := false
	bounds := c.cellRect(cx-r, cy-r, 2*r, 2*r)
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			dx := (float64(x)+0.5)/sx - cx
			dy := (float64(y)+0.5)/sy - cy
			if dx*dx+dy*dy <= r*r {
				c.screen.SetCell(x, y, FillGlyph, code)
				drawn = true
			}
		}
	}
	if !drawn {
		c.screen.SetCell(int(cx*sx), int(cy*sy), BallGlyph, code)
	}
}

// Bounds returns the screen's position in terminal cells.
func (c *cellCanvas) Bounds() breakout.Bounds {
	return breakout.Bounds{
		Left:   0,
		Top:    float64(c.top),
		Width:  float64(c.screen.Width()),
		Height: float64(c.screen.Height()),
	}
}

func (c *cellCanvas) Attach(h breakout.InputHandler) func() {
	id := c.nextID
	c.nextID++
	c.handlers[id] = h
	return func() { delete(c.handlers, id) }
}

// dispatch delivers ev to the attached handlers.
func (c *cellCanvas) dispatch(ev breakout.InputEvent) bool {
	consumed := false
	for _, h := range c.handlers {
		if h(ev) {
			consumed = true
		}
	}
	return consumed
}

// toDeviceX converts a logical x-coordinate to terminal columns.
func (c *cellCanvas) toDeviceX(logicalX float64) float64 {
	b := c.Bounds()
	return b.Left + logicalX*b.Width/c.logicalW
}
