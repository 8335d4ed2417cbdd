package tui

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// xterm holds the 240 theme-independent entries of the xterm 256-color
// palette (indices 16..255): the 6x6x6 cube followed by the gray ramp.
var xterm = func() [240]colorful.Color {
	var p [240]colorful.Color
	levels := [6]float64{0, 95, 135, 175, 215, 255}
	i := 0
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				p[i] = colorful.Color{R: levels[r] / 255, G: levels[g] / 255, B: levels[b] / 255}
				i++
			}
		}
	}
	for n := range 24 {
		v := float64(8+10*n) / 255
		p[i] = colorful.Color{R: v, G: v, B: v}
		i++
	}
	return p
}()

// quantizer maps RGBA colors to the nearest xterm color in CIE Lab space,
// remembering previous answers.
type quantizer struct {
	cache map[color.RGBA]core.Color
}

func newQuantizer() *quantizer {
	return &quantizer{cache: make(map[color.RGBA]core.Color)}
}

// Quantize returns the ANSI-256 code closest to c. It never returns
// core.ColorDefault, so pure black maps to 16.
func (q *quantizer) Quantize(c color.RGBA) core.Color {
	if code, ok := q.cache[c]; ok {
		return code
	}

	target := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	best, bestDist := 0, -1.0
	for i, p := range xterm {
		d := target.DistanceLab(p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	code := core.Color(16 + best) //#nosec G115 -- index < 240
	q.cache[c] = code
	return code
}

// black is the xterm cube entry for #000000.
const black core.Color = 16
