package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// colorStyles caches one lipgloss style per ANSI color code.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
}

func styleFor(c core.Color) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(int(c))))
		colorStyles[c] = style
	}
	return style
}

// RenderScreen turns the cell buffer into styled terminal lines. Each run of
// same-colored cells is rendered with one style.
func RenderScreen(s *core.Screen) string {
	lines := make([]string, s.Height())
	run := make([]rune, 0, s.Width())

	for y := range lines {
		var line strings.Builder
		run = run[:0]
		runColor := s.GetCell(0, y).Color

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				line.WriteString(styleFor(runColor).Render(string(run)))
				run, runColor = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			line.WriteString(styleFor(runColor).Render(string(run)))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
