package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-archipelago/internal/core"
	"github.com/vovakirdan/tui-archipelago/internal/render"
)

// colorStyles maps core.Color to lipgloss styles over the HSLuv palette.
var colorStyles = buildColorStyles()

var (
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(render.Hex(core.ColorText))).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(render.Hex(core.ColorBeach)))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(render.Hex(core.ColorMuted)))
)

func buildColorStyles() map[core.Color]lipgloss.Style {
	palette := render.Palette()
	styles := make(map[core.Color]lipgloss.Style, len(palette))
	for c, hex := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	styles[core.ColorDefault] = lipgloss.NewStyle()
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
