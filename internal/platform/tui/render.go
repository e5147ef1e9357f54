package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-rock/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorShip:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorHitbox:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBlock:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBlockEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorScore:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorHint:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Faint(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
