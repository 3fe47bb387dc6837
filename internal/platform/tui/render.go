package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockout/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. The palette leans on the
// 256-color cube so the ores read right on most terminals.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorGrass:     lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
	core.ColorGrassDark: lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	core.ColorDirt:      lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorStone:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWood:      lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorIron:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorGold:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorRedstone:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorLapis:     lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	core.ColorEmerald:   lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
	core.ColorDiamond:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorBedrock:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorInk:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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
