package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/recycle-run/internal/core"
)

// Palette maps each screen color role to a terminal style.
type Palette map[core.Color]lipgloss.Style

func fg(light, dark string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: light, Dark: dark})
}

// DefaultPalette works on both light and dark terminal backgrounds.
func DefaultPalette() Palette {
	return Palette{
		core.ColorDefault:    lipgloss.NewStyle(),
		core.ColorFrame:      fg("240", "245"),
		core.ColorHUD:        fg("0", "15").Bold(true),
		core.ColorTerrain:    fg("94", "250"),
		core.ColorMover:      fg("31", "45"),
		core.ColorPlayer:     fg("0", "15").Bold(true),
		core.ColorPlayerHurt: fg("160", "196").Bold(true),
		core.ColorBarrel:     fg("130", "208"),
		core.ColorAcid:       fg("142", "226"),
		core.ColorRecyclable: fg("25", "51"),
		core.ColorBinLocked:  fg("136", "220"),
		core.ColorBinOpen:    fg("28", "46").Bold(true),
		core.ColorMessage:    fg("90", "213"),
	}
}

var defaultPalette = DefaultPalette()

// RenderScreen renders a Screen with the default palette.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}

// Render converts a Screen buffer to a styled string. Runs of cells that
// share a color are styled together to keep escape sequences few.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(p.style(current).Render(run.String()))
				run.Reset()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(p.style(current).Render(run.String()))
		run.Reset()
	}
	return sb.String()
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if st, ok := p[c]; ok {
		return st
	}
	return p[core.ColorDefault]
}
