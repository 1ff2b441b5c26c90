package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/snackrun/internal/core"
)

// cellStyle identifies the colours of a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// style converts cell colours to a lipgloss style. Unset colours keep the
// terminal default.
func (cs cellStyle) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if !cs.fg.IsZero() {
		st = st.Foreground(lipgloss.Color(cs.fg.Hex()))
	}
	if !cs.bg.IsZero() {
		st = st.Background(lipgloss.Color(cs.bg.Hex()))
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			st, ok := styles[start]
			if !ok {
				st = start.style()
				styles[start] = st
			}
			sb.WriteString(st.Render(run.String()))
		}
	}
	return sb.String()
}
