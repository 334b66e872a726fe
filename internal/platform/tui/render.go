package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ImplFerris/pico-rex/internal/core"
	"github.com/ImplFerris/pico-rex/internal/games/dino"
)

// stateStyles maps game phases to the frame style. The display is
// monochrome, so one color per phase tints the whole frame.
var stateStyles = map[dino.GameState]lipgloss.Style{
	dino.Playing: lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("10")),
	dino.GameOver: lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("9")),
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderScreen converts the presented frame to a bordered block, tinted by
// game phase.
func RenderScreen(s *core.Screen, state dino.GameState) string {
	style, ok := stateStyles[state]
	if !ok {
		style = stateStyles[dino.Playing]
	}

	rows := make([]string, s.Rows())
	for row := range rows {
		rows[row] = s.Row(row)
	}
	return style.Render(strings.Join(rows, "\n"))
}
