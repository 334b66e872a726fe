// Package tui hosts the runner game in a terminal with Bubble Tea.
// It maps keys to the jump button, schedules ticks and presents the
// framebuffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after wait.
// The game decides each wait, so ticks are scheduled one at a time.
func tickCmd(wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
