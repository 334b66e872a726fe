package tui

import (
	"time"

	"github.com/ImplFerris/pico-rex/internal/config"
)

// HoldWindow returns how long one key press keeps the button active. It
// spans at most reset.hold_polls poll waits, so a single tap can never
// satisfy the reset gesture; terminal key repeat refreshes the window
// while a key is held down.
func HoldWindow(cfg config.RunnerConfig) time.Duration {
	polls := max(cfg.Reset.HoldPolls, 1)
	return time.Duration(polls) * cfg.Timing.Poll
}

// HoldButton turns key presses into a held digital button. Terminals report
// presses but never releases, so each press keeps the button active for a
// short window. A press is also latched until the next sample, so a tap
// between two frames is never lost.
type HoldButton struct {
	window  time.Duration
	until   time.Time
	pending bool
	now     func() time.Time
}

// NewHoldButton creates a released button with the given hold window.
func NewHoldButton(window time.Duration) *HoldButton {
	return &HoldButton{window: window, now: time.Now}
}

// Press marks the button active for one hold window from now.
func (b *HoldButton) Press() {
	b.until = b.now().Add(b.window)
	b.pending = true
}

// Release drops the button immediately.
func (b *HoldButton) Release() {
	b.until = time.Time{}
	b.pending = false
}

// Active reports whether a press is latched or still within its window.
// Sampling consumes the latch.
func (b *HoldButton) Active() bool {
	if b.pending {
		b.pending = false
		return true
	}
	return b.now().Before(b.until)
}
