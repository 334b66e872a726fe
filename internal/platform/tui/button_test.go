package tui

import (
	"testing"
	"time"

	"github.com/ImplFerris/pico-rex/internal/config"
)

func TestHoldButton(t *testing.T) {
	now := time.Unix(0, 0)
	b := NewHoldButton(100 * time.Millisecond)
	b.now = func() time.Time { return now }

	if b.Active() {
		t.Fatal("a new button must be released")
	}

	b.Press()
	tests := []struct {
		elapsed time.Duration
		active  bool
	}{
		{0, true},
		{50 * time.Millisecond, true},
		{99 * time.Millisecond, true},
		{100 * time.Millisecond, false},
		{time.Second, false},
	}
	start := now
	for _, tc := range tests {
		now = start.Add(tc.elapsed)
		if got := b.Active(); got != tc.active {
			t.Errorf("after %v: Active() = %v, expected %v", tc.elapsed, got, tc.active)
		}
	}

	now = start
	b.Press()
	b.Release()
	if b.Active() {
		t.Error("Release() must drop the button")
	}
}

func TestHoldButtonLatchesTap(t *testing.T) {
	now := time.Unix(0, 0)
	b := NewHoldButton(100 * time.Millisecond)
	b.now = func() time.Time { return now }

	// A tap sampled only after its window expired still counts once.
	b.Press()
	now = now.Add(time.Second)
	if !b.Active() {
		t.Fatal("a press must be seen by the next sample")
	}
	if b.Active() {
		t.Error("the latch must be consumed by the first sample")
	}
}

func TestHoldWindow(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	tests := []struct {
		name      string
		holdPolls int
		poll      time.Duration
		expected  time.Duration
	}{
		{"defaults", 2, 50 * time.Millisecond, 100 * time.Millisecond},
		{"slow polling", 2, 200 * time.Millisecond, 400 * time.Millisecond},
		{"single poll reset", 0, 50 * time.Millisecond, 50 * time.Millisecond},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg.Reset.HoldPolls = tc.holdPolls
			cfg.Timing.Poll = tc.poll
			if got := HoldWindow(cfg); got != tc.expected {
				t.Errorf("HoldWindow() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
