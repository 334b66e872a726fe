package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ImplFerris/pico-rex/internal/platform/tui"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Each character cell shows two pixel rows, so the 128x64 screen needs a
terminal of about 130x36.

Controls:
  Space/Up   - Jump (hold after game over to restart)
  ?          - Show all keys
  Ctrl+S     - Save a text screenshot to ~/.picorex/screenshots
  Q/Ctrl+C   - Quit

Examples:
  picorex play
  picorex play --fps 20
  picorex play --debug --log-file picorex.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Override the frame rate (0 = use config timing)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.Timing.Frame = time.Second / time.Duration(flagFPS)
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Frame border adds two columns and two rows; status and help add two more.
	needW := cfg.Screen.Width + 2
	needH := (cfg.Screen.Height+1)/2 + 4
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d and will be clipped\n", w, h, needW, needH)
	}

	rng, seed := newRNG()
	logger.Info("starting game", "seed", seed, "frame", cfg.Timing.Frame)

	if err := tui.Run(cfg, rng, logger); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorView(err))
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
