// picorex runs a trex runner game on a 128x64 monochrome framebuffer.
//
// Usage:
//
//	picorex play             - Play in the terminal
//	picorex sim              - Run a headless autopilot game and print the last frame
//	picorex config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Runner config YAML (default: search ~/.picorex and ./configs)
//	--seed <value>     - RNG seed for reproducible obstacles (0 = time based)
//	--debug            - Log game events at debug level
//	--log-file <path>  - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ImplFerris/pico-rex/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "picorex",
	Short: "Pico Rex - a trex runner for tiny screens",
	Long: `Pico Rex is a runner game built for a 128x64 monochrome display:
a trex jumps over cacti scrolling in from the right.

Available commands:
  play     - Play in the terminal
  sim      - Headless autopilot run
  config   - Print the effective configuration

Examples:
  picorex play
  picorex play --fps 30 --seed 42
  picorex sim --frames 500 --seed 7
  picorex config --config ./configs/runner.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runner config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log game events at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the runner config from --config or the search path.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newRNG seeds the obstacle picker from --seed, or the clock when unset.
func newRNG() (*rand.Rand, int64) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// newLogger creates the process logger. Output goes to --log-file when set,
// otherwise to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "picorex",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
