package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ImplFerris/pico-rex/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The file is searched in this order:
  1. --config <path>
  2. ~/.picorex/runner.yaml
  3. ./configs/runner.yaml
  4. built-in defaults

Examples:
  picorex config
  picorex config --defaults > ~/.picorex/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
