package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/games/recycle"
)

var (
	flagConfigDefaults bool
	flagConfigEndless  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a new run would use as YAML, after the search
order (--config, ~/.arcade/configs/recycle.yaml, ./configs/recycle.yaml,
built-in defaults) and the --difficulty preset are applied.

Redirect the output to start a custom config file.

Examples:
  recyclerun config
  recyclerun config --difficulty hard
  recyclerun config --defaults > ~/.arcade/configs/recycle.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults document")
	configCmd.Flags().BoolVar(&flagConfigEndless, "endless", false, "Show the endless mode configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	mode := recycle.ModeCampaign
	if flagConfigEndless {
		mode = recycle.ModeEndless
	}
	cfg, err := recycle.EffectiveConfig(mode)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
