// recyclerun is a terminal platformer: collect recyclables, dodge
// hazards and carry them home to the recycling bin.
//
// Usage:
//
//	recyclerun list              - List available modes
//	recyclerun play [mode]       - Play a mode (default: recycle)
//	recyclerun menu              - Start menu to pick mode and difficulty
//	recyclerun serve             - Start SSH server for remote play
//	recyclerun scores [mode]     - Show the best runs for a mode
//	recyclerun sim               - Run the autopilot headless and print a summary
//	recyclerun config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/recyclerun.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--watch               - Reload --config when it changes
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log destination for TUI commands
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/recycle-run/internal/config"
	"github.com/vovakirdan/recycle-run/internal/games/recycle"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recyclerun",
	Short: "Recycle Run - a recycling platformer for your terminal",
	Long: `Recycle Run is a terminal platformer. Collect enough recyclables to
unlock the recycling bin, dodge rolling barrels and battery acid, and
reach the bin to clear the level.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View the best runs
  sim      - Headless autopilot runs for balancing
  config   - Print the effective configuration

Examples:
  recyclerun play
  recyclerun play recycle_endless --difficulty hard
  recyclerun menu
  recyclerun serve --ssh :2222
  recyclerun sim --runs 20 --seed 7`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/recyclerun.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload --config when the file changes (applies next level)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/recyclerun.log", "Log file for play and menu")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags validates the shared game flags and hands them to the game package.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagWatch && flagConfig == "" {
		return fmt.Errorf("--watch needs --config")
	}

	recycle.SetConfigPath(flagConfig)
	recycle.SetDifficultyPreset(flagDifficulty)
	recycle.SetWatchConfig(flagWatch)
	return nil
}

// newLogger builds the process logger. TUI commands log to --log-file so
// the alternate screen stays clean; the returned func closes that file.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		path, err := expandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "recyclerun",
		Level:           level,
	})
	recycle.SetLogger(logger)
	return logger, closeFn, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
