package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/recycle-run/internal/core"
	"github.com/vovakirdan/recycle-run/internal/platform/tui"
	"github.com/vovakirdan/recycle-run/internal/registry"
	"github.com/vovakirdan/recycle-run/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Recycle Run",
	Long: `Start playing the given mode (recycle or recycle_endless).

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump (also continues after a cleared level)
  Enter            - Continue after a cleared level
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, fewer hazards, longer jump forgiveness
  normal - 3 lives, the configured progression
  hard   - 2 lives, more hazards, a bigger quota
  fixed  - No progression, every level plays like level 1

Examples:
  recyclerun play
  recyclerun play recycle_endless
  recyclerun play --difficulty hard
  recyclerun play --config ./my-recycle.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "recycle"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'recyclerun list' to see available modes", gameID)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting run", "mode", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
