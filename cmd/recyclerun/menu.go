package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/recycle-run/internal/games/recycle"
	"github.com/vovakirdan/recycle-run/internal/platform/tui"
	"github.com/vovakirdan/recycle-run/internal/registry"
	"github.com/vovakirdan/recycle-run/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode and difficulty picker",
	Long: `Start Recycle Run in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a mode and then a
difficulty. After a run ends, quit back to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Tab          - Scoreboard
  Q            - Quit

Examples:
  recyclerun menu
  recyclerun menu --fps 30
  recyclerun menu --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit || (menuResult.GameID == "" && !menuResult.WantsScoreboard) {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("scoreboard: %w", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "mode", menuResult.GameID, "err", err)
			continue
		}
		if g, ok := game.(*recycle.Game); ok {
			g.SetDifficulty(string(menuResult.Difficulty))
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Info("starting run", "mode", menuResult.GameID, "difficulty", menuResult.Difficulty, "seed", cfg.Seed)
		if err := tui.Run(game, store, cfg, logger); err != nil {
			logger.Error("game ended with error", "err", err)
		}

		// Loop back to menu
	}
}
