package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: flappy).

Controls:
  Space/Up/W/Click  - Flap (also restarts after game over)
  R                 - Restart (after game over)
  Esc/B, Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play flappy_solo
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "flappy"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flappy list' to see available games", gameID)
	}

	fc, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := runtimeConfig(cmd, fc)

	game, err := registry.Create(gameID, fc)
	if err != nil {
		return err
	}

	// The ledger is optional: the game still works without it
	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("session ledger unavailable", "err", err)
		ledger = nil
	}

	logger.Debug("starting game", "game", gameID, "tick_rate", cfg.TickRate, "seed", cfg.Seed)
	runErr := tui.Run(game, tui.Services{Ledger: ledger, Logger: logger, Games: fc}, cfg)

	if ledger != nil {
		if best, bestErr := ledger.Best(gameID); bestErr == nil && best > 0 {
			logger.Info("session over", "game", gameID, "best", best)
		}
		ledger.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
