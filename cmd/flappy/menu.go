package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run you return to the menu to play again. The session
leaderboard lists every run finished since the menu was opened;
it is gone once the program exits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Next game (leaderboard)
  Esc/B        - Back to menu
  Q            - Quit

Examples:
  flappy menu
  flappy menu --fps 30`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	fc, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := runtimeConfig(cmd, fc)

	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("session ledger unavailable", "err", err)
		ledger = nil
	}
	if ledger != nil {
		defer ledger.Close()
	}

	return tui.RunSession(tui.Services{Ledger: ledger, Logger: logger, Games: fc}, cfg)
}
