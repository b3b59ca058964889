package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the built-in configuration",
	Long: `Prints the embedded default YAML for a variant (default: flappy).

Save it as ~/.flappy/flappy.yaml or pass it with --config after editing.

Examples:
  flappy config > ~/.flappy/flappy.yaml
  flappy config flappy_solo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, args []string) error {
	gameID := "flappy"
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no built-in config for %q", gameID)
	}
	_, err := os.Stdout.Write(data)
	return err
}
