// flappy is a terminal Flappy Bird duel against autopiloted birds.
//
// Usage:
//
//	flappy list              - List available variants
//	flappy play [game]       - Play a variant (default: flappy)
//	flappy menu              - Start menu to pick variants interactively
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the built-in configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: config tick_rate)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom YAML config
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Duel - Fly through pipes in your terminal",
	Long: `Flappy Duel is a terminal Flappy Bird clone. You steer a bird through
gaps in scrolling pipes while autopiloted birds race the same course.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive picker with the session leaderboard
  serve    - Start SSH server for remote play
  config   - Print the built-in configuration

Examples:
  flappy play
  flappy play flappy_solo --seed 42
  flappy menu --fps 30
  flappy serve --ssh :2222`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// main logs the error itself
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second), overrides the config")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom flappy config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig validates the configuration up front so a broken --config file
// is reported before the alt-screen takes over the terminal.
func loadConfig() (config.FlappyConfig, error) {
	return flappy.LoadConfig(flagConfig)
}

// runtimeConfig builds the runtime config from the terminal size, flags and
// the loaded configuration. --fps wins over the config's tick_rate only when
// given explicitly.
func runtimeConfig(cmd *cobra.Command, fc config.FlappyConfig) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.TickRate = fc.Runtime.TickRate
	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}

	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	cfg.Player = os.Getenv("USER")
	return cfg
}
