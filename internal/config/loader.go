package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// LoadFlappy loads the flappy configuration. Autopilot seats must lie in
// [0, fieldWidth).
// Search order: customPath -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped silently when unusable.
func LoadFlappy(customPath string, fieldWidth int) (FlappyConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(fieldWidth); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate(fieldWidth) == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses a single YAML file.
func loadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults, so a file only
// needs to mention the keys it changes.
func parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}

// Validate reports every problem in the configuration. Seat positions are
// checked against fieldWidth, which the simulation owns.
func (c FlappyConfig) Validate(fieldWidth int) error {
	var errs []error

	if c.Runtime.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be positive, got %d", c.Runtime.TickRate))
	}

	palette := map[string]string{
		"palette.background": c.Palette.Background,
		"palette.obstacle":   c.Palette.Obstacle,
		"palette.player":     c.Palette.Player,
		"palette.text":       c.Palette.Text,
	}
	for key, name := range palette {
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	for i, seat := range c.Roster.Autopilots {
		if seat.X < 0 || seat.X >= fieldWidth {
			errs = append(errs, fmt.Errorf("roster.autopilots[%d].x must be within [0, %d), got %d", i, fieldWidth, seat.X))
		}
		if _, err := core.ParseColor(seat.Color); err != nil {
			errs = append(errs, fmt.Errorf("roster.autopilots[%d].color: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// Colors resolves the palette. Call only on a validated config.
func (p PaletteSection) Colors() (bg, obstacle, player, text core.Color) {
	bg, _ = core.ParseColor(p.Background)
	obstacle, _ = core.ParseColor(p.Obstacle)
	player, _ = core.ParseColor(p.Player)
	text, _ = core.ParseColor(p.Text)
	return bg, obstacle, player, text
}
