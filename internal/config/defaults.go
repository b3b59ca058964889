package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in flappy configuration.
// It mirrors defaults/flappy.yaml and is used when that cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Runtime: RuntimeSection{
			TickRate: 60,
		},
		Palette: PaletteSection{
			Background: "black",
			Obstacle:   "green",
			Player:     "red",
			Text:       "white",
		},
		Roster: RosterSection{
			Autopilots: []AutopilotSeat{
				{X: 100, Color: "blue"},
				{X: 150, Color: "white"},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy", "flappy_solo":
		return defaultFlappyYAML
	default:
		return nil
	}
}
