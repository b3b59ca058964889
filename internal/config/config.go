// Package config provides YAML-based game configuration loading
// for the arcade platform.
package config

// FlappyConfig contains all configuration for the flappy game.
type FlappyConfig struct {
	Runtime RuntimeSection `yaml:"runtime"`
	Palette PaletteSection `yaml:"palette"`
	Roster  RosterSection  `yaml:"roster"`
}

// RuntimeSection defines frame pacing.
type RuntimeSection struct {
	TickRate int `yaml:"tick_rate"`
}

// PaletteSection names the colors used when drawing the field.
// Values are color names understood by core.ParseColor.
type PaletteSection struct {
	Background string `yaml:"background"`
	Obstacle   string `yaml:"obstacle"`
	Player     string `yaml:"player"`
	Text       string `yaml:"text"`
}

// RosterSection lists the autopiloted opponents.
type RosterSection struct {
	Autopilots []AutopilotSeat `yaml:"autopilots"`
}

// AutopilotSeat is one autopiloted actor: fixed horizontal position and color.
type AutopilotSeat struct {
	X     int    `yaml:"x"`
	Color string `yaml:"color"`
}
