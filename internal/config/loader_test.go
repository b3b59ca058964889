package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testFieldWidth = 400

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultFlappyYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if err := cfg.Validate(testFieldWidth); err != nil {
		t.Fatalf("embedded defaults do not validate: %v", err)
	}

	want := DefaultFlappyConfig()
	if cfg.Runtime != want.Runtime || cfg.Palette != want.Palette {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, want)
	}
	if len(cfg.Roster.Autopilots) != len(want.Roster.Autopilots) {
		t.Fatalf("embedded roster has %d seats, expected %d", len(cfg.Roster.Autopilots), len(want.Roster.Autopilots))
	}
	for i := range want.Roster.Autopilots {
		if cfg.Roster.Autopilots[i] != want.Roster.Autopilots[i] {
			t.Errorf("seat %d = %+v, expected %+v", i, cfg.Roster.Autopilots[i], want.Roster.Autopilots[i])
		}
	}
}

func TestLoadFlappyCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, "runtime:\n  tick_rate: 30\npalette:\n  player: yellow\n")

	cfg, err := LoadFlappy(path, testFieldWidth)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Runtime.TickRate != 30 {
		t.Errorf("tick_rate = %d, expected 30", cfg.Runtime.TickRate)
	}
	if cfg.Palette.Player != "yellow" {
		t.Errorf("player color = %q, expected yellow", cfg.Palette.Player)
	}
	if cfg.Palette.Obstacle != "green" {
		t.Errorf("unset keys should keep defaults, obstacle = %q", cfg.Palette.Obstacle)
	}
	if len(cfg.Roster.Autopilots) != 2 {
		t.Errorf("unset roster should keep defaults, got %d seats", len(cfg.Roster.Autopilots))
	}
}

func TestLoadFlappyEmptyRoster(t *testing.T) {
	path := writeConfig(t, "roster:\n  autopilots: []\n")

	cfg, err := LoadFlappy(path, testFieldWidth)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if len(cfg.Roster.Autopilots) != 0 {
		t.Errorf("expected empty roster, got %+v", cfg.Roster.Autopilots)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml"), testFieldWidth)
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
}

func TestLoadFlappyMalformedYAML(t *testing.T) {
	path := writeConfig(t, "runtime: [not, a, map\n")

	if _, err := LoadFlappy(path, testFieldWidth); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Runtime.TickRate = 0
	cfg.Palette.Text = "plaid"
	cfg.Roster.Autopilots = append(cfg.Roster.Autopilots, AutopilotSeat{X: 400, Color: "mauve"})

	err := cfg.Validate(testFieldWidth)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	msg := err.Error()
	for _, want := range []string{"tick_rate", "palette.text", "autopilots[2].x", "autopilots[2].color"} {
		if !strings.Contains(msg, want) {
			t.Errorf("validation error %q does not mention %s", msg, want)
		}
	}
}

func TestLoadFlappyRejectsInvalidCustomConfig(t *testing.T) {
	path := writeConfig(t, "runtime:\n  tick_rate: -1\n")

	if _, err := LoadFlappy(path, testFieldWidth); err == nil {
		t.Fatal("expected invalid custom config to be rejected")
	}
}

func TestPaletteColors(t *testing.T) {
	bg, obstacle, player, text := DefaultFlappyConfig().Palette.Colors()
	if bg.String() != "black" || obstacle.String() != "green" || player.String() != "red" || text.String() != "white" {
		t.Errorf("Colors() = %v %v %v %v", bg, obstacle, player, text)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"flappy", "flappy_solo"} {
		data := GetDefaultYAML(id)
		if len(data) == 0 {
			t.Errorf("%s: expected embedded YAML", id)
			continue
		}
		if _, err := parse(data); err != nil {
			t.Errorf("%s: embedded YAML does not parse: %v", id, err)
		}
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("expected nil for unknown game")
	}
}

func TestValidateSeatAgainstFieldWidth(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Roster.Autopilots = []AutopilotSeat{{X: 150, Color: "blue"}}

	if err := cfg.Validate(200); err != nil {
		t.Errorf("seat inside a 200-wide field rejected: %v", err)
	}
	if err := cfg.Validate(150); err == nil {
		t.Error("seat on the right edge of a 150-wide field accepted")
	}
}
