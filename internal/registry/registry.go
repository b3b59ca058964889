// Package registry provides a global registry for game variants.
// Variants register themselves in init() functions, so the CLI, the menu
// and the SSH host can list and create them by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the simulation contract the platform drives.
// Implementations contain pure logic and never import Bubble Tea; the
// platform owns input mapping, frame pacing and terminal output.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "flappy").
	// Used for CLI commands and the session ledger.
	ID() string

	// Title returns a human-readable name for display (e.g., "Flappy Duel").
	Title() string

	// Reset initializes the game for a new session.
	// The RuntimeConfig provides screen dimensions and the RNG seed.
	// Restarting after game over is handled inside Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Jump, Restart, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// It must not mutate the simulation.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, ticks, rivals).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game from a validated configuration.
type Factory func(cfg config.FlappyConfig) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Title comes from a throwaway instance; factories must be cheap
	g := f(config.DefaultFlappyConfig())
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID with the given configuration.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.FlappyConfig) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
