// Package flappy implements a Flappy Bird-style duel.
// The player steers a bird through gaps in scrolling pipes while
// autopiloted birds fly the same course.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Field geometry, in field units.
const (
	FieldWidth  = 400
	FieldHeight = 600
)

// Physics and obstacle constants, per tick.
const (
	Gravity        = 0.2                        // Downward acceleration per tick
	JumpImpulse    = -5.0                       // Velocity set by a jump (negative = up)
	PipeSpeed      = 1                          // How fast pipes move left per tick
	PipeWidth      = 50                         // Width of both pipe spans
	GapHeight      = 200                        // Height of the passable gap
	GapMargin      = 50                         // Minimum solid span above and below the gap
	ActorSize      = 30                         // Actor hitbox width and height
	PlayerX        = 50                         // Fixed horizontal position of the player
	SpawnThreshold = FieldWidth - FieldWidth/2  // Spawn once the last pipe is left of this
	EvictX         = -50                        // Evict the front pipe once left of this
	startY         = float64(FieldHeight) / 2.0 // Starting height of every actor
)

// Phase is the run state of the simulation.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "GameOver"
	}
	return "Playing"
}

// LoadConfig loads and validates the flappy configuration against this
// field. customPath may be empty.
func LoadConfig(customPath string) (config.FlappyConfig, error) {
	return config.LoadFlappy(customPath, FieldWidth)
}

// Game implements the flappy simulation loop. It exclusively owns its
// actors, pipes and score.
type Game struct {
	id         string
	title      string
	solo       bool // Ignore the configured roster
	cfg        config.FlappyConfig
	colors     palette
	player     Actor
	seats      []Actor // Roster template restored on every restart
	autopilots []Actor
	pipes      *PipeQueue
	rnd        RandSource
	score      int
	phase      Phase
	tickCount  int
}

type palette struct {
	bg, obstacle, player, text core.Color
}

// New creates a flappy game with the configured autopilot roster.
// cfg must have passed LoadConfig or Validate.
func New(cfg config.FlappyConfig) *Game {
	return &Game{id: "flappy", title: "Flappy Duel", cfg: cfg}
}

// NewSolo creates a flappy game without autopiloted opponents.
func NewSolo(cfg config.FlappyConfig) *Game {
	return &Game{id: "flappy_solo", title: "Flappy Solo", cfg: cfg, solo: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes the game for a new session: applies the palette and
// roster, reseeds the random source and restarts the run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.colors.bg, g.colors.obstacle, g.colors.player, g.colors.text = g.cfg.Palette.Colors()

	g.seats = g.seats[:0]
	if !g.solo {
		for _, seat := range g.cfg.Roster.Autopilots {
			color, _ := core.ParseColor(seat.Color)
			g.seats = append(g.seats, NewActor(seat.X, startY, color))
		}
	}

	g.rnd = NewSeededRand(cfg.Seed)
	g.pipes = NewPipeQueue(g.rnd)
	g.restart()
}

// restart performs the full GameOver -> Playing reset: every actor back at
// mid-field at rest, the complete roster restored, two fresh pipes, score 0.
func (g *Game) restart() {
	g.player = NewActor(PlayerX, startY, g.colors.player)

	g.autopilots = make([]Actor, len(g.seats))
	copy(g.autopilots, g.seats)
	for i := range g.autopilots {
		g.autopilots[i].Reset(startY)
	}

	g.pipes.Reset()
	g.score = 0
	g.phase = PhasePlaying
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseGameOver {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.restart()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Player: decision from input
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	g.player.Update()

	// Autopilots: decision after physics, against this tick's pipes
	for i := range g.autopilots {
		g.autopilots[i].Update()
		if Decide(g.autopilots[i], g.pipes.Pipes()) == Jump {
			g.autopilots[i].Jump()
		}
	}

	g.pipes.Advance()

	if g.pipes.Collides(g.player.Box) {
		g.phase = PhaseGameOver
	}

	g.score += g.pipes.Score(g.player.X)

	if g.player.OutOfBounds(FieldHeight) {
		g.phase = PhaseGameOver
	}

	g.autopilots = g.survivors()

	return core.StepResult{State: g.State()}
}

// survivors builds a new roster holding the autopilots that neither hit a
// pipe nor left the field this tick.
func (g *Game) survivors() []Actor {
	pipes := g.pipes.Pipes()
	alive := make([]Actor, 0, len(g.autopilots))
	for _, a := range g.autopilots {
		if a.OutOfBounds(FieldHeight) || collidesAny(a.Box, pipes) {
			continue
		}
		alive = append(alive, a)
	}
	return alive
}

func collidesAny(box core.Rect, pipes []Pipe) bool {
	for _, p := range pipes {
		if p.Collides(box) {
			return true
		}
	}
	return false
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	canvas := core.NewFieldCanvas(dst, FieldWidth, FieldHeight)
	canvas.Clear(g.colors.bg)
	if g.pipes == nil {
		return // Not reset yet
	}

	for _, p := range g.pipes.Pipes() {
		p.Draw(canvas, g.colors.obstacle)
	}

	g.player.Draw(canvas)
	for _, a := range g.autopilots {
		a.Draw(canvas)
	}

	scoreText := canvas.RenderText(fmt.Sprintf("Score: %d", g.score), g.colors.text)
	canvas.Blit(scoreText, 10, 10)

	if g.phase == PhaseGameOver {
		g.drawCentered(canvas, "Game Over", FieldHeight/2-50)
		g.drawCentered(canvas, "Tap or Press SPACE to Restart", FieldHeight/2+50)
	}
}

// drawCentered blits text horizontally centered on the field at height y.
func (g *Game) drawCentered(c core.Canvas, text string, y int) {
	surf := c.RenderText(text, g.colors.text)
	c.Blit(surf, FieldWidth/2-surf.W/2, y)
}

// Phase returns the current run state.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		GameOver:   g.phase == PhaseGameOver,
		Ticks:      g.tickCount,
		Autopilots: len(g.autopilots),
	}
}

// Register the game variants with the registry
func init() {
	registry.Register("flappy", func(cfg config.FlappyConfig) registry.Game {
		return New(cfg)
	})
	registry.Register("flappy_solo", func(cfg config.FlappyConfig) registry.Game {
		return NewSolo(cfg)
	})
}
