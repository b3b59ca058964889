package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Actor is a bird: the player or an autopiloted opponent. Both share the
// same physics; only the source of Jump calls differs.
type Actor struct {
	X     int        // Fixed horizontal position
	Y     float64    // Vertical position (top of hitbox)
	Vel   float64    // Vertical velocity, positive is down
	Box   core.Rect  // Collision box, kept in sync with X and Y
	Color core.Color // Fill color
}

// NewActor places an actor at (x, y) at rest.
func NewActor(x int, y float64, color core.Color) Actor {
	a := Actor{X: x, Color: color}
	a.Reset(y)
	return a
}

// Jump replaces the current velocity with the jump impulse.
func (a *Actor) Jump() {
	a.Vel = JumpImpulse
}

// Update integrates one tick: velocity first, then position.
func (a *Actor) Update() {
	a.Vel += Gravity
	a.Y += a.Vel
	a.syncBox()
}

// Reset puts the actor back at height y with zero velocity.
func (a *Actor) Reset(y float64) {
	a.Y = y
	a.Vel = 0
	a.syncBox()
}

// OutOfBounds reports whether the actor left the vertical field [0, height].
func (a Actor) OutOfBounds(height int) bool {
	return a.Y < 0 || a.Y > float64(height)
}

// Draw fills the actor's box.
func (a Actor) Draw(c core.Canvas) {
	c.FillRect(a.Box, a.Color)
}

func (a *Actor) syncBox() {
	a.Box = core.NewRect(a.X, int(a.Y), ActorSize, ActorSize)
}
