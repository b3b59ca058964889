package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RandSource draws uniform integers from an inclusive range.
type RandSource interface {
	IntRange(lo, hi int) int
}

// seededRand is the default RandSource, deterministic per seed.
type seededRand struct {
	rng *rand.Rand
}

// NewSeededRand returns a RandSource backed by math/rand with the given seed.
func NewSeededRand(seed int64) RandSource {
	return &seededRand{rng: rand.New(rand.NewSource(seed))}
}

// IntRange implements RandSource. An empty range returns lo.
func (r *seededRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// Pipe is a pair of solid columns with a passable gap between them.
type Pipe struct {
	X      int  // Horizontal position (left edge)
	Top    int  // Y where the gap starts
	Bottom int  // Y where the gap ends, always Top + GapHeight
	Passed bool // Whether the player has been credited for this pipe
}

// NewPipe creates a pipe at x with a randomly placed gap.
func NewPipe(x int, rnd RandSource) Pipe {
	top := rnd.IntRange(GapMargin, FieldHeight-GapMargin-GapHeight)
	return Pipe{
		X:      x,
		Top:    top,
		Bottom: top + GapHeight,
	}
}

// Update scrolls the pipe left by one tick.
func (p *Pipe) Update() {
	p.X -= PipeSpeed
}

// TopRect returns the solid span above the gap.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, 0, PipeWidth, p.Top)
}

// BottomRect returns the solid span below the gap.
func (p Pipe) BottomRect() core.Rect {
	return core.NewRect(p.X, p.Bottom, PipeWidth, FieldHeight-p.Bottom)
}

// Collides reports whether box overlaps either solid span.
func (p Pipe) Collides(box core.Rect) bool {
	return box.Intersects(p.TopRect()) || box.Intersects(p.BottomRect())
}

// Draw paints both solid spans.
func (p Pipe) Draw(c core.Canvas, color core.Color) {
	c.FillRect(p.TopRect(), color)
	c.FillRect(p.BottomRect(), color)
}

// PipeQueue handles spawning, movement, and removal of pipes.
// Pipes are ordered leftmost first.
type PipeQueue struct {
	pipes []Pipe
	rnd   RandSource
}

// NewPipeQueue creates a queue holding the initial two pipes.
func NewPipeQueue(rnd RandSource) *PipeQueue {
	q := &PipeQueue{
		pipes: make([]Pipe, 0, 4),
		rnd:   rnd,
	}
	q.Reset()
	return q
}

// Reset replaces the queue with two fresh pipes: one at the right edge
// of the field and one half a field further.
func (q *PipeQueue) Reset() {
	q.pipes = q.pipes[:0]
	q.pipes = append(q.pipes,
		NewPipe(FieldWidth, q.rnd),
		NewPipe(FieldWidth+FieldWidth/2, q.rnd),
	)
}

// Advance scrolls every pipe, spawns a new one at the right edge once the
// last pipe has crossed the spawn threshold, and evicts the front pipe once
// it has left the field.
func (q *PipeQueue) Advance() {
	for i := range q.pipes {
		q.pipes[i].Update()
	}

	if len(q.pipes) == 0 || q.pipes[len(q.pipes)-1].X < SpawnThreshold {
		q.pipes = append(q.pipes, NewPipe(FieldWidth, q.rnd))
	}

	if len(q.pipes) > 1 && q.pipes[0].X < EvictX {
		q.pipes = append(q.pipes[:0], q.pipes[1:]...)
	}
}

// Score credits every pipe that has scrolled strictly left of playerX.
// Returns the number of pipes passed this call; each pipe counts once.
func (q *PipeQueue) Score(playerX int) int {
	passed := 0
	for i := range q.pipes {
		if !q.pipes[i].Passed && q.pipes[i].X < playerX {
			q.pipes[i].Passed = true
			passed++
		}
	}
	return passed
}

// Collides tests if the given box collides with any pipe.
func (q *PipeQueue) Collides(box core.Rect) bool {
	for _, p := range q.pipes {
		if p.Collides(box) {
			return true
		}
	}
	return false
}

// Pipes returns the current pipes, leftmost first.
// The slice is only valid until the next Advance or Reset.
func (q *PipeQueue) Pipes() []Pipe {
	return q.pipes
}

// Len returns the number of queued pipes.
func (q *PipeQueue) Len() int {
	return len(q.pipes)
}
