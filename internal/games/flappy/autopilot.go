package flappy

// Decision is what the autopilot wants an actor to do this tick.
type Decision int

const (
	NoJump Decision = iota
	Jump
)

// String returns a human-readable name for the decision.
func (d Decision) String() string {
	if d == Jump {
		return "Jump"
	}
	return "NoJump"
}

// Autopilot margins relative to the upcoming gap.
const (
	AutopilotTopMargin   = 20 // Start correcting this far below the gap top
	AutopilotFloorMargin = 50 // Treat this far above the gap floor as too low
)

// Decide is the reflex controller for autopiloted actors. It looks only at
// the actor and the pipe queue (leftmost first) and keeps no state.
//
// While the actor is still in front of the first pipe's trailing edge it
// flaps when falling inside the gap band or when it has sunk near the gap
// floor. Once past it, the actor aims at the next pipe (or the first one if
// there is no other) and flaps whenever it is below that gap's top band.
func Decide(a Actor, pipes []Pipe) Decision {
	if len(pipes) == 0 {
		return NoJump
	}

	next := pipes[0]
	if a.X < next.X+PipeWidth {
		top := float64(next.Top + AutopilotTopMargin)
		floor := float64(next.Bottom - AutopilotFloorMargin)
		switch {
		case a.Y > top && a.Y < floor:
			if a.Vel > 0 {
				return Jump
			}
		case a.Y > floor:
			return Jump
		}
		return NoJump
	}

	if len(pipes) > 1 {
		next = pipes[1]
	}
	if a.Y > float64(next.Top+AutopilotTopMargin) {
		return Jump
	}
	return NoJump
}
