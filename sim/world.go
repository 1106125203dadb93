package sim

import (
	"math/rand/v2"

	"bouncy/shapes"
)

// World is the balls scene: the balls, the edges and the bounds they share.
type World struct {
	Balls      []Ball
	Boundaries []shapes.Line
	Bounds     Bounds
	Reflect    Reflect

	// Total flips since creation.
	Bounced Bounces
}

// NewWorld creates n balls in a w x h area.
func NewWorld(rng *rand.Rand, n, w, h int, mode Reflect) *World {
	b := Bounds{W: float32(w), H: float32(h)}
	return &World{
		Balls:      NewBalls(rng, n, b),
		Boundaries: NewBoundaries(w, h),
		Bounds:     b,
		Reflect:    mode,
	}
}

// Step runs one simulation step of dt seconds.
func (w *World) Step(dt float32) Bounces {
	n := Step(dt, w.Balls, w.Bounds, w.Reflect)
	w.Bounced.add(n)
	return n
}

// FixedStepper turns variable frame deltas into whole steps of a fixed size.
type FixedStepper struct {
	Step float32
	// MaxSteps caps the catch-up per Advance; leftover time is dropped.
	MaxSteps int

	acc float32
}

// Advance adds dt to the accumulator and calls fn once per whole step. It returns
// the number of steps run.
func (s *FixedStepper) Advance(dt float32, fn func(step float32)) int {
	if s.Step <= 0 {
		fn(dt)
		return 1
	}
	limit := s.MaxSteps
	if limit <= 0 {
		limit = 8
	}
	s.acc += dt
	n := 0
	for s.acc >= s.Step && n < limit {
		fn(s.Step)
		s.acc -= s.Step
		n++
	}
	if n == limit && s.acc >= s.Step {
		s.acc = 0
	}
	return n
}

// Pending is the time carried to the next Advance.
func (s *FixedStepper) Pending() float32 { return s.acc }
