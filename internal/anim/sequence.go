// Package anim plays timed animation steps against a shared frame clock.
//
// A Sequence is an ordered list of steps. Each tick the current step's
// Behavior is applied with the normalized progress of that step, and the
// sequence moves on to the next step once the step's duration has elapsed.
// Behaviors carry their own parameters and draw through a Canvas.
package anim

import "time"

// Behavior renders one frame of a step or performs its side effect.
// t is the progress within the step in [0, 1]; steps without a duration
// always receive 0.
type Behavior interface {
	Apply(t float64, ctx Context)
}

// Context is what a behavior draws against on a given tick.
type Context struct {
	Canvas Canvas
	X, Y   float64 // Card slot origin in pixels, zero for ambient sequences
}

// Step is one timed entry of a Sequence.
// A zero Duration holds the step forever at progress 0.
type Step struct {
	Behavior Behavior
	Duration time.Duration
}

// Sequence is a queue of steps advanced by a fixed delta per tick.
//
// The sequence never moves past its last step: once the last timed step has
// elapsed it is re-applied at progress 1 on every tick, which keeps its final
// frame on screen. At most one step boundary is crossed per Advance call,
// however large the delta.
type Sequence struct {
	steps   []Step
	cur     int
	elapsed time.Duration
}

// New creates a sequence from the given steps.
func New(steps ...Step) *Sequence {
	return &Sequence{steps: steps}
}

// Add appends a step and returns the sequence for chaining.
func (s *Sequence) Add(b Behavior, d time.Duration) *Sequence {
	s.steps = append(s.steps, Step{Behavior: b, Duration: d})
	return s
}

// Advance moves the sequence forward by dt and applies the current step once.
func (s *Sequence) Advance(dt time.Duration, ctx Context) {
	if len(s.steps) == 0 {
		return
	}

	step := s.steps[s.cur]
	s.elapsed += dt

	if step.Duration > 0 && s.elapsed >= step.Duration {
		step.Behavior.Apply(1, ctx)
		if s.cur < len(s.steps)-1 {
			s.elapsed = 0
			s.cur++
		}
		return
	}

	var t float64
	if step.Duration > 0 {
		t = float64(s.elapsed) / float64(step.Duration)
	}
	step.Behavior.Apply(t, ctx)
}

// Index returns the position of the current step.
func (s *Sequence) Index() int {
	return s.cur
}

// Len returns the number of steps.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Elapsed returns the time accumulated within the current step.
func (s *Sequence) Elapsed() time.Duration {
	return s.elapsed
}

// Steps returns a copy of the step list.
func (s *Sequence) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)
	return out
}

// Total returns the summed duration of all timed steps.
func (s *Sequence) Total() time.Duration {
	var total time.Duration
	for _, st := range s.steps {
		total += st.Duration
	}
	return total
}
