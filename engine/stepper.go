package engine

import "time"

// FixedStepper converts variable frame time into a whole number of fixed simulation steps
// Leftover time carries to the next frame; after a long stall the backlog is dropped past maxSteps
type FixedStepper struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewFixedStepper creates a stepper with the given step length and per-frame cap
func NewFixedStepper(step time.Duration, maxSteps int) *FixedStepper {
	return &FixedStepper{step: step, maxSteps: maxSteps}
}

// Advance adds dt and returns how many steps to run now
func (f *FixedStepper) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	f.acc += dt
	n := int(f.acc / f.step)
	if n > f.maxSteps {
		n = f.maxSteps
		f.acc = 0
		return n
	}
	f.acc -= time.Duration(n) * f.step
	return n
}

// Reset clears accumulated time
func (f *FixedStepper) Reset() {
	f.acc = 0
}
