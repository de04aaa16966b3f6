package gesture

import "math"

// StepAccumulator converts a stream of fractional deltas into whole steps,
// carrying the sub-step remainder so movement is neither repeated nor lost:
// four increments of 0.6 steps yield a step after the second and the fourth.
//
// Consumers that need independent stepping (text editing vs. pointer motion)
// each own their own accumulator.
type StepAccumulator struct {
	stepSize float64
	acc      float64
}

// NewStepAccumulator returns an accumulator emitting one step per stepSize
// units of accumulated delta. A non-positive stepSize is treated as 1.
func NewStepAccumulator(stepSize float64) StepAccumulator {
	if stepSize <= 0 {
		stepSize = 1
	}
	return StepAccumulator{stepSize: stepSize}
}

// Add accumulates a delta and returns the number of whole steps now available
// (negative for reverse movement). The remainder keeps its sign.
func (a *StepAccumulator) Add(delta float64) int {
	a.acc += delta
	steps := math.Trunc(a.acc / a.stepSize)
	a.acc -= steps * a.stepSize
	return int(steps)
}

// Reset discards any accumulated remainder.
func (a *StepAccumulator) Reset() {
	a.acc = 0
}
