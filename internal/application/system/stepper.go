package system

import "math"

// stepEpsilon absorbs float error when the accumulator lands on a step boundary
const stepEpsilon = 1e-9

// FixedStepper converts variable frame time into a count of fixed physics steps
type FixedStepper struct {
	delta       float64
	maxSteps    int
	accumulator float64
}

// NewFixedStepper creates a stepper with the given fixed delta.
// maxSteps caps steps per frame (0 = unlimited); backlog beyond the cap is dropped.
func NewFixedStepper(delta float64, maxSteps int) *FixedStepper {
	return &FixedStepper{delta: delta, maxSteps: maxSteps}
}

// Delta returns the fixed step length in seconds
func (s *FixedStepper) Delta() float64 {
	return s.delta
}

// Advance adds frame time and returns how many fixed steps to run
func (s *FixedStepper) Advance(frameDT float64) int {
	if frameDT > 0 {
		s.accumulator += frameDT
	}

	steps := 0
	for s.accumulator+stepEpsilon >= s.delta {
		s.accumulator -= s.delta
		steps++
		if s.maxSteps > 0 && steps >= s.maxSteps {
			s.accumulator = math.Mod(s.accumulator, s.delta)
			if s.accumulator+stepEpsilon >= s.delta {
				s.accumulator = 0
			}
			break
		}
	}
	if s.accumulator < 0 {
		s.accumulator = 0
	}
	return steps
}

// Alpha returns how far the accumulator is into the next step, in [0, 1)
func (s *FixedStepper) Alpha() float64 {
	return s.accumulator / s.delta
}

// Reset drops any accumulated time
func (s *FixedStepper) Reset() {
	s.accumulator = 0
}
