package entity

// TerminalVelocity caps how fast gravity can integrate vertical velocity
const TerminalVelocity = 53.0

// GroundedVerticalVelocity is the small downward velocity held while grounded
const GroundedVerticalVelocity = -2.0

// MotionState is the mutable locomotion state of the character
type MotionState struct {
	Speed            float64 // horizontal speed (m/s)
	AnimationBlend   float64
	TargetRotation   float64 // degrees
	RotationVelocity float64 // SmoothDampAngle velocity
	VerticalVelocity float64

	// Timers
	JumpTimeoutDelta float64
	FallTimeoutDelta float64

	Grounded bool
	Jumping  bool
	FreeFall bool
}

// NewMotionState creates a motion state with timeouts primed from cfg
func NewMotionState(cfg *ControllerConfig) MotionState {
	return MotionState{
		JumpTimeoutDelta: cfg.JumpTimeout,
		FallTimeoutDelta: cfg.FallTimeout,
		Grounded:         true,
	}
}
