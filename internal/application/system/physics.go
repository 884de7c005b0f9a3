package system

import "github.com/younwookim/gladiator/internal/domain/entity"

// jumpAndGravity runs the grounded/airborne timers, the jump impulse and gravity.
// Returns true when a jump started this tick.
func (s *LocomotionSystem) jumpAndGravity(dt float64, input *entity.Input, motion *entity.MotionState, locked bool) bool {
	// Gravity first; the grounded clamp and jump impulse override it
	if motion.VerticalVelocity < entity.TerminalVelocity {
		motion.VerticalVelocity += s.config.Gravity * dt
	}

	jumped := false
	if motion.Grounded {
		// Reset the fall timeout
		motion.FallTimeoutDelta = s.config.FallTimeout
		motion.Jumping = false
		motion.FreeFall = false
		s.animator.SetBool(entity.ParamJump, false)
		s.animator.SetBool(entity.ParamFreeFall, false)

		// Stop velocity accumulating while grounded
		if motion.VerticalVelocity < 0 {
			motion.VerticalVelocity = entity.GroundedVerticalVelocity
		}

		if !locked && input.Jump && motion.JumpTimeoutDelta <= 0 {
			motion.VerticalVelocity = s.config.JumpVelocity()
			motion.Jumping = true
			input.Jump = false
			jumped = true
		}

		if motion.JumpTimeoutDelta >= 0 {
			motion.JumpTimeoutDelta -= dt
		}
	} else {
		motion.JumpTimeoutDelta = s.config.JumpTimeout

		if motion.FallTimeoutDelta >= 0 {
			motion.FallTimeoutDelta -= dt
		} else {
			motion.FreeFall = true
			s.animator.SetBool(entity.ParamFreeFall, true)
		}

		// No jumping in the air
		if !locked {
			input.Jump = false
		}
	}

	if motion.Jumping {
		s.animator.SetBool(entity.ParamJump, true)
	}
	return jumped
}
