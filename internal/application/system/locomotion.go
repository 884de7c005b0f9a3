package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/gladiator/internal/domain/entity"
)

const (
	// speedOffset is the band around the target speed inside which speed snaps to target
	speedOffset = 0.1
	// blendCutoff snaps the animation blend to zero below this value
	blendCutoff = 0.01
)

// LocomotionSystem turns input and ground state into character displacement
type LocomotionSystem struct {
	config   *entity.ControllerConfig
	animator Animator
}

// NewLocomotionSystem creates a new locomotion system
func NewLocomotionSystem(cfg *entity.ControllerConfig, animator Animator) *LocomotionSystem {
	return &LocomotionSystem{config: cfg, animator: animator}
}

// Step advances motion by dt and returns the displacement to apply this tick.
// When locked (rolling or attacking) horizontal movement and jump input are
// skipped but grounded timers and gravity still run.
func (s *LocomotionSystem) Step(dt float64, input *entity.Input, cameraYaw float64, character *entity.Character, motion *entity.MotionState, locked bool) (mgl64.Vec3, bool) {
	jumped := s.jumpAndGravity(dt, input, motion, locked)
	vertical := mgl64.Vec3{0, motion.VerticalVelocity * dt, 0}

	if locked {
		return vertical, jumped
	}
	return s.move(dt, input, cameraYaw, character, motion).Add(vertical), jumped
}

// move updates horizontal speed and facing and returns the horizontal displacement
func (s *LocomotionSystem) move(dt float64, input *entity.Input, cameraYaw float64, character *entity.Character, motion *entity.MotionState) mgl64.Vec3 {
	targetSpeed := s.config.MoveSpeed
	if input.Sprint {
		targetSpeed = s.config.SprintSpeed
	}
	hasMove := input.HasMove()
	if !hasMove {
		targetSpeed = 0
	}

	current := motion.Speed
	magnitude := input.MoveMagnitude()
	rate := dt * s.config.SpeedChangeRate

	// Accelerate or decelerate toward the target
	if current < targetSpeed-speedOffset || current > targetSpeed+speedOffset {
		motion.Speed = round3(lerp(current, targetSpeed*magnitude, rate))
	} else {
		motion.Speed = targetSpeed
	}

	motion.AnimationBlend = lerp(motion.AnimationBlend, targetSpeed, rate)
	if motion.AnimationBlend < blendCutoff {
		motion.AnimationBlend = 0
	}

	// Face the input direction relative to the camera
	if hasMove {
		motion.TargetRotation = facingFromInput(input.MoveDirection(), cameraYaw)
		yaw := smoothDampAngle(character.Yaw, motion.TargetRotation, &motion.RotationVelocity, s.config.RotationSmoothTime, dt)
		character.Yaw = repeat(yaw, 360)
	}

	s.animator.SetFloat(entity.ParamSpeed, motion.AnimationBlend)
	s.animator.SetFloat(entity.ParamMotionSpeed, magnitude)

	return entity.YawForward(motion.TargetRotation).Mul(motion.Speed * dt)
}
