package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/gladiator/internal/domain/entity"
)

// Obstruction probe, relative to the character
const (
	rollProbeBack   = -0.8
	rollProbeUp     = 0.4
	rollProbeLength = 1.3
)

// RollSession is an in-progress roll
type RollSession struct {
	Target  mgl64.Vec3
	Ticks   int // fixed ticks advanced
	Blocked int // fixed ticks skipped because the probe hit something
}

// RollSystem starts rolls and advances them on the fixed tick.
// A roll only ends through Cancel.
type RollSystem struct {
	config   *entity.ControllerConfig
	spatial  Spatial
	animator Animator
	session  *RollSession
}

// NewRollSystem creates a new roll system
func NewRollSystem(cfg *entity.ControllerConfig, spatial Spatial, animator Animator) *RollSystem {
	return &RollSystem{
		config:   cfg,
		spatial:  spatial,
		animator: animator,
	}
}

// Active reports whether a roll is in progress
func (s *RollSystem) Active() bool {
	return s.session != nil
}

// Session returns the current roll, or nil
func (s *RollSystem) Session() *RollSession {
	return s.session
}

// TryStart consumes the roll request and starts a roll when allowed.
// Rolls need ground, move input, no attack in progress and no roll already running.
func (s *RollSystem) TryStart(dt float64, grounded, attacking bool, input *entity.Input, cameraYaw float64, character *entity.Character, motion *entity.MotionState) *RollSession {
	requested := input.Roll
	input.Roll = false

	if !grounded || attacking || !requested || !input.HasMove() || s.session != nil {
		return nil
	}

	// Turn toward the input direction the same way locomotion does
	facing := facingFromInput(input.MoveDirection(), cameraYaw)
	yaw := smoothDampAngle(character.Yaw, facing, &motion.RotationVelocity, s.config.RotationSmoothTime, dt)
	character.Yaw = repeat(yaw, 360)

	session := &RollSession{
		Target: character.Position.Add(character.Forward().Mul(s.config.RollDistance)),
	}
	s.animator.Trigger(entity.SignalRollStart)

	s.Cancel()
	s.session = session
	return session
}

// FixedTick advances the roll by one physics step.
// Returns true if the character moved. An obstruction only pauses the roll.
func (s *RollSystem) FixedTick(character *entity.Character) bool {
	if s.session == nil {
		return false
	}
	s.session.Ticks++

	forward := character.Forward()
	origin := character.Position.Add(forward.Mul(rollProbeBack)).Add(mgl64.Vec3{0, rollProbeUp, 0})
	mask := entity.AllLayers.Without(s.config.PlayerLayer)
	if _, hit := s.spatial.Raycast(origin, forward, rollProbeLength, mask); hit {
		s.session.Blocked++
		return false
	}

	character.Position = lerpVec3(character.Position, s.session.Target, s.config.RollSpeed)
	return true
}

// Cancel ends the roll. Safe to call when no roll is running.
func (s *RollSystem) Cancel() {
	s.session = nil
}
