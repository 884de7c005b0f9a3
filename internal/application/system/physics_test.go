package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

func TestJump_ImpulseWhenGroundedAndTimeoutElapsed(t *testing.T) {
	sys, cfg, anim := createTestLocomotion()
	cfg.JumpHeight = 1.2
	cfg.Gravity = -15
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	motion.JumpTimeoutDelta = 0
	input := &entity.Input{Jump: true}

	disp, jumped := sys.Step(testDT, input, 0, character, &motion, false)

	require.True(t, jumped)
	assert.Equal(t, 6.0, motion.VerticalVelocity)
	assert.InDelta(t, 6.0*testDT, disp.Y(), 1e-12)
	assert.False(t, input.Jump, "jump request consumed")
	assert.True(t, motion.Jumping)
	assert.True(t, anim.bools[entity.ParamJump])
}

func TestJump_BlockedByTimeout(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	motion.JumpTimeoutDelta = 0.2
	input := &entity.Input{Jump: true}

	_, jumped := sys.Step(testDT, input, 0, character, &motion, false)

	assert.False(t, jumped)
	assert.Equal(t, entity.GroundedVerticalVelocity, motion.VerticalVelocity)
	assert.True(t, input.Jump, "request stays pending until the timeout elapses")
	assert.InDelta(t, 0.2-testDT, motion.JumpTimeoutDelta, 1e-12)
}

func TestJump_BufferedRequestFiresAfterTimeout(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	input := &entity.Input{Jump: true}

	jumps := 0
	for i := 0; i < 40; i++ {
		if _, jumped := sys.Step(testDT, input, 0, character, &motion, false); jumped {
			jumps++
		}
	}
	assert.Equal(t, 1, jumps)
}

func TestJump_ClearedWhileAirborne(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := entity.NewMotionState(cfg)
	motion.Grounded = false
	motion.JumpTimeoutDelta = 0
	input := &entity.Input{Jump: true}

	_, jumped := sys.Step(testDT, input, 0, character, &motion, false)

	assert.False(t, jumped)
	assert.False(t, input.Jump)
	assert.Equal(t, cfg.JumpTimeout, motion.JumpTimeoutDelta, "jump timeout resets in the air")
}

func TestGravity_GroundedNeverBelowClamp(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)

	for i := 0; i < 500; i++ {
		sys.Step(testDT, &entity.Input{}, 0, character, &motion, false)
		require.GreaterOrEqual(t, motion.VerticalVelocity, entity.GroundedVerticalVelocity)
	}
	assert.Equal(t, entity.GroundedVerticalVelocity, motion.VerticalVelocity)
}

func TestGravity_IntegratesWhileAirborne(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := entity.NewMotionState(cfg)
	motion.Grounded = false

	for i := 0; i < 30; i++ {
		sys.Step(testDT, &entity.Input{}, 0, character, &motion, false)
	}

	assert.InDelta(t, cfg.Gravity*testDT*30, motion.VerticalVelocity, 1e-9)
}

func TestGravity_StopsAtTerminalVelocity(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := entity.NewMotionState(cfg)
	motion.Grounded = false
	motion.VerticalVelocity = entity.TerminalVelocity + 1

	sys.Step(testDT, &entity.Input{}, 0, character, &motion, false)

	assert.Equal(t, entity.TerminalVelocity+1, motion.VerticalVelocity)
}

func TestFall_FreeFallAfterTimeout(t *testing.T) {
	sys, cfg, anim := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := entity.NewMotionState(cfg)
	motion.Grounded = false

	sys.Step(testDT, &entity.Input{}, 0, character, &motion, false)
	assert.False(t, motion.FreeFall, "a short hop is not free-fall")

	for i := 0; i < 20; i++ {
		sys.Step(testDT, &entity.Input{}, 0, character, &motion, false)
	}
	assert.True(t, motion.FreeFall)
	assert.True(t, anim.bools[entity.ParamFreeFall])

	// Landing clears it
	motion.Grounded = true
	sys.Step(testDT, &entity.Input{}, 0, character, &motion, false)
	assert.False(t, motion.FreeFall)
	assert.False(t, anim.bools[entity.ParamFreeFall])
	assert.Equal(t, cfg.FallTimeout, motion.FallTimeoutDelta)
}

func TestGravity_ContinuesWhileLocked(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := entity.NewMotionState(cfg)
	motion.Grounded = false
	input := &entity.Input{Jump: true}

	disp, jumped := sys.Step(testDT, input, 0, character, &motion, true)

	assert.False(t, jumped)
	assert.InDelta(t, cfg.Gravity*testDT, motion.VerticalVelocity, 1e-12)
	assert.InDelta(t, cfg.Gravity*testDT*testDT, disp.Y(), 1e-12)
	assert.True(t, input.Jump, "jump input is not processed while locked")
}

func TestJump_IgnoredWhileLockedOnGround(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	motion.JumpTimeoutDelta = 0

	_, jumped := sys.Step(testDT, &entity.Input{Jump: true}, 0, character, &motion, true)

	assert.False(t, jumped)
	assert.Equal(t, entity.GroundedVerticalVelocity, motion.VerticalVelocity)
}
