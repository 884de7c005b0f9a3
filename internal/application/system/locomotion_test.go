package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

func createTestLocomotion() (*LocomotionSystem, *entity.ControllerConfig, *fakeAnimator) {
	cfg := createTestConfig()
	anim := newFakeAnimator()
	return NewLocomotionSystem(&cfg, anim), &cfg, anim
}

func groundedMotion(cfg *entity.ControllerConfig) entity.MotionState {
	m := entity.NewMotionState(cfg)
	m.Grounded = true
	return m
}

func TestLocomotion_WalkConvergesToMoveSpeed(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	input := &entity.Input{Move: forward()}

	for i := 0; i < 60; i++ {
		sys.Step(testDT, input, 0, character, &motion, false)
	}

	assert.Equal(t, cfg.MoveSpeed, motion.Speed, "speed snaps to target inside the offset band")
}

func TestLocomotion_SpeedIsMonotonicWhileAccelerating(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	input := &entity.Input{Move: forward(), Sprint: true}

	prev := 0.0
	for i := 0; i < 90; i++ {
		sys.Step(testDT, input, 0, character, &motion, false)
		require.GreaterOrEqual(t, motion.Speed, prev)
		prev = motion.Speed
	}
	assert.Equal(t, cfg.SprintSpeed, motion.Speed)
}

func TestLocomotion_FirstTickUsesLerp(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)

	sys.Step(testDT, &entity.Input{Move: forward()}, 0, character, &motion, false)

	// lerp(0, 2, 10/60) rounded to 3 places
	assert.Equal(t, 0.333, motion.Speed)
}

func TestLocomotion_AnalogScalesTarget(t *testing.T) {
	sys, cfg, anim := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	input := &entity.Input{Move: mgl64.Vec2{0, 0.5}, AnalogMovement: true}

	for i := 0; i < 120; i++ {
		sys.Step(testDT, input, 0, character, &motion, false)
	}

	assert.InDelta(t, cfg.MoveSpeed*0.5, motion.Speed, 0.01)
	assert.Equal(t, 0.5, anim.floats[entity.ParamMotionSpeed])
}

func TestLocomotion_StopsWithoutInput(t *testing.T) {
	sys, cfg, anim := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	motion.Speed = cfg.SprintSpeed
	motion.AnimationBlend = cfg.SprintSpeed

	for i := 0; i < 120; i++ {
		sys.Step(testDT, &entity.Input{}, 0, character, &motion, false)
	}

	assert.Equal(t, 0.0, motion.Speed)
	assert.Equal(t, 0.0, motion.AnimationBlend, "blend snaps to zero")
	assert.Equal(t, 0.0, anim.floats[entity.ParamSpeed])
}

func TestLocomotion_FacesInputRelativeToCamera(t *testing.T) {
	tests := []struct {
		name      string
		move      mgl64.Vec2
		cameraYaw float64
		want      float64
	}{
		{"forward", mgl64.Vec2{0, 1}, 0, 0},
		{"right", mgl64.Vec2{1, 0}, 0, 90},
		{"forward with camera turned", mgl64.Vec2{0, 1}, 45, 45},
		{"left with camera turned", mgl64.Vec2{-1, 0}, 180, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, cfg, _ := createTestLocomotion()
			character := entity.NewCharacter(mgl64.Vec3{}, 0)
			motion := groundedMotion(cfg)
			input := &entity.Input{Move: tt.move}

			for i := 0; i < 120; i++ {
				sys.Step(testDT, input, tt.cameraYaw, character, &motion, false)
			}

			assert.InDelta(t, tt.want, motion.TargetRotation, 1e-9)
			assert.InDelta(t, tt.want, character.Yaw, 1e-2)
		})
	}
}

func TestLocomotion_NoRotationWithoutInput(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 30)
	motion := groundedMotion(cfg)

	sys.Step(testDT, &entity.Input{}, 90, character, &motion, false)

	assert.Equal(t, 30.0, character.Yaw)
}

func TestLocomotion_DisplacementFollowsFacing(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	input := &entity.Input{Move: mgl64.Vec2{1, 0}}

	var disp mgl64.Vec3
	for i := 0; i < 60; i++ {
		disp, _ = sys.Step(testDT, input, 0, character, &motion, false)
	}

	assert.InDelta(t, cfg.MoveSpeed*testDT, disp.X(), 1e-9)
	assert.InDelta(t, 0, disp.Z(), 1e-9)
	assert.InDelta(t, entity.GroundedVerticalVelocity*testDT, disp.Y(), 1e-9)
}

func TestLocomotion_LockedSkipsHorizontal(t *testing.T) {
	sys, cfg, _ := createTestLocomotion()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	motion := groundedMotion(cfg)
	motion.Speed = 1.5
	input := &entity.Input{Move: mgl64.Vec2{1, 0}, Sprint: true}

	disp, _ := sys.Step(testDT, input, 0, character, &motion, true)

	assert.Equal(t, 0.0, disp.X())
	assert.Equal(t, 0.0, disp.Z())
	assert.Equal(t, 1.5, motion.Speed, "speed untouched while locked")
	assert.Equal(t, 0.0, character.Yaw, "no rotation while locked")
}
