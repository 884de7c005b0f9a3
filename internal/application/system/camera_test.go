package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

func TestCameraRig_MouseLook(t *testing.T) {
	rig := NewCameraRig(DefaultCameraConfig(), 0)

	rig.Update(testDT, &entity.Input{Look: mgl64.Vec2{10, 5}, MouseLook: true})

	assert.Equal(t, 10.0, rig.Yaw())
	assert.Equal(t, 5.0, rig.Pitch())
}

func TestCameraRig_StickLookScalesWithDT(t *testing.T) {
	rig := NewCameraRig(DefaultCameraConfig(), 0)

	rig.Update(0.5, &entity.Input{Look: mgl64.Vec2{90, -20}})

	assert.Equal(t, 45.0, rig.Yaw())
	assert.Equal(t, -10.0, rig.Pitch())
}

func TestCameraRig_PitchClamped(t *testing.T) {
	tests := []struct {
		name string
		look float64
		want float64
	}{
		{"up", 500, 70},
		{"down", -500, -30},
		{"inside", 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := NewCameraRig(DefaultCameraConfig(), 0)
			rig.Update(testDT, &entity.Input{Look: mgl64.Vec2{0, tt.look}, MouseLook: true})
			assert.Equal(t, tt.want, rig.Pitch())
		})
	}
}

func TestCameraRig_YawFoldsPastFullTurn(t *testing.T) {
	rig := NewCameraRig(DefaultCameraConfig(), 350)

	rig.Update(testDT, &entity.Input{Look: mgl64.Vec2{20, 0}, MouseLook: true})

	assert.InDelta(t, 10, rig.Yaw(), 1e-9)
}

func TestCameraRig_IgnoresSmallOrLockedLook(t *testing.T) {
	rig := NewCameraRig(DefaultCameraConfig(), 0)
	rig.Update(testDT, &entity.Input{Look: mgl64.Vec2{0.05, 0}, MouseLook: true})
	assert.Equal(t, 0.0, rig.Yaw())

	cfg := DefaultCameraConfig()
	cfg.Locked = true
	locked := NewCameraRig(cfg, 0)
	locked.Update(testDT, &entity.Input{Look: mgl64.Vec2{30, 30}, MouseLook: true})
	assert.Equal(t, 0.0, locked.Yaw())
	assert.Equal(t, 0.0, locked.Pitch())
}

func TestCameraRig_ForwardMatchesYaw(t *testing.T) {
	for _, yaw := range []float64{0, 90, 180, 270} {
		rig := NewCameraRig(DefaultCameraConfig(), yaw)
		got := rig.Forward()
		want := entity.YawForward(yaw)
		assert.InDelta(t, want.X(), got.X(), 1e-9)
		assert.InDelta(t, want.Y(), got.Y(), 1e-9)
		assert.InDelta(t, want.Z(), got.Z(), 1e-9)
	}
}
