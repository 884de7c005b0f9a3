package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestYawForward(t *testing.T) {
	tests := []struct {
		yaw  float64
		want mgl64.Vec3
	}{
		{0, mgl64.Vec3{0, 0, 1}},
		{90, mgl64.Vec3{1, 0, 0}},
		{180, mgl64.Vec3{0, 0, -1}},
		{-90, mgl64.Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		got := YawForward(tt.yaw)
		assert.InDelta(t, tt.want.X(), got.X(), 1e-9, "yaw %v", tt.yaw)
		assert.InDelta(t, tt.want.Y(), got.Y(), 1e-9, "yaw %v", tt.yaw)
		assert.InDelta(t, tt.want.Z(), got.Z(), 1e-9, "yaw %v", tt.yaw)
	}
}

func TestCharacter_RotationMatchesForward(t *testing.T) {
	for _, yaw := range []float64{0, 45, 90, 200} {
		c := NewCharacter(mgl64.Vec3{1, 2, 3}, yaw)
		rotated := c.Rotation().Rotate(mgl64.Vec3{0, 0, 1})
		fwd := c.Forward()
		assert.InDelta(t, fwd.X(), rotated.X(), 1e-9)
		assert.InDelta(t, fwd.Z(), rotated.Z(), 1e-9)
	}
}

func TestHorizontalSpeed(t *testing.T) {
	assert.Equal(t, 5.0, HorizontalSpeed(mgl64.Vec3{3, -100, 4}))
	assert.Equal(t, 0.0, HorizontalSpeed(mgl64.Vec3{0, 7, 0}))
}
