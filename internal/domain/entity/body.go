package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis
var Up = mgl64.Vec3{0, 1, 0}

// Character is the transform of the controlled character.
// Position is at the feet; Yaw is in degrees, 0 facing +Z.
type Character struct {
	Position mgl64.Vec3
	Yaw      float64
}

// NewCharacter creates a character at the given position facing yaw degrees
func NewCharacter(position mgl64.Vec3, yaw float64) *Character {
	return &Character{Position: position, Yaw: yaw}
}

// Forward returns the unit facing vector on the XZ plane
func (c *Character) Forward() mgl64.Vec3 {
	return YawForward(c.Yaw)
}

// Rotation returns the facing as a quaternion about the up axis
func (c *Character) Rotation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(c.Yaw), Up)
}

// YawForward returns the unit forward vector for a yaw in degrees
func YawForward(yaw float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}
}

// HorizontalSpeed returns the XZ length of a velocity
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}
