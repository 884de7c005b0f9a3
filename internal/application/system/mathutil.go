package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// lerp interpolates from a to b with t clamped to [0, 1]
func lerp(a, b, t float64) float64 {
	return a + (b-a)*mgl64.Clamp(t, 0, 1)
}

// lerpVec3 interpolates between vectors with t clamped to [0, 1]
func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(mgl64.Clamp(t, 0, 1)))
}

// round3 rounds to 3 decimal places (half to even)
func round3(v float64) float64 {
	return math.RoundToEven(v*1000) / 1000
}

// repeat wraps t into [0, length)
func repeat(t, length float64) float64 {
	return mgl64.Clamp(t-math.Floor(t/length)*length, 0, length)
}

// deltaAngle returns the shortest signed difference between two angles in degrees
func deltaAngle(current, target float64) float64 {
	d := repeat(target-current, 360)
	if d > 180 {
		d -= 360
	}
	return d
}

// smoothDamp moves current toward target like a critically damped spring.
// velocity is carried between calls by the caller.
func smoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	targetOrig := target

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// Prevent overshooting
	if (targetOrig-current > 0) == (output > targetOrig) {
		output = targetOrig
		*velocity = 0
	}
	return output
}

// smoothDampAngle is smoothDamp for degrees, taking the short way around
func smoothDampAngle(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	target = current + deltaAngle(current, target)
	return smoothDamp(current, target, velocity, smoothTime, dt)
}

// clampAngle folds an angle by one turn and clamps it to [lo, hi]
func clampAngle(angle, lo, hi float64) float64 {
	if angle < -360 {
		angle += 360
	}
	if angle > 360 {
		angle -= 360
	}
	return mgl64.Clamp(angle, lo, hi)
}

// facingFromInput returns the yaw (degrees) that faces the move direction relative to the camera
func facingFromInput(dir mgl64.Vec3, cameraYaw float64) float64 {
	return mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z())) + cameraYaw
}
