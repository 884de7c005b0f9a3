package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/gladiator/internal/domain/entity"
)

// lookThreshold is the squared look magnitude below which input is ignored
const lookThreshold = 0.01

// CameraConfig holds camera rig limits (degrees)
type CameraConfig struct {
	TopClamp      float64
	BottomClamp   float64
	AngleOverride float64
	Locked        bool
}

// DefaultCameraConfig returns the stock camera limits
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		TopClamp:    70,
		BottomClamp: -30,
	}
}

// CameraRig turns look input into the orientation of the camera follow target.
// It runs after the controller tick and does not touch locomotion.
type CameraRig struct {
	config CameraConfig
	yaw    float64
	pitch  float64
}

// NewCameraRig creates a camera rig starting at the given yaw
func NewCameraRig(cfg CameraConfig, yaw float64) *CameraRig {
	return &CameraRig{config: cfg, yaw: yaw}
}

// Update applies look input. Mouse deltas are used as-is, stick input is scaled by dt.
func (r *CameraRig) Update(dt float64, input *entity.Input) {
	if input.Look.Dot(input.Look) >= lookThreshold && !r.config.Locked {
		multiplier := dt
		if input.MouseLook {
			multiplier = 1
		}
		r.yaw += input.Look.X() * multiplier
		r.pitch += input.Look.Y() * multiplier
	}

	r.yaw = clampAngle(r.yaw, -math.MaxFloat64, math.MaxFloat64)
	r.pitch = clampAngle(r.pitch, r.config.BottomClamp, r.config.TopClamp)
}

// Yaw returns the camera yaw in degrees
func (r *CameraRig) Yaw() float64 {
	return r.yaw
}

// Pitch returns the camera pitch in degrees
func (r *CameraRig) Pitch() float64 {
	return r.pitch
}

// Orientation returns the follow-target rotation
func (r *CameraRig) Orientation() mgl64.Quat {
	return mgl64.AnglesToQuat(
		mgl64.DegToRad(r.yaw),
		mgl64.DegToRad(r.pitch+r.config.AngleOverride),
		0,
		mgl64.YXZ,
	)
}

// Forward returns the direction the camera looks
func (r *CameraRig) Forward() mgl64.Vec3 {
	return r.Orientation().Rotate(mgl64.Vec3{0, 0, 1})
}
