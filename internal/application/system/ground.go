package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/gladiator/internal/domain/entity"
)

// GroundSensor decides whether the character stands on walkable ground
type GroundSensor struct {
	config  *entity.ControllerConfig
	spatial Spatial
}

// NewGroundSensor creates a new ground sensor
func NewGroundSensor(cfg *entity.ControllerConfig, spatial Spatial) *GroundSensor {
	return &GroundSensor{config: cfg, spatial: spatial}
}

// ProbeCenter returns the center of the probe sphere for a feet position
func (s *GroundSensor) ProbeCenter(position mgl64.Vec3) mgl64.Vec3 {
	return position.Sub(mgl64.Vec3{0, s.config.GroundedOffset, 0})
}

// Probe reports whether the probe sphere overlaps any ground layer
func (s *GroundSensor) Probe(position mgl64.Vec3) bool {
	return s.spatial.SphereOverlap(s.ProbeCenter(position), s.config.GroundedRadius, s.config.GroundLayers)
}
