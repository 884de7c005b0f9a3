package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

// MoverConfig is the character volume used for collision, an upright box around the feet
type MoverConfig struct {
	Radius  float64
	Height  float64
	Collide entity.LayerMask
}

// DefaultMoverConfig returns a human-sized volume that collides with everything but the player
func DefaultMoverConfig() MoverConfig {
	return MoverConfig{
		Radius:  0.28,
		Height:  1.8,
		Collide: entity.AllLayers.Without(entity.LayerPlayer),
	}
}

// Move applies displacement to the character one axis at a time (X, Z, then Y),
// stopping at solid colliders so the character slides along walls and rests on floors.
func (w *World) Move(character *entity.Character, displacement mgl64.Vec3) {
	pos := character.Position
	for _, axis := range [3]int{0, 2, 1} {
		if displacement[axis] == 0 {
			continue
		}
		pos[axis] += displacement[axis]
		pos = w.resolve(pos, axis, displacement[axis])
	}
	character.Position = pos
}

// Volume returns the character collision box at a feet position
func (w *World) Volume(feet mgl64.Vec3) Box {
	r := w.mover.Radius
	return Box{
		Min: mgl64.Vec3{feet[0] - r, feet[1], feet[2] - r},
		Max: mgl64.Vec3{feet[0] + r, feet[1] + w.mover.Height, feet[2] + r},
	}
}

// resolve pushes pos out of any collider it entered while moving along axis
func (w *World) resolve(pos mgl64.Vec3, axis int, delta float64) mgl64.Vec3 {
	for i := range w.boxes {
		b := &w.boxes[i]
		if b.Trigger || !w.mover.Collide.Has(b.Layer) {
			continue
		}
		vol := w.Volume(pos)
		if !vol.Overlaps(*b) {
			continue
		}

		// Distance from feet/center to the volume face on this axis
		lo, hi := w.mover.Radius, w.mover.Radius
		if axis == 1 {
			lo, hi = 0, w.mover.Height
		}
		if delta > 0 {
			pos[axis] = b.Min[axis] - hi
		} else {
			pos[axis] = b.Max[axis] + lo
		}
	}
	return pos
}
