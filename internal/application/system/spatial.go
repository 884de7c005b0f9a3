package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/gladiator/internal/domain/entity"
)

// Spatial answers collision queries against the world.
// Trigger volumes are never reported.
type Spatial interface {
	SphereOverlap(center mgl64.Vec3, radius float64, mask entity.LayerMask) bool
	Raycast(origin, direction mgl64.Vec3, maxDistance float64, mask entity.LayerMask) (entity.RayHit, bool)
}

// Animator receives animation parameters and triggers from the controller
type Animator interface {
	Trigger(sig entity.Signal)
	SetBool(p entity.Param, v bool)
	SetFloat(p entity.Param, v float64)
}

// Mover applies a displacement to the character, resolving collisions if it can
type Mover interface {
	Move(character *entity.Character, displacement mgl64.Vec3)
}

// directMover applies displacements without collision
type directMover struct{}

func (directMover) Move(character *entity.Character, displacement mgl64.Vec3) {
	character.Position = character.Position.Add(displacement)
}
