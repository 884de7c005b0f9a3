// Package world holds the static collision geometry of the arena and answers
// the spatial queries the character controller needs.
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

// Box is an axis-aligned collider
type Box struct {
	Name    string
	Min     mgl64.Vec3
	Max     mgl64.Vec3
	Layer   entity.Layer
	Trigger bool // triggers never block and are never reported by queries
}

// Contains reports whether p lies inside the box (faces included)
func (b Box) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// ClosestPoint returns the point of the box nearest to p
func (b Box) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(p[0], b.Min[0], b.Max[0]),
		mgl64.Clamp(p[1], b.Min[1], b.Max[1]),
		mgl64.Clamp(p[2], b.Min[2], b.Max[2]),
	}
}

// Overlaps reports whether two boxes share volume. Touching faces do not count.
func (b Box) Overlaps(o Box) bool {
	for i := 0; i < 3; i++ {
		if b.Min[i] >= o.Max[i] || b.Max[i] <= o.Min[i] {
			return false
		}
	}
	return true
}

// World is the static collision world
type World struct {
	boxes    []Box
	spawn    mgl64.Vec3
	spawnYaw float64
	mover    MoverConfig
}

// New creates a world from colliders
func New(boxes ...Box) *World {
	return &World{
		boxes: boxes,
		mover: DefaultMoverConfig(),
	}
}

// Add appends a collider
func (w *World) Add(b Box) {
	w.boxes = append(w.boxes, b)
}

// Boxes returns the colliders
func (w *World) Boxes() []Box {
	return w.boxes
}

// SetSpawn sets where the character starts
func (w *World) SetSpawn(position mgl64.Vec3, yaw float64) {
	w.spawn = position
	w.spawnYaw = yaw
}

// Spawn returns the start position and yaw
func (w *World) Spawn() (mgl64.Vec3, float64) {
	return w.spawn, w.spawnYaw
}

// SetMoverConfig replaces the character volume used by Move
func (w *World) SetMoverConfig(cfg MoverConfig) {
	w.mover = cfg
}

// SphereOverlap reports whether a sphere touches any solid collider on mask
func (w *World) SphereOverlap(center mgl64.Vec3, radius float64, mask entity.LayerMask) bool {
	r2 := radius * radius
	for i := range w.boxes {
		b := &w.boxes[i]
		if b.Trigger || !mask.Has(b.Layer) {
			continue
		}
		d := b.ClosestPoint(center).Sub(center)
		if d.Dot(d) <= r2 {
			return true
		}
	}
	return false
}

// Raycast returns the nearest solid collider on mask hit by the ray.
// Colliders that contain the origin are ignored.
func (w *World) Raycast(origin, direction mgl64.Vec3, maxDistance float64, mask entity.LayerMask) (entity.RayHit, bool) {
	if direction.Len() == 0 || maxDistance <= 0 {
		return entity.RayHit{}, false
	}
	dir := direction.Normalize()

	best := entity.RayHit{Distance: math.Inf(1)}
	found := false
	for i := range w.boxes {
		b := &w.boxes[i]
		if b.Trigger || !mask.Has(b.Layer) || b.Contains(origin) {
			continue
		}
		dist, axis, ok := slab(b, origin, dir)
		if !ok || dist > maxDistance || dist >= best.Distance {
			continue
		}

		var normal mgl64.Vec3
		normal[axis] = -math.Copysign(1, dir[axis])
		best = entity.RayHit{
			Point:    origin.Add(dir.Mul(dist)),
			Normal:   normal,
			Distance: dist,
			Layer:    b.Layer,
			Name:     b.Name,
		}
		found = true
	}
	if !found {
		return entity.RayHit{}, false
	}
	return best, true
}

// slab intersects a ray with a box and returns the entry distance and the entry axis
func slab(b *Box, origin, dir mgl64.Vec3) (float64, int, bool) {
	tMin, tMax := 0.0, math.Inf(1)
	axis := -1
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
			axis = i
		}
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, 0, false
		}
	}
	if axis < 0 {
		return 0, 0, false
	}
	return tMin, axis, true
}
