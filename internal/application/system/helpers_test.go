package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

const testDT = 1.0 / 60.0

type sphereCall struct {
	center mgl64.Vec3
	radius float64
	mask   entity.LayerMask
}

type rayCall struct {
	origin, direction mgl64.Vec3
	maxDistance       float64
	mask              entity.LayerMask
}

// fakeSpatial answers every sphere query with grounded and every ray with blocked
type fakeSpatial struct {
	grounded bool
	blocked  bool
	spheres  []sphereCall
	rays     []rayCall
}

func (f *fakeSpatial) SphereOverlap(center mgl64.Vec3, radius float64, mask entity.LayerMask) bool {
	f.spheres = append(f.spheres, sphereCall{center, radius, mask})
	return f.grounded
}

func (f *fakeSpatial) Raycast(origin, direction mgl64.Vec3, maxDistance float64, mask entity.LayerMask) (entity.RayHit, bool) {
	f.rays = append(f.rays, rayCall{origin, direction, maxDistance, mask})
	if !f.blocked {
		return entity.RayHit{}, false
	}
	return entity.RayHit{Distance: maxDistance / 2, Layer: entity.LayerWall}, true
}

// fakeAnimator records everything the controller tells it
type fakeAnimator struct {
	triggers []entity.Signal
	bools    map[entity.Param]bool
	floats   map[entity.Param]float64
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{
		bools:  make(map[entity.Param]bool),
		floats: make(map[entity.Param]float64),
	}
}

func (f *fakeAnimator) Trigger(sig entity.Signal)            { f.triggers = append(f.triggers, sig) }
func (f *fakeAnimator) SetBool(p entity.Param, v bool)       { f.bools[p] = v }
func (f *fakeAnimator) SetFloat(p entity.Param, v float64)   { f.floats[p] = v }
func (f *fakeAnimator) count(sig entity.Signal) (n int) {
	for _, s := range f.triggers {
		if s == sig {
			n++
		}
	}
	return n
}

func createTestConfig() entity.ControllerConfig {
	return entity.DefaultControllerConfig()
}

func createTestController(t *testing.T, spatial *fakeSpatial) (*Controller, *fakeAnimator, *entity.Character) {
	t.Helper()
	anim := newFakeAnimator()
	character := entity.NewCharacter(mgl64.Vec3{}, 0)
	c, err := NewController(createTestConfig(), Dependencies{
		Spatial:   spatial,
		Animator:  anim,
		Character: character,
	})
	require.NoError(t, err)
	return c, anim, character
}

func forward() mgl64.Vec2 { return mgl64.Vec2{0, 1} }
