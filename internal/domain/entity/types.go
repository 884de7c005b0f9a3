package entity

import "github.com/go-gl/mathgl/mgl64"

// Layer identifies a collision layer (0..31)
type Layer int

const (
	LayerDefault Layer = iota
	LayerGround
	LayerWall
	LayerPlayer
	LayerProp
)

// LayerMask is a bit set of layers
type LayerMask uint32

// AllLayers matches every layer
const AllLayers LayerMask = ^LayerMask(0)

// Mask returns the single-bit mask for the layer
func (l Layer) Mask() LayerMask {
	if l < 0 || l > 31 {
		return 0
	}
	return LayerMask(1) << uint(l)
}

// String returns the layer name used in arena files
func (l Layer) String() string {
	switch l {
	case LayerDefault:
		return "default"
	case LayerGround:
		return "ground"
	case LayerWall:
		return "wall"
	case LayerPlayer:
		return "player"
	case LayerProp:
		return "prop"
	default:
		return "Unknown"
	}
}

// ParseLayer maps an arena/config layer name to a Layer.
// Unknown names map to LayerDefault with ok=false.
func ParseLayer(name string) (Layer, bool) {
	switch name {
	case "", "default":
		return LayerDefault, true
	case "ground":
		return LayerGround, true
	case "wall":
		return LayerWall, true
	case "player":
		return LayerPlayer, true
	case "prop":
		return LayerProp, true
	default:
		return LayerDefault, false
	}
}

// MaskOf builds a mask from a list of layers
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= l.Mask()
	}
	return m
}

// Has reports whether the mask includes the layer
func (m LayerMask) Has(l Layer) bool {
	return m&l.Mask() != 0
}

// Without returns the mask with the layer removed
func (m LayerMask) Without(l Layer) LayerMask {
	return m &^ l.Mask()
}

// RayHit describes the first collider hit by a raycast
type RayHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Layer    Layer
	Name     string
}
