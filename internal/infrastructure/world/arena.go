package world

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"

	"github.com/younwookim/gladiator/internal/domain/entity"
)

// Object groups read from arena maps
const (
	groupColliders = "Colliders"
	groupSpawn     = "PlayerSpawn"
)

// defaultWallHeight is used for wall colliders without a "top" property
const defaultWallHeight = 3.0

// LoadArena builds a world from a Tiled map. One tile is one meter.
// Rectangles in the "Colliders" group become boxes; their "layer", "bottom",
// "top" and "trigger" properties set the collision layer and vertical extent.
// The first object of "PlayerSpawn" sets the spawn point ("y" and "yaw" optional).
// Map Y grows downward, so it is flipped onto +Z to keep north up.
func LoadArena(fsys fs.FS, tmxPath string) (*World, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load arena %s: %w", tmxPath, err)
	}
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("failed to load arena %s: invalid tile size %dx%d", tmxPath, m.TileWidth, m.TileHeight)
	}

	sx := 1 / float64(m.TileWidth)
	sz := 1 / float64(m.TileHeight)
	depth := float64(m.Height)

	w := New()
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case groupColliders:
			for _, o := range og.Objects {
				b, err := colliderFromObject(o, sx, sz, depth)
				if err != nil {
					return nil, fmt.Errorf("failed to load arena %s: %w", tmxPath, err)
				}
				w.Add(b)
			}
		case groupSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			pos := mgl64.Vec3{o.X * sx, floatProp(o.Properties, "y", 0), depth - o.Y*sz}
			w.SetSpawn(pos, floatProp(o.Properties, "yaw", 0))
		}
	}
	return w, nil
}

func colliderFromObject(o *tiled.Object, sx, sz, depth float64) (Box, error) {
	layerName := o.Properties.GetString("layer")
	layer, ok := entity.ParseLayer(layerName)
	if !ok {
		return Box{}, fmt.Errorf("collider %q: unknown layer %q", o.Name, layerName)
	}

	defTop := 0.0
	if layer == entity.LayerWall || layer == entity.LayerProp {
		defTop = defaultWallHeight
	}
	defBottom := -1.0
	if defTop > 0 {
		defBottom = 0
	}
	bottom := floatProp(o.Properties, "bottom", defBottom)
	top := floatProp(o.Properties, "top", defTop)
	if top <= bottom {
		return Box{}, fmt.Errorf("collider %q: top %v must be above bottom %v", o.Name, top, bottom)
	}

	return Box{
		Name:    o.Name,
		Min:     mgl64.Vec3{o.X * sx, bottom, depth - (o.Y+o.Height)*sz},
		Max:     mgl64.Vec3{(o.X + o.Width) * sx, top, depth - o.Y*sz},
		Layer:   layer,
		Trigger: o.Properties.GetBool("trigger"),
	}, nil
}

// floatProp returns a float property, or def when it is missing or malformed
func floatProp(props tiled.Properties, name string, def float64) float64 {
	for _, p := range props {
		if p.Name != name {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return def
		}
		return v
	}
	return def
}
