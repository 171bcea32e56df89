// Package autotile derives the cosmetic shape of each path cell from its
// path neighbours.
package autotile

import (
	"math/bits"

	"charon/internal/core"
	"charon/internal/tilemap"
)

// Side bits, in core.Sides order.
const (
	North uint8 = 1 << iota
	East
	South
	West
)

// Mask returns the bitmask of sides of p that hold path cells.
func Mask(m *tilemap.Map, p core.Point) uint8 {
	var mask uint8
	for i, d := range core.Sides {
		if m.Kind(p.Add(d)) == tilemap.KindPath {
			mask |= 1 << i
		}
	}
	return mask
}

// Classify maps a side mask to a shape and orientation in [0,3].
//
//	end:      side of the single neighbour (N=0 E=1 S=2 W=3)
//	straight: 0 vertical, 1 horizontal
//	turn:     0 N+E, 1 E+S, 2 S+W, 3 W+N
//	junction: the missing side
func Classify(mask uint8) (tilemap.Shape, uint8) {
	mask &= 0x0f
	switch bits.OnesCount8(mask) {
	case 1:
		return tilemap.ShapeEnd, uint8(bits.TrailingZeros8(mask))
	case 2:
		switch mask {
		case North | South:
			return tilemap.ShapeStraight, 0
		case East | West:
			return tilemap.ShapeStraight, 1
		case North | East:
			return tilemap.ShapeTurn, 0
		case East | South:
			return tilemap.ShapeTurn, 1
		case South | West:
			return tilemap.ShapeTurn, 2
		default:
			return tilemap.ShapeTurn, 3
		}
	case 3:
		return tilemap.ShapeJunction, uint8(bits.TrailingZeros8(^mask & 0x0f))
	case 4:
		return tilemap.ShapeCrossing, 0
	default:
		return tilemap.ShapeNone, 0
	}
}

// Apply recomputes the shape of every path cell.
func Apply(m *tilemap.Map) {
	m.Each(func(p core.Point, r tilemap.Role) {
		path, ok := r.(*tilemap.Path)
		if !ok {
			return
		}
		path.Shape, path.Orientation = Classify(Mask(m, p))
	})
}

// Tiler runs Apply once per map generation.
type Tiler struct {
	gen  uint64
	done bool
}

// Update re-tiles when the map changed and reports whether it ran.
func (t *Tiler) Update(m *tilemap.Map) bool {
	if t.done && t.gen == m.Generation() {
		return false
	}
	Apply(m)
	t.gen, t.done = m.Generation(), true
	return true
}
