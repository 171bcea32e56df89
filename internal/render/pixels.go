package render

import (
	"image/color"
	"math"

	"charon/internal/autotile"
	"charon/internal/core"
	"charon/internal/tilemap"
)

// Cell classes used as palette indices.
const (
	ClassOutside uint8 = iota
	ClassEmpty
	ClassPath
	ClassStart
	ClassEnd
)

// DefaultPalette colours each cell class.
var DefaultPalette = []color.RGBA{
	ClassOutside: {R: 12, G: 14, B: 22, A: 255},
	ClassEmpty:   {R: 28, G: 44, B: 62, A: 255},
	ClassPath:    {R: 186, G: 170, B: 132, A: 255},
	ClassStart:   {R: 96, G: 182, B: 120, A: 255},
	ClassEnd:     {R: 214, G: 112, B: 88, A: 255},
}

// Classify writes the class of every cell of m into dst, resized as needed.
func Classify(dst []uint8, m *tilemap.Map) []uint8 {
	n := m.Len()
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	active := m.Active()
	for i := range dst {
		p := m.Point(i)
		switch m.Kind(p) {
		case tilemap.KindPath:
			dst[i] = ClassPath
		case tilemap.KindStart:
			dst[i] = ClassStart
		case tilemap.KindEnd:
			dst[i] = ClassEnd
		default:
			if active.Contains(p) {
				dst[i] = ClassEmpty
			} else {
				dst[i] = ClassOutside
			}
		}
	}
	return dst
}

// HeatSpan is the distance rendered as fully red.
const HeatSpan = 30.0

// Heat maps a distance to a green-to-red ramp.
func Heat(d, span float64) color.RGBA {
	if span <= 0 {
		span = HeatSpan
	}
	t := math.Max(0, math.Min(1, d/span))
	return color.RGBA{R: uint8(math.Round(t * 255)), G: uint8(math.Round((1 - t) * 255)), A: 255}
}

// NearestEnd returns the smallest finite distance recorded at p.
func NearestEnd(m *tilemap.Map, p core.Point) (float64, bool) {
	tr := m.Traffic(p)
	if tr == nil {
		return 0, false
	}
	best, ok := math.Inf(1), false
	for _, e := range m.Ends() {
		if d, has := tr.Distance(m.EndID(e)); has && !math.IsInf(d, 1) && d < best {
			best, ok = d, true
		}
	}
	return best, ok
}

// FillHeat paints path cells by distance to their nearest end and leaves
// every other cell at its palette colour.
func FillHeat(buf []byte, m *tilemap.Map, classes []uint8, palette []color.RGBA) {
	fillPaletteRGBA(buf, classes, palette)
	for i, c := range classes {
		if c != ClassPath {
			continue
		}
		d, ok := NearestEnd(m, m.Point(i))
		if !ok {
			continue
		}
		col := Heat(d, HeatSpan)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Spokes returns the side mask a path tile of the given shape connects to.
func Spokes(shape tilemap.Shape, orientation uint8) uint8 {
	o := orientation & 3
	switch shape {
	case tilemap.ShapeEnd:
		return 1 << o
	case tilemap.ShapeStraight:
		if o == 0 {
			return autotile.North | autotile.South
		}
		return autotile.East | autotile.West
	case tilemap.ShapeTurn:
		return (1<<o | 1<<((o+1)&3))
	case tilemap.ShapeJunction:
		return 0xf &^ (1 << o)
	case tilemap.ShapeCrossing:
		return 0xf
	default:
		return 0
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
