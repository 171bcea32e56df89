//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"charon/internal/core"
	"charon/internal/spirits"
	"charon/internal/tilemap"
)

// TilePainter uploads one pixel per cell and draws it scaled to the cell size.
type TilePainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	classes []uint8
	palette []color.RGBA
}

// NewTilePainter allocates a painter for a w*h map.
func NewTilePainter(w, h int) *TilePainter {
	return &TilePainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: DefaultPalette,
	}
}

// Draw paints the cell classes, or the distance heat map when heat is set,
// followed by the path connections.
func (tp *TilePainter) Draw(dst *ebiten.Image, m *tilemap.Map, cell float64, heat bool) {
	if m.W != tp.w || m.H != tp.h {
		return
	}
	tp.classes = Classify(tp.classes, m)
	if heat {
		FillHeat(tp.buf, m, tp.classes, tp.palette)
	} else {
		fillPaletteRGBA(tp.buf, tp.classes, tp.palette)
	}
	tp.img.WritePixels(tp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cell, cell)
	dst.DrawImage(tp.img, op)

	spoke := color.RGBA{R: 92, G: 78, B: 56, A: 255}
	m.Each(func(p core.Point, r tilemap.Role) {
		path, ok := r.(*tilemap.Path)
		if !ok {
			return
		}
		cx := float32((float64(p.X) + 0.5) * cell)
		cy := float32((float64(p.Y) + 0.5) * cell)
		half := float32(cell / 2)
		mask := Spokes(path.Shape, path.Orientation)
		for i, side := range core.Sides {
			if mask&(1<<i) == 0 {
				continue
			}
			vector.StrokeLine(dst, cx, cy, cx+float32(side.X)*half, cy+float32(side.Y)*half, float32(cell/6), spoke, false)
		}
		if mask == 0 || path.Shape == tilemap.ShapeEnd {
			vector.DrawFilledCircle(dst, cx, cy, float32(cell/8), spoke, true)
		}
	})
}

// DrawAgents paints every agent as a dot with a line to its committed cell.
func DrawAgents(dst *ebiten.Image, agents []spirits.Agent, radius float64, targets bool) {
	body := color.RGBA{R: 226, G: 232, B: 255, A: 230}
	aim := color.RGBA{R: 120, G: 140, B: 220, A: 160}
	for i := range agents {
		a := &agents[i]
		x, y := float32(a.Pos.X), float32(a.Pos.Y)
		if targets && a.HasNext {
			vector.StrokeLine(dst, x, y, float32(a.NextPos.X), float32(a.NextPos.Y), 1, aim, true)
		}
		vector.DrawFilledCircle(dst, x, y, float32(radius), body, true)
	}
}

