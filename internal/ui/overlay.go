//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"charon/internal/core"
	"charon/internal/render"
	"charon/internal/tilemap"
	"charon/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional debugging visuals on top of the map.
type Overlay struct {
	heatKey ebiten.Key

	Heat        bool
	ShowTargets bool
	ShowCounts  bool
	ShowActive  bool
}

// NewOverlay constructs an overlay toggled by heatKey and the digit keys.
func NewOverlay(heatKey ebiten.Key) *Overlay {
	return &Overlay{heatKey: heatKey, ShowActive: true}
}

// Update toggles overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(o.heatKey) {
		o.Heat = !o.Heat
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.ShowTargets = !o.ShowTargets
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.ShowCounts = !o.ShowCounts
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.ShowActive = !o.ShowActive
	}
}

// Draw renders occupancy counts, the active outline and congestion warnings.
func (o *Overlay) Draw(screen *ebiten.Image, w *world.World) {
	m := w.Map()
	p := w.Config().Spirits
	cell := p.CellSize
	face := basicfont.Face7x13

	if o.ShowActive {
		a := m.Active()
		vector.StrokeRect(screen, float32(float64(a.X)*cell), float32(float64(a.Y)*cell),
			float32(float64(a.W)*cell), float32(float64(a.H)*cell), 2, color.RGBA{R: 90, G: 110, B: 150, A: 200}, false)
	}

	if o.ShowCounts {
		m.Each(func(pt core.Point, r tilemap.Role) {
			n := tilemap.TrafficOf(r).Occupants
			if n == 0 {
				return
			}
			col := color.RGBA{R: 240, G: 240, B: 240, A: 255}
			if n >= p.MaxOccupants {
				col = color.RGBA{R: 255, G: 90, B: 90, A: 255}
			}
			text.Draw(screen, strconv.Itoa(n), face, int(float64(pt.X)*cell)+4, int(float64(pt.Y)*cell)+14, col)
		})
	}

	for _, pt := range m.Starts() {
		st, ok := m.Start(pt)
		if !ok {
			continue
		}
		msg := p.Warning(st.Congestion)
		if msg == "" {
			continue
		}
		b := text.BoundString(face, msg)
		x := int((float64(pt.X)+0.5)*cell) - b.Dx()/2
		y := int(float64(pt.Y)*cell) - 4
		if y < 14 {
			y = int(float64(pt.Y+1)*cell) + 14
		}
		text.Draw(screen, msg, face, x, y, color.RGBA{R: 255, G: 200, B: 80, A: 255})
	}

	render.DrawAgents(screen, w.Agents(), p.SeparationRadius/5, o.ShowTargets)
}
