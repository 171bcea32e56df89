//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"charon/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source supplies the values shown on the HUD.
type Source interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the round counters and adjustable tunables in a side panel.
type HUD struct {
	src      Source
	title    string
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot

	stats    []string
	controls []controlState

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
}

type controlState struct {
	control  core.ParameterControl
	value    float64
	hasValue bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

var statKeys = []string{"score", "best", "tiles", "agents"}

// NewHUD constructs a HUD for src with a panel of the given width.
func NewHUD(src Source, title string, width int) *HUD {
	h := &HUD{src: src, title: title, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := src.(core.ParameterControlsProvider); ok {
		for _, c := range p.ParameterControls() {
			h.controls = append(h.controls, controlState{control: c})
		}
	}
	h.intSetter, _ = src.(core.IntParameterSetter)
	h.floatSetter, _ = src.(core.FloatParameterSetter)
	h.layout()
	return h
}

// Update refreshes the snapshot and handles clicks on the panel buttons.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	h.snapshot = h.src.Parameters()

	h.stats = h.stats[:0]
	for _, key := range statKeys {
		if p, ok := h.snapshot.Lookup(key); ok {
			h.stats = append(h.stats, p.Label+": "+p.Value)
		}
	}
	if p, ok := h.snapshot.Lookup("over"); ok && p.Value == "true" {
		h.stats = append(h.stats, "Round over, press reset")
	}

	for i := range h.controls {
		st := &h.controls[i]
		p, ok := h.snapshot.Lookup(st.control.Key)
		if !ok {
			st.hasValue = false
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		st.value, st.hasValue = v, err == nil
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.controls {
		st := &h.controls[i]
		switch {
		case !st.hasValue:
		case px >= st.minus.Min.X && px < st.minus.Max.X && my >= st.minus.Min.Y && my < st.minus.Max.Y:
			h.adjust(st, -1)
			return
		case px >= st.plus.Min.X && px < st.plus.Max.X && my >= st.plus.Min.Y && my < st.plus.Max.Y:
			h.adjust(st, 1)
			return
		}
	}
}

func (h *HUD) adjust(st *controlState, dir float64) {
	step := st.control.Step
	target := st.control.Clamp(st.value + dir*step)
	if math.Abs(target-st.value) < 1e-9 {
		return
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil && h.intSetter.SetIntParameter(st.control.Key, int(math.Round(target))) {
			st.value = math.Round(target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil && h.floatSetter.SetFloatParameter(st.control.Key, target) {
			st.value = target
		}
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	label := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, line := range h.stats {
		text.Draw(h.panel, line, face, panelPadding, statsTop+i*statSpacing, label)
	}

	for i := range h.controls {
		st := &h.controls[i]
		text.Draw(h.panel, st.control.Label, face, panelPadding, st.top+labelBaseline, label)
		value, col := "--", dim
		if st.hasValue {
			value, col = formatValue(st.control, st.value), label
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, st.minus.Min.X-buttonGap-w, st.top+labelBaseline, col)
		h.button(st.minus, "-", st.hasValue && st.control.Clamp(st.value-st.control.Step) != st.value)
		h.button(st.plus, "+", st.hasValue && st.control.Clamp(st.value+st.control.Step) != st.value)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) button(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, y, plus.Min.X-buttonGap, y+buttonSize)
		h.controls[i].top, h.controls[i].minus, h.controls[i].plus = top, minus, plus
	}
}

func formatValue(c core.ParameterControl, v float64) string {
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	if c.Step < 1 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	statsTop       = panelPadding + headerBaseline + 24
	statSpacing    = 18
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	labelBaseline  = 24
	controlsTop    = statsTop + 5*statSpacing + 8
)
