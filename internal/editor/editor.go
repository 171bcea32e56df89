// Package editor turns per-frame cursor input into path network edits.
package editor

import (
	"charon/internal/core"
	"charon/internal/tilemap"
)

// Input is the per-frame signal from the input collaborator.
type Input struct {
	Target      core.Point
	HasTarget   bool
	JustPressed bool
	Held        bool
}

// Budget is the tiles-available resource consumed by additions.
type Budget interface {
	Take() bool
	Give()
}

type dragMode uint8

const (
	dragNone dragMode = iota
	dragAdd
	dragRemove
)

// Editor applies click-drag edits to a map. A drag only adds or only removes,
// decided by the first cell it touches.
type Editor struct {
	mode   dragMode
	oneAgo core.Point
	twoAgo core.Point
	hasOne bool
	hasTwo bool
}

// New returns an idle editor.
func New() *Editor { return &Editor{} }

// Dragging reports whether a drag is in progress.
func (e *Editor) Dragging() bool { return e.mode != dragNone }

// Release ends the current drag.
func (e *Editor) Release() {
	e.mode = dragNone
	e.hasOne, e.hasTwo = false, false
}

// Apply processes one frame of input and returns how many cells changed.
func (e *Editor) Apply(m *tilemap.Map, budget Budget, in Input) int {
	pressed := in.Held
	if e.mode == dragNone {
		pressed = in.JustPressed
	}
	if !pressed || !in.HasTarget || !m.InBounds(in.Target) {
		e.Release()
		return 0
	}

	kind := m.Kind(in.Target)
	if e.mode == dragNone {
		if kind == tilemap.KindPath {
			e.mode = dragRemove
		} else {
			e.mode = dragAdd
		}
	}

	switch e.mode {
	case dragRemove:
		if kind != tilemap.KindPath {
			return 0
		}
		if !m.ClearPath(in.Target) {
			return 0
		}
		budget.Give()
		return 1
	case dragAdd:
		if kind != tilemap.KindEmpty {
			return 0
		}
		return e.add(m, budget, in.Target)
	}
	return 0
}

func (e *Editor) add(m *tilemap.Map, budget Budget, p core.Point) int {
	if !budget.Take() {
		return 0
	}
	if !m.SetPath(p) {
		budget.Give()
		return 0
	}
	changed := 1

	// Dragging back next to the cell two steps ago would leave a redundant
	// corner; drop the middle cell to keep the line taut.
	if e.hasOne && e.hasTwo && p.Adjacent(e.twoAgo) {
		if m.ClearPath(e.oneAgo) {
			budget.Give()
			changed++
		}
		e.oneAgo = p
		return changed
	}

	if e.hasOne {
		e.twoAgo, e.hasTwo = e.oneAgo, true
	}
	e.oneAgo, e.hasOne = p, true
	return changed
}
