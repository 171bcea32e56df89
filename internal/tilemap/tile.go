// Package tilemap stores the fixed grid of cells and the role each cell plays
// in the path network.
package tilemap

import (
	"math"

	"charon/internal/core"
)

// Kind enumerates the cell roles.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindPath
	KindStart
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	default:
		return "empty"
	}
}

// EndID identifies an End cell by its flat grid index.
type EndID int

// Unreachable is the sentinel distance used for forced-infinite entries.
var Unreachable = math.Inf(1)

// Traffic is the routing payload shared by every traversable role: the
// distance to each reachable end and the number of agents committed here.
type Traffic struct {
	Dist      map[EndID]float64
	Occupants int
}

// Distance returns the recorded distance to end, if any.
func (t *Traffic) Distance(end EndID) (float64, bool) {
	if t == nil || t.Dist == nil {
		return 0, false
	}
	d, ok := t.Dist[end]
	return d, ok
}

// SetDistance records d as the distance to end.
func (t *Traffic) SetDistance(end EndID, d float64) {
	if t.Dist == nil {
		t.Dist = make(map[EndID]float64, 1)
	}
	t.Dist[end] = d
}

// ClearDistances drops every distance entry.
func (t *Traffic) ClearDistances() {
	clear(t.Dist)
}

// Enter adds one occupant.
func (t *Traffic) Enter() { t.Occupants++ }

// Leave removes one occupant, never going below zero.
func (t *Traffic) Leave() {
	if t.Occupants > 0 {
		t.Occupants--
	}
}

// Shape is the cosmetic connection shape of a path cell.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeEnd
	ShapeStraight
	ShapeTurn
	ShapeJunction
	ShapeCrossing
)

func (s Shape) String() string {
	switch s {
	case ShapeEnd:
		return "end"
	case ShapeStraight:
		return "straight"
	case ShapeTurn:
		return "turn"
	case ShapeJunction:
		return "junction"
	case ShapeCrossing:
		return "crossing"
	default:
		return "none"
	}
}

// Role is the payload of a non-empty cell. The set of implementations is
// closed: *Path, *Start and *End.
type Role interface {
	Kind() Kind
	traffic() *Traffic
}

// Path is a player-drawn traversable cell.
type Path struct {
	Traffic
	Shape       Shape
	Orientation uint8
}

// Kind reports KindPath.
func (*Path) Kind() Kind { return KindPath }

func (p *Path) traffic() *Traffic { return &p.Traffic }

// StartState is the spawner state attached to a Start cell.
type StartState struct {
	// CompletedOnce latches true once any end has been reachable from here.
	CompletedOnce bool
	Spawn         core.Timer
	Congestion    float64
}

// Start is an agent source.
type Start struct {
	Traffic
	StartState
}

// Kind reports KindStart.
func (*Start) Kind() Kind { return KindStart }

func (s *Start) traffic() *Traffic { return &s.Traffic }

// End is an agent sink.
type End struct {
	Traffic
	ID EndID
}

// Kind reports KindEnd.
func (*End) Kind() Kind { return KindEnd }

func (e *End) traffic() *Traffic { return &e.Traffic }

// TrafficOf returns the routing payload of r, or nil for an empty cell.
func TrafficOf(r Role) *Traffic {
	if r == nil {
		return nil
	}
	return r.traffic()
}

// KindOf returns the kind of r, treating nil as empty.
func KindOf(r Role) Kind {
	if r == nil {
		return KindEmpty
	}
	return r.Kind()
}
