// Package level places starts and ends as the score climbs and grows the
// playable rectangle with them.
package level

import (
	"charon/internal/core"
	"charon/internal/tilemap"
	pcore "charon/pkg/core"
)

// Config describes the score schedule and rewards.
type Config struct {
	StartScores    []int `yaml:"startScores"`
	StartScoreStep int   `yaml:"startScoreStep"`
	EndScores      []int `yaml:"endScores"`
	EndScoreStep   int   `yaml:"endScoreStep"`

	GrowEvery int `yaml:"growEvery"`
	GrowBy    int `yaml:"growBy"`

	TilesPerStart int `yaml:"tilesPerStart"`
	TilesPerEnd   int `yaml:"tilesPerEnd"`

	// MinSpacing is the exclusive Manhattan distance kept between placements.
	MinSpacing int `yaml:"minSpacing"`
}

// DefaultConfig returns the standard schedule.
func DefaultConfig() Config {
	return Config{
		StartScores:    []int{0, 5, 25, 50, 100, 130, 160, 220, 260, 300, 400, 500, 700, 900, 1200, 1500, 2000, 2500, 3500, 5000},
		StartScoreStep: 1000,
		EndScores:      []int{0, 70, 200, 350, 600, 1000, 3000},
		EndScoreStep:   10000,
		GrowEvery:      4,
		GrowBy:         2,
		TilesPerStart:  2,
		TilesPerEnd:    4,
		MinSpacing:     2,
	}
}

// NextStart returns the score that unlocks the start after count placed ones.
func (c Config) NextStart(count int) int {
	if count < len(c.StartScores) {
		return c.StartScores[count]
	}
	last := 0
	if n := len(c.StartScores); n > 0 {
		last = c.StartScores[n-1]
	}
	return last + (count+1-len(c.StartScores))*c.StartScoreStep
}

// NextEnd returns the score that unlocks the end after count placed ones.
func (c Config) NextEnd(count int) int {
	if count < len(c.EndScores) {
		return c.EndScores[count]
	}
	return (count + 1 - len(c.EndScores)) * c.EndScoreStep
}

// Placement is one start or end added to the map.
type Placement struct {
	Kind     tilemap.Kind
	At       core.Point
	Replaced bool
}

// Update is what one Advance call changed.
type Update struct {
	Placed []Placement
	Tiles  int
	Grew   bool
}

// Changed reports whether anything happened.
func (u Update) Changed() bool { return len(u.Placed) > 0 || u.Grew }

// Progression tracks how many starts and ends the schedule has unlocked.
type Progression struct {
	cfg    Config
	rng    *pcore.RNG
	starts int
	ends   int
	score  int
}

// New constructs a progression. A nil rng is replaced with a seed-zero generator.
func New(cfg Config, rng *pcore.RNG) *Progression {
	if rng == nil {
		rng = pcore.NewRNG(0)
	}
	return &Progression{cfg: cfg, rng: rng, score: -1}
}

// Counts returns the number of starts and ends unlocked so far.
func (p *Progression) Counts() (starts, ends int) { return p.starts, p.ends }

// Restart forgets the last seen score so the next Advance re-evaluates.
// Placements already on the map are kept.
func (p *Progression) Restart() { p.score = -1 }

// Advance unlocks at most one start and one end for score and places them
// on m. It does nothing when score has not changed since the last call.
// newStart supplies the spawn state of each new start.
func (p *Progression) Advance(m *tilemap.Map, score int, newStart func() tilemap.StartState) Update {
	var up Update
	if score == p.score {
		return up
	}
	p.score = score

	isStart := score >= p.cfg.NextStart(p.starts)
	isEnd := score >= p.cfg.NextEnd(p.ends)
	if isStart {
		p.starts++
	}
	if isEnd {
		p.ends++
	}
	if !isStart && !isEnd {
		return up
	}

	if isStart && p.cfg.GrowEvery > 0 && (p.starts+p.cfg.GrowEvery-1)%p.cfg.GrowEvery == 0 {
		up.Grew = Grow(m, p.cfg.GrowBy)
	}
	area := m.Active()

	if isStart {
		pos, ok := core.Point{X: area.X + 1, Y: area.Y + area.H/2}, true
		if p.starts > 1 {
			pos, ok = p.borderSpot(m, area)
		}
		if ok {
			if placed, replaced := m.PlaceStart(pos, newStart()); placed {
				up.Placed = append(up.Placed, Placement{Kind: tilemap.KindStart, At: pos, Replaced: replaced})
				up.Tiles += p.cfg.TilesPerStart
			}
		}
	}
	if isEnd {
		pos, ok := core.Point{X: area.X + area.W - 2, Y: area.Y + area.H/2}, true
		if p.ends > 1 {
			pos, ok = p.borderSpot(m, area)
		}
		if ok {
			if placed, replaced := m.PlaceEnd(pos); placed {
				up.Placed = append(up.Placed, Placement{Kind: tilemap.KindEnd, At: pos, Replaced: replaced})
				up.Tiles += p.cfg.TilesPerEnd
			}
		}
	}
	return up
}

// borderSpot picks a random cell on the edge of area that keeps its distance
// from every existing start and end.
func (p *Progression) borderSpot(m *tilemap.Map, area core.Rect) (core.Point, bool) {
	var spots []core.Point
	for _, c := range area.Border() {
		if p.clear(m, c) {
			spots = append(spots, c)
		}
	}
	if len(spots) == 0 {
		return core.Point{}, false
	}
	return spots[p.rng.IntN(len(spots))], true
}

func (p *Progression) clear(m *tilemap.Map, c core.Point) bool {
	for _, s := range m.Starts() {
		if c.Manhattan(s) <= p.cfg.MinSpacing {
			return false
		}
	}
	for _, e := range m.Ends() {
		if c.Manhattan(e) <= p.cfg.MinSpacing {
			return false
		}
	}
	return true
}

// Grow enlarges the active rectangle of m by n cells in each axis, keeping
// it centred and clamped to the grid. It reports whether the size changed.
func Grow(m *tilemap.Map, n int) bool {
	cur := m.Active()
	if cur.W >= m.W && cur.H >= m.H {
		return false
	}
	next := core.Centered(m.Size(), cur.W+n, cur.H+n)
	m.SetActive(next)
	return m.Active() != cur
}
