package world

import (
	"fmt"
	"sort"

	"charon/internal/core"
	"charon/internal/tilemap"
)

// Setup is the initial state a layout produces.
type Setup struct {
	Map   *tilemap.Map
	Tiles int
	// Progressive layouts start empty and unlock starts and ends by score.
	Progressive bool
}

// Layout builds a map for cfg. newStart supplies the spawn state of every
// start it places.
type Layout func(cfg Config, newStart func() tilemap.StartState) Setup

var layouts = map[string]Layout{}

// RegisterLayout adds a layout under the provided name.
func RegisterLayout(name string, l Layout) {
	if name == "" || l == nil {
		return
	}
	layouts[name] = l
}

// Layouts lists the registered layout names in order.
func Layouts() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupLayout(name string) (Layout, error) {
	l, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", name)
	}
	return l, nil
}

func init() {
	RegisterLayout("charon", func(cfg Config, _ func() tilemap.StartState) Setup {
		m := tilemap.New(cfg.Width, cfg.Height)
		m.SetActive(core.Centered(m.Size(), cfg.LevelWidth, cfg.LevelHeight))
		return Setup{Map: m, Tiles: cfg.Tiles, Progressive: true}
	})
	RegisterLayout("ferry", func(cfg Config, newStart func() tilemap.StartState) Setup {
		m := tilemap.New(5, 5)
		m.PlaceStart(core.Point{X: 0, Y: 2}, newStart())
		m.PlaceEnd(core.Point{X: 4, Y: 2})
		return Setup{Map: m, Tiles: max(cfg.Tiles, 3)}
	})
	RegisterLayout("delta", func(cfg Config, newStart func() tilemap.StartState) Setup {
		m := tilemap.New(7, 5)
		m.PlaceStart(core.Point{X: 0, Y: 2}, newStart())
		m.PlaceEnd(core.Point{X: 6, Y: 0})
		m.PlaceEnd(core.Point{X: 6, Y: 4})
		return Setup{Map: m, Tiles: max(cfg.Tiles, 16)}
	})
}
