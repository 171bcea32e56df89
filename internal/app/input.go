//go:build ebiten

package app

import (
	"fmt"

	"charon/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// control is a resolved Bind.
type control struct {
	mouse  bool
	button ebiten.MouseButton
	key    ebiten.Key
}

func (c control) justPressed() bool {
	if c.mouse {
		return inpututil.IsMouseButtonJustPressed(c.button)
	}
	return inpututil.IsKeyJustPressed(c.key)
}

func (c control) pressed() bool {
	if c.mouse {
		return ebiten.IsMouseButtonPressed(c.button)
	}
	return ebiten.IsKeyPressed(c.key)
}

type bindings struct {
	edit, pause, step, reset, grow, quit control
	heat                                 ebiten.Key
}

func resolve(kb config.Keybinds) (bindings, error) {
	var b bindings
	pairs := []struct {
		name string
		in   config.Bind
		out  *control
	}{
		{"edit", kb.Edit, &b.edit},
		{"pause", kb.Pause, &b.pause},
		{"step", kb.Step, &b.step},
		{"reset", kb.Reset, &b.reset},
		{"grow", kb.Grow, &b.grow},
		{"quit", kb.Quit, &b.quit},
	}
	for _, p := range pairs {
		c, err := toControl(p.in)
		if err != nil {
			return bindings{}, fmt.Errorf("bind %s: %w", p.name, err)
		}
		*p.out = c
	}
	heat, err := toControl(kb.Heat)
	if err != nil {
		return bindings{}, fmt.Errorf("bind heat: %w", err)
	}
	if heat.mouse {
		return bindings{}, fmt.Errorf("bind heat: must be a key, got %q", kb.Heat)
	}
	b.heat = heat.key
	return b, nil
}

func toControl(in config.Bind) (control, error) {
	if in.Mouse {
		switch in.Name {
		case "left":
			return control{mouse: true, button: ebiten.MouseButtonLeft}, nil
		case "right":
			return control{mouse: true, button: ebiten.MouseButtonRight}, nil
		case "middle":
			return control{mouse: true, button: ebiten.MouseButtonMiddle}, nil
		}
		return control{}, fmt.Errorf("unknown mouse button %q", in.Name)
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(in.Name)); err != nil {
		return control{}, fmt.Errorf("unknown key %q: %w", in.Name, err)
	}
	return control{key: k}, nil
}
