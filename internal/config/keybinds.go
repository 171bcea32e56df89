package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Bind names one input: a keyboard key by name or a mouse button.
type Bind struct {
	Mouse bool
	Name  string
}

func (b Bind) String() string {
	if b.Mouse {
		return "mouse:" + b.Name
	}
	return b.Name
}

// ParseBind accepts key names such as "R" or "Space" and mouse buttons as
// "mouse:left", "mouse:right" or "mouse:middle".
func ParseBind(raw string) (Bind, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Bind{}, fmt.Errorf("empty binding")
	}
	if rest, ok := strings.CutPrefix(strings.ToLower(raw), "mouse:"); ok {
		switch rest {
		case "left", "right", "middle":
			return Bind{Mouse: true, Name: rest}, nil
		}
		return Bind{}, fmt.Errorf("unknown mouse button %q", rest)
	}
	if strings.ContainsAny(raw, " \t:") {
		return Bind{}, fmt.Errorf("invalid key name %q", raw)
	}
	return Bind{Name: raw}, nil
}

// Keybinds maps game actions to inputs.
type Keybinds struct {
	Edit  Bind
	Pause Bind
	Step  Bind
	Reset Bind
	Grow  Bind
	Heat  Bind
	Quit  Bind
}

// DefaultKeybinds returns the standard bindings.
func DefaultKeybinds() Keybinds {
	return Keybinds{
		Edit:  Bind{Mouse: true, Name: "left"},
		Pause: Bind{Name: "Space"},
		Step:  Bind{Name: "N"},
		Reset: Bind{Name: "R"},
		Grow:  Bind{Name: "G"},
		Heat:  Bind{Name: "H"},
		Quit:  Bind{Name: "Escape"},
	}
}

type keybindFile struct {
	Keys struct {
		Edit  string `toml:"edit"`
		Pause string `toml:"pause"`
		Step  string `toml:"step"`
		Reset string `toml:"reset"`
		Grow  string `toml:"grow"`
		Heat  string `toml:"heat"`
		Quit  string `toml:"quit"`
	} `toml:"keys"`
}

// LoadKeybinds reads a TOML keybind file. Actions the file does not mention
// keep their default binding.
func LoadKeybinds(path string) (Keybinds, error) {
	var raw keybindFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Keybinds{}, fmt.Errorf("load keybinds: %w", err)
	}
	return applyKeybinds(meta, raw)
}

// ParseKeybinds decodes TOML keybind data.
func ParseKeybinds(data string) (Keybinds, error) {
	var raw keybindFile
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Keybinds{}, fmt.Errorf("parse keybinds: %w", err)
	}
	return applyKeybinds(meta, raw)
}

func applyKeybinds(meta toml.MetaData, raw keybindFile) (Keybinds, error) {
	kb := DefaultKeybinds()
	fields := []struct {
		key string
		val string
		dst *Bind
	}{
		{"edit", raw.Keys.Edit, &kb.Edit},
		{"pause", raw.Keys.Pause, &kb.Pause},
		{"step", raw.Keys.Step, &kb.Step},
		{"reset", raw.Keys.Reset, &kb.Reset},
		{"grow", raw.Keys.Grow, &kb.Grow},
		{"heat", raw.Keys.Heat, &kb.Heat},
		{"quit", raw.Keys.Quit, &kb.Quit},
	}
	for _, f := range fields {
		if !meta.IsDefined("keys", f.key) {
			continue
		}
		b, err := ParseBind(f.val)
		if err != nil {
			return Keybinds{}, fmt.Errorf("parse keys.%s: %w", f.key, err)
		}
		*f.dst = b
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Keybinds{}, fmt.Errorf("unknown keybind entries: %v", undecoded)
	}
	return kb, nil
}
