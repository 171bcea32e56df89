package config

import (
	"path/filepath"
	"testing"
)

func TestLoadKeybindsKeepsDefaults(t *testing.T) {
	kb, err := LoadKeybinds(filepath.Join("testdata", "keys.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if kb.Edit != (Bind{Mouse: true, Name: "right"}) {
		t.Fatalf("edit = %v", kb.Edit)
	}
	if kb.Reset != (Bind{Name: "Backspace"}) {
		t.Fatalf("reset = %v", kb.Reset)
	}
	def := DefaultKeybinds()
	if kb.Pause != def.Pause || kb.Quit != def.Quit || kb.Heat != def.Heat {
		t.Fatal("unmentioned actions must keep defaults")
	}
}

func TestParseKeybindsErrors(t *testing.T) {
	cases := []string{
		"[keys]\nedit = \"mouse:thumb\"\n",
		"[keys]\nquit = \"\"\n",
		"[keys]\njump = \"J\"\n",
		"[keys\n",
	}
	for _, data := range cases {
		if _, err := ParseKeybinds(data); err == nil {
			t.Fatalf("expected error for %q", data)
		}
	}
}

func TestParseBind(t *testing.T) {
	cases := []struct {
		raw  string
		want Bind
	}{
		{"Space", Bind{Name: "Space"}},
		{" r ", Bind{Name: "r"}},
		{"MOUSE:Left", Bind{Mouse: true, Name: "left"}},
	}
	for _, tc := range cases {
		got, err := ParseBind(tc.raw)
		if err != nil || got != tc.want {
			t.Fatalf("ParseBind(%q) = %v, %v", tc.raw, got, err)
		}
	}
	if got := (Bind{Mouse: true, Name: "middle"}).String(); got != "mouse:middle" {
		t.Fatalf("String() = %q", got)
	}
}
