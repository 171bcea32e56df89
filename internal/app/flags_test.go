package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("charon", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-layout", "delta", "-seed", "4", "-hud", "0", "-nosave"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Layout != "delta" || cfg.Seed != 4 || cfg.HUDWidth != 0 || !cfg.NoSave {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.TPS != 60 {
		t.Fatalf("unset flag changed: tps=%d", cfg.TPS)
	}
}
