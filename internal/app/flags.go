package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Layout   string
	Seed     int64
	TPS      int
	HUDWidth int
	Tuning   string
	Keys     string
	NoSave   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Layout: "charon", Seed: 1337, TPS: 60, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Layout, "layout", c.Layout, "map layout to play")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for placement and steering jitter")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.Tuning, "tuning", c.Tuning, "YAML tuning file")
	fs.StringVar(&c.Keys, "keys", c.Keys, "TOML keybind file")
	fs.BoolVar(&c.NoSave, "nosave", c.NoSave, "do not persist scores")
}
