package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	HUDWidth int
	TPS      int
	Path     string // optional TOML simulation config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 960, Height: 720, HUDWidth: 280, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "simulation view width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Path, "config", c.Path, "TOML file with flock parameters")
}
