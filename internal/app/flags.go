package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Theme  string
	Width  int
	Height int
	Scale  int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Theme: "mountain", Width: 120, Height: 90, Scale: 6, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Theme, "theme", c.Theme, "generation theme")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in tiles")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed")
}
