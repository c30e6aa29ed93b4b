package app

import (
	"flag"
	"fmt"
	"strconv"

	"chromagrow/internal/grow"
	"chromagrow/internal/render"
)

// Config represents the command-line parameters shared by the generator and
// the viewer.
type Config struct {
	Scale     int
	Seed      uint64
	Seeds     int
	MaxMemMiB uint64

	Out   string
	Zoom  int
	Stats bool
	Quiet bool

	TPS      int
	Batch    int
	Pixel    int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 3, Zoom: 1, TPS: 60, Pixel: 2, HUDWidth: 200}
}

// Bind attaches the generation parameters to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "scale N: canvas is N³ pixels wide, N² levels per channel")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for the random source")
	fs.IntVar(&c.Seeds, "seeds", c.Seeds, "number of nucleation sites (0 = 2·scale)")
	fs.Uint64Var(&c.MaxMemMiB, "max-mem", c.MaxMemMiB, "refuse scales estimated to need more MiB than this (0 = no limit)")
	fs.StringVar(&c.Out, "out", c.Out, "output file; extension picks the format (default img-{scale}-{seeds}-{seed}.png)")
	fs.IntVar(&c.Zoom, "zoom", c.Zoom, "integer upscale factor applied before writing")
	fs.BoolVar(&c.Stats, "stats", c.Stats, "print smoothness statistics for the result")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress progress output")
}

// BindViewer attaches the viewer-only parameters to the provided FlagSet.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Batch, "batch", c.Batch, "locations placed per tick (0 = finish in about twenty seconds)")
	fs.IntVar(&c.Pixel, "pixel", c.Pixel, "pixel scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel (0 hides it)")
}

// ApplyArgs reads an optional positional scale, as in `chromagrow 4`.
func (c *Config) ApplyArgs(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("scale %q is not an integer", args[0])
		}
		c.Scale = n
		return nil
	default:
		return fmt.Errorf("expected at most one positional argument (scale), got %d", len(args))
	}
}

// Grow converts the flags into an engine configuration.
func (c *Config) Grow() grow.Config {
	cfg := grow.DefaultConfig(c.Scale)
	cfg.Seed = c.Seed
	if c.Seeds != 0 {
		cfg.NumSeeds = c.Seeds
	}
	cfg.MaxMemory = c.MaxMemMiB << 20
	return cfg
}

// OutputPath returns -out or the default name derived from the parameters.
func (c *Config) OutputPath() string {
	if c.Out != "" {
		return c.Out
	}
	g := c.Grow()
	return render.DefaultFilename(g.Scale, g.NumSeeds, g.Seed)
}

// BatchFor returns how many locations the viewer places per tick.
func (c *Config) BatchFor(total int) int {
	if c.Batch > 0 {
		return c.Batch
	}
	tps := c.TPS
	if tps <= 0 {
		tps = 60
	}
	return max(1, total/(tps*20))
}
