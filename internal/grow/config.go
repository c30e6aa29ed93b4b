package grow

import (
	"fmt"

	"chromagrow/internal/kernel"
)

// MaxScale is the largest scale whose color-base channels fit in 8 bits
// (colorSize = scale² ≤ 256).
const MaxScale = 16

// ProgressFunc receives the completed percentage whenever it changes.
type ProgressFunc func(percent int)

// Config controls a single growth run.
type Config struct {
	Scale    int
	Seed     uint64
	NumSeeds int

	// MaxMemory caps EstimateMemory(Scale) in bytes. Zero disables the check.
	MaxMemory uint64

	Progress ProgressFunc
}

// DefaultConfig returns the standard configuration for scale: seed 0 and
// two nucleation sites per unit of scale, capped at the number of colors.
func DefaultConfig(scale int) Config {
	c := Config{Scale: scale}
	c.NumSeeds = 2 * scale
	if scale > 0 && scale <= MaxScale {
		c.NumSeeds = min(c.NumSeeds, c.Colors())
	}
	return c
}

// Size is the canvas side length, scale³.
func (c Config) Size() int { return c.Scale * c.Scale * c.Scale }

// ColorSize is the number of levels per channel, scale².
func (c Config) ColorSize() int { return c.Scale * c.Scale }

// Colors is the number of distinct color-bases, colorSize³. It always
// equals Size()².
func (c Config) Colors() int {
	cs := c.ColorSize()
	return cs * cs * cs
}

// Validate rejects configurations that cannot produce an image.
func (c Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return &ConfigError{Field: "scale", Reason: fmt.Sprintf("must be positive, got %d", c.Scale)}
	case c.Scale > MaxScale:
		return &ConfigError{Field: "scale", Reason: fmt.Sprintf("must be at most %d so channels fit in 8 bits, got %d", MaxScale, c.Scale)}
	case c.NumSeeds <= 0:
		return &ConfigError{Field: "numSeeds", Reason: fmt.Sprintf("must be positive, got %d", c.NumSeeds)}
	case c.NumSeeds > c.Colors():
		return &ConfigError{Field: "numSeeds", Reason: fmt.Sprintf("%d exceeds the %d available colors", c.NumSeeds, c.Colors())}
	}
	if c.MaxMemory > 0 {
		if need := EstimateMemory(c.Scale); need > c.MaxMemory {
			return &ConfigError{
				Field:  "scale",
				Reason: fmt.Sprintf("needs about %d MiB, budget is %d MiB", need>>20, c.MaxMemory>>20),
				limit:  true,
			}
		}
	}
	return nil
}

// EstimateMemory approximates the bytes a run at scale allocates: both
// kernels, the grid, the visitation order and the two color sets.
func EstimateMemory(scale int) uint64 {
	if scale <= 0 {
		return 0
	}
	size := scale * scale * scale
	cs := scale * scale
	locations := uint64(size) * uint64(size)
	colors := uint64(cs) * uint64(cs) * uint64(cs)

	var total uint64
	total += uint64(kernel.SpatialLen(size)) * 8 // Offset2
	total += uint64(kernel.ColorLen(cs)) * 6     // Offset3
	total += locations * 4                       // grid cells + flags
	total += locations * 4                       // visitation order
	total += colors * 8                          // unused: pos + slots
	total += colors * 8                          // frontier worst case
	return total
}
