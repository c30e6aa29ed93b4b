package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"chromagrow/internal/core"
)

// ErrIncomplete is returned when a grid still has unassigned locations.
var ErrIncomplete = errors.New("grid is not fully populated")

// Channel rescales a color-base channel from [0, colorSize-1] to [0, 255],
// rounding to nearest. A single-level cube maps to 0.
func Channel(base uint8, colorSize int) uint8 {
	top := colorSize - 1
	if top <= 0 {
		return 0
	}
	return uint8((int(base)*255*2 + top) / (2 * top))
}

// ToNRGBA converts a color-base into an opaque 8-bit color.
func ToNRGBA(c core.ColorBase, colorSize int) color.NRGBA {
	return color.NRGBA{
		R: Channel(c[0], colorSize),
		G: Channel(c[1], colorSize),
		B: Channel(c[2], colorSize),
		A: 0xff,
	}
}

// Assemble renders a complete grid: x is the column and y the row.
func Assemble(g *core.Grid, colorSize int) (*image.NRGBA, error) {
	if !g.Complete() {
		return nil, fmt.Errorf("assemble %dx%d: %w (%d filled)", g.W, g.H, ErrIncomplete, g.Filled())
	}
	img := image.NewNRGBA(image.Rect(0, 0, g.W, g.H))
	FillRGBA(img.Pix, g, colorSize)
	return img, nil
}

// FillRGBA writes the grid into buf as tightly packed RGBA bytes.
// Unassigned cells become transparent black.
func FillRGBA(buf []byte, g *core.Grid, colorSize int) {
	total := g.W * g.H
	if len(buf) < total*4 {
		return
	}
	for i := 0; i < total; i++ {
		base := i * 4
		c, ok := g.AtIndex(i)
		if !ok {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		col := ToNRGBA(c, colorSize)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
