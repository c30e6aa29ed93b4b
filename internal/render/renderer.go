//go:build ebiten

package render

import (
	"chromagrow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an ebiten image in sync with a sim's RGBA output.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the sim's current pixels and draws them scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	size := sim.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	sim.FillRGBA(gp.buf)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
