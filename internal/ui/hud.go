//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"chromagrow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 10
	hudLineHeight = 16
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudTitle      = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	hudLabel      = color.RGBA{R: 150, G: 150, B: 165, A: 255}
	hudValue      = color.RGBA{R: 220, G: 220, B: 140, A: 255}
)

// HUD renders the parameter panel to the right of the canvas.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
}

// NewHUD constructs a HUD for the provided sim and panel width. A width of
// zero disables the panel and returns nil.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the panel width, zero for a disabled HUD.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the sim.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(hudBackground)

	face := basicfont.Face7x13
	y := hudPadding + hudLineHeight
	text.Draw(h.panel, h.title, face, hudPadding, y, hudTitle)
	for _, group := range h.snapshot.Groups {
		y += hudLineHeight + hudLineHeight/2
		header := group.Name
		if group.Summary != "" {
			header = fmt.Sprintf("%s (%s)", group.Name, group.Summary)
		}
		text.Draw(h.panel, header, face, hudPadding, y, hudTitle)
		for _, p := range group.Params {
			y += hudLineHeight
			text.Draw(h.panel, p.Label, face, hudPadding, y, hudLabel)
			text.Draw(h.panel, formatValue(p), face, h.width/2, y, hudValue)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	return strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:]
}

func formatValue(p core.Parameter) string {
	if p.Type == core.ParamTypePercent {
		return p.Value + "%"
	}
	return p.Value
}
