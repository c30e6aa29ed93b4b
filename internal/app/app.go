//go:build ebiten

package app

import (
	"image/color"
	"math/rand/v2"

	"chromagrow/internal/core"
	"chromagrow/internal/render"
	"chromagrow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a growth run to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	background color.Color

	scale    int
	batch    int
	paused   bool
	tickOnce bool
	seed     uint64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, batch, hudWidth int, seed uint64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	if batch <= 0 {
		batch = 1
	}
	return &Game{
		sim:        sim,
		painter:    gp,
		hud:        ui.NewHUD(sim, hudWidth),
		background: color.Black,
		scale:      scale,
		batch:      batch,
		seed:       seed,
	}
}

// Reset restarts the run with the provided seed.
func (g *Game) Reset(seed uint64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(rand.Uint64())
	}

	if (!g.paused) || g.tickOnce {
		for i := 0; i < g.batch && g.sim.Step(); i++ {
		}
		g.tickOnce = false
	}
	g.hud.Update()
	return nil
}

// Draw renders the current canvas and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Blit(screen, g.sim, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
