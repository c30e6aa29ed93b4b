//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"chromagrow/internal/app"
	"chromagrow/internal/grow"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("viewer: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()
	if err := cfg.ApplyArgs(flag.Args()); err != nil {
		log.Fatal(err)
	}

	engine, err := grow.New(cfg.Grow())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(engine, cfg.Pixel, cfg.BatchFor(engine.Total()), cfg.HUDWidth, cfg.Seed)
	size := engine.Size()
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("chromagrow — " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	log.Printf("%dx%d canvas, %d colors per channel", size.W, size.H, engine.ColorSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
