package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"chromagrow/internal/app"
	"chromagrow/internal/grow"
	"chromagrow/internal/metrics"
	"chromagrow/internal/render"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("chromagrow: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [scale]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := cfg.ApplyArgs(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	if cfg.Zoom < 1 {
		fmt.Fprintf(os.Stderr, "zoom must be at least 1, got %d\n", cfg.Zoom)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	gcfg := cfg.Grow()
	if err := gcfg.Validate(); err != nil {
		return err
	}
	out := cfg.OutputPath()
	if _, err := render.EncoderFor(out); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Printf("Start %s\n", out)
		gcfg.Progress = func(p int) { fmt.Printf("%d%%\n", p) }
	}

	start := time.Now()
	engine, err := grow.New(gcfg)
	if err != nil {
		return err
	}
	grid, err := engine.Run()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	img, err := render.Assemble(grid, engine.ColorSize())
	if err != nil {
		return err
	}
	if cfg.Stats {
		fmt.Println(metrics.Analyze(img))
	}

	var final image.Image = img
	if cfg.Zoom > 1 {
		final = render.Upscale(img, cfg.Zoom)
	}
	if err := render.WriteFile(out, final); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Printf("Wrote %s (%dx%d) in %s\n", out, final.Bounds().Dx(), final.Bounds().Dy(), elapsed.Round(time.Millisecond))
	}
	return nil
}
