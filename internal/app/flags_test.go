package app

import (
	"errors"
	"flag"
	"testing"

	"chromagrow/internal/grow"
)

func TestBindDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	cfg.BindViewer(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g := cfg.Grow()
	if g.Scale != 3 || g.NumSeeds != 6 || g.Seed != 0 || g.MaxMemory != 0 {
		t.Fatalf("defaults %+v", g)
	}
	if got := cfg.OutputPath(); got != "img-3-6-0.png" {
		t.Fatalf("OutputPath = %q", got)
	}
}

func TestBindOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-seed", "18446744073709551615", "-seeds", "3", "-max-mem", "64", "-out", "a.tiff", "2"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := cfg.ApplyArgs(fs.Args()); err != nil {
		t.Fatalf("ApplyArgs: %v", err)
	}
	g := cfg.Grow()
	if g.Scale != 2 || g.NumSeeds != 3 || g.Seed != 1<<64-1 || g.MaxMemory != 64<<20 {
		t.Fatalf("overrides %+v", g)
	}
	if cfg.OutputPath() != "a.tiff" {
		t.Fatalf("OutputPath = %q", cfg.OutputPath())
	}
}

func TestApplyArgsErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.ApplyArgs([]string{"big"}); err == nil {
		t.Fatal("non-numeric scale must be rejected")
	}
	if err := cfg.ApplyArgs([]string{"1", "2"}); err == nil {
		t.Fatal("extra positional arguments must be rejected")
	}
}

func TestRequestedSeedsAreNotClamped(t *testing.T) {
	cfg := NewConfig()
	cfg.Scale = 2
	cfg.Seeds = 65
	if err := cfg.Grow().Validate(); !errors.Is(err, grow.ErrConfig) {
		t.Fatalf("err=%v, want ErrConfig", err)
	}
}

func TestBatchFor(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.BatchFor(10); got != 1 {
		t.Fatalf("BatchFor(10) = %d, want 1", got)
	}
	if got := cfg.BatchFor(1200 * 100); got != 100 {
		t.Fatalf("BatchFor = %d, want 100", got)
	}
	cfg.Batch = 7
	if got := cfg.BatchFor(1 << 20); got != 7 {
		t.Fatalf("explicit batch ignored: %d", got)
	}
}
