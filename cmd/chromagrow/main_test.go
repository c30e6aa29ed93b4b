package main

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chromagrow/internal/app"
	"chromagrow/internal/grow"
)

func TestRunWritesImage(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Scale = 2
	cfg.Quiet = true
	cfg.Zoom = 3
	cfg.Out = filepath.Join(t.TempDir(), "out.png")
	if err := run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(cfg.Out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 24 {
		t.Fatalf("bounds %v, want 24x24", b)
	}
}

func TestRunRejectsBadConfigWithoutWriting(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Scale = 2
	cfg.Seeds = 100
	cfg.Quiet = true
	cfg.Out = filepath.Join(t.TempDir(), "out.png")
	if err := run(cfg); !errors.Is(err, grow.ErrConfig) {
		t.Fatalf("err=%v, want ErrConfig", err)
	}
	if _, err := os.Stat(cfg.Out); !os.IsNotExist(err) {
		t.Fatalf("rejected run left a file: %v", err)
	}
}

func TestRunRejectsUnknownFormatBeforeWork(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Scale = 2
	cfg.Quiet = true
	cfg.Out = filepath.Join(t.TempDir(), "out.xyz")
	if err := run(cfg); err == nil {
		t.Fatal("unknown extension must be rejected")
	}
}
