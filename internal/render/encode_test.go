package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 100), G: uint8(y * 200), B: 50, A: 255})
		}
	}
	return img
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	decoders := map[string]func(io.Reader) (image.Image, error){
		".png":  png.Decode,
		".bmp":  bmp.Decode,
		".tiff": tiff.Decode,
	}
	src := testImage()
	for ext, decode := range decoders {
		path := filepath.Join(dir, "out"+ext)
		if err := WriteFile(path, src); err != nil {
			t.Fatalf("WriteFile(%s): %v", ext, err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open %s: %v", path, err)
		}
		got, err := decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", ext, err)
		}
		if got.Bounds() != src.Bounds() {
			t.Fatalf("%s bounds %v, want %v", ext, got.Bounds(), src.Bounds())
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				r1, g1, b1, _ := got.At(x, y).RGBA()
				r2, g2, b2, _ := src.At(x, y).RGBA()
				if r1>>8 != r2>>8 || g1>>8 != g2>>8 || b1>>8 != b2>>8 {
					t.Fatalf("%s pixel (%d,%d) differs", ext, x, y)
				}
			}
		}
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != len(decoders) {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestWriteFileFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("boom")
	RegisterEncoder(".fail", func(w io.Writer, img image.Image) error {
		w.Write([]byte("partial"))
		return boom
	})
	defer delete(encoders, ".fail")

	path := filepath.Join(dir, "out.fail")
	if err := WriteFile(path, testImage()); !errors.Is(err, boom) {
		t.Fatalf("WriteFile err=%v, want boom", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("failed write left %d files", len(entries))
	}
}

func TestEncoderForUnknownExtension(t *testing.T) {
	if _, err := EncoderFor("x.jpg2"); err == nil {
		t.Fatal("unknown extension must be rejected")
	}
	if _, err := EncoderFor("X.PNG"); err != nil {
		t.Fatalf("extension lookup must ignore case: %v", err)
	}
}

func TestDefaultFilename(t *testing.T) {
	if got := DefaultFilename(3, 6, 0); got != "img-3-6-0.png" {
		t.Fatalf("DefaultFilename = %q", got)
	}
}

func TestUpscale(t *testing.T) {
	src := testImage()
	if Upscale(src, 1) != image.Image(src) {
		t.Fatal("factor 1 must return the source")
	}
	up := Upscale(src, 4)
	if up.Bounds() != image.Rect(0, 0, 12, 8) {
		t.Fatalf("bounds %v", up.Bounds())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			if up.At(x, y) != src.At(x/4, y/4) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, up.At(x, y), src.At(x/4, y/4))
			}
		}
	}
}
