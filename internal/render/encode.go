package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder writes an image in one file format.
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{}

// RegisterEncoder adds an encoder for a file extension such as ".png".
func RegisterEncoder(ext string, enc Encoder) {
	if ext == "" || enc == nil {
		return
	}
	encoders[strings.ToLower(ext)] = enc
}

// Encoders lists the registered extensions in sorted order.
func Encoders() []string {
	out := make([]string, 0, len(encoders))
	for ext := range encoders {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// EncoderFor picks the encoder matching the extension of path.
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("no encoder for %q (supported: %s)", ext, strings.Join(Encoders(), ", "))
	}
	return enc, nil
}

// DefaultFilename names the output of a run from its parameters.
func DefaultFilename(scale, numSeeds int, seed uint64) string {
	return fmt.Sprintf("img-%d-%d-%d.png", scale, numSeeds, seed)
}

// WriteFile encodes img into path. The image is written to a temporary file
// next to path and renamed into place, so a failed write never leaves a
// partial file behind.
func WriteFile(path string, img image.Image) error {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := enc(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

func init() {
	RegisterEncoder(".png", encodePNG)
	RegisterEncoder(".bmp", bmp.Encode)
	RegisterEncoder(".tif", encodeTIFF)
	RegisterEncoder(".tiff", encodeTIFF)
}
