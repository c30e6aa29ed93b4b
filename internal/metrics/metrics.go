// Package metrics measures how smooth a finished image is and whether it
// uses every color exactly once.
package metrics

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/stat"
)

// Report summarizes an image. Delta values are CIE76 distances in L*a*b*
// between each pixel and its right and lower neighbors.
type Report struct {
	Pixels    int
	Distinct  int
	Bijective bool

	Pairs       int
	MeanDelta   float64
	StdDelta    float64
	MedianDelta float64
	P95Delta    float64
}

// Analyze computes a Report for img.
func Analyze(img image.Image) Report {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rep := Report{Pixels: w * h}
	if rep.Pixels == 0 {
		return rep
	}

	distinct := make(map[[3]uint8]struct{}, rep.Pixels)
	colors := make([]colorful.Color, rep.Pixels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			key := [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)}
			distinct[key] = struct{}{}
			colors[y*w+x] = colorful.Color{R: float64(key[0]) / 255, G: float64(key[1]) / 255, B: float64(key[2]) / 255}
		}
	}
	rep.Distinct = len(distinct)
	rep.Bijective = rep.Distinct == rep.Pixels

	deltas := make([]float64, 0, 2*rep.Pixels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if x+1 < w {
				deltas = append(deltas, colors[i].DistanceLab(colors[i+1]))
			}
			if y+1 < h {
				deltas = append(deltas, colors[i].DistanceLab(colors[i+w]))
			}
		}
	}
	rep.Pairs = len(deltas)
	if rep.Pairs == 0 {
		return rep
	}
	sort.Float64s(deltas)
	rep.MeanDelta, rep.StdDelta = stat.MeanStdDev(deltas, nil)
	if math.IsNaN(rep.StdDelta) {
		rep.StdDelta = 0
	}
	rep.MedianDelta = stat.Quantile(0.5, stat.Empirical, deltas, nil)
	rep.P95Delta = stat.Quantile(0.95, stat.Empirical, deltas, nil)
	return rep
}

func (r Report) String() string {
	return fmt.Sprintf("pixels=%d distinct=%d bijective=%t dE mean=%.4f sd=%.4f median=%.4f p95=%.4f",
		r.Pixels, r.Distinct, r.Bijective, r.MeanDelta, r.StdDelta, r.MedianDelta, r.P95Delta)
}
