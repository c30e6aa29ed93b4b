package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Upscale enlarges img by an integer factor with nearest-neighbor sampling
// so every source pixel becomes a sharp factor×factor block.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
