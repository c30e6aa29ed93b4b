// Package kernel builds the distance-ordered offset tables used to search
// outward from a point, both on the canvas and inside the color cube.
package kernel

import (
	"cmp"
	"slices"
)

// Offset2 is a spatial displacement (drow, dcol).
type Offset2 [2]int32

// Dist2 returns the squared length of o.
func (o Offset2) Dist2() int64 {
	r, c := int64(o[0]), int64(o[1])
	return r*r + c*c
}

// Offset3 is a color-space displacement (dr, dg, db).
type Offset3 [3]int16

// Dist2 returns the squared length of o.
func (o Offset3) Dist2() int64 {
	r, g, b := int64(o[0]), int64(o[1]), int64(o[2])
	return r*r + g*g + b*b
}

// SpatialLen is the number of offsets Spatial(size) returns.
func SpatialLen(size int) int {
	if size <= 0 {
		return 0
	}
	span := 2*size - 1
	return span * span
}

// ColorLen is the number of offsets Color(colorSize) returns.
func ColorLen(colorSize int) int {
	if colorSize <= 0 {
		return 0
	}
	span := 2*colorSize - 1
	return span * span * span
}

// Spatial returns every displacement with both components in
// [-(size-1), size-1], sorted by squared length. Equal lengths keep the
// row-major generation order.
func Spatial(size int) []Offset2 {
	out := make([]Offset2, 0, SpatialLen(size))
	bound := int32(size - 1)
	for dr := -bound; dr <= bound; dr++ {
		for dc := -bound; dc <= bound; dc++ {
			out = append(out, Offset2{dr, dc})
		}
	}
	slices.SortStableFunc(out, func(a, b Offset2) int {
		return cmp.Compare(a.Dist2(), b.Dist2())
	})
	return out
}

// Color returns every displacement with all components in
// [-(colorSize-1), colorSize-1], sorted by squared length. Equal lengths
// keep the (dr, dg, db) generation order.
func Color(colorSize int) []Offset3 {
	out := make([]Offset3, 0, ColorLen(colorSize))
	bound := int16(colorSize - 1)
	for dr := -bound; dr <= bound; dr++ {
		for dg := -bound; dg <= bound; dg++ {
			for db := -bound; db <= bound; db++ {
				out = append(out, Offset3{dr, dg, db})
			}
		}
	}
	slices.SortStableFunc(out, func(a, b Offset3) int {
		return cmp.Compare(a.Dist2(), b.Dist2())
	})
	return out
}
