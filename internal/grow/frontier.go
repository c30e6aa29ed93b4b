package grow

import (
	"slices"

	"chromagrow/internal/core"
	"chromagrow/internal/sampler"
)

// Frontier tracks the unused colors that are one unit, on one channel, away
// from at least one placed color.
type Frontier struct {
	colorSize int
	set       *sampler.Set
}

// NewFrontier returns an empty frontier over a colorSize³ cube.
func NewFrontier(colorSize int) *Frontier {
	return &Frontier{colorSize: colorSize, set: sampler.NewSet(colorSize * colorSize * colorSize)}
}

// Len returns the number of frontier colors.
func (f *Frontier) Len() int { return f.set.Len() }

// Contains reports whether c is on the frontier.
func (f *Frontier) Contains(c core.ColorBase) bool { return f.set.Contains(c.Key(f.colorSize)) }

// Remove drops c from the frontier.
func (f *Frontier) Remove(c core.ColorBase) bool { return f.set.Remove(c.Key(f.colorSize)) }

// Expand adds every in-cube axis neighbor of c that unused still holds and
// returns how many were newly added.
func (f *Frontier) Expand(c core.ColorBase, unused *sampler.Set) int {
	added := 0
	for _, n := range Neighbors(c, f.colorSize) {
		key := n.Key(f.colorSize)
		if unused.Contains(key) && f.set.Insert(key) {
			added++
		}
	}
	return added
}

// Nearest returns the frontier color closest to ref. Ties go to the
// lexicographically smallest (r, g, b).
func (f *Frontier) Nearest(ref core.ColorBase) (core.ColorBase, bool) {
	var (
		best  core.ColorBase
		bestD int64 = -1
	)
	f.set.Each(func(key int) {
		c := core.ColorBaseFromKey(key, f.colorSize)
		d := c.Dist2(ref)
		if bestD < 0 || d < bestD || (d == bestD && c.Less(best)) {
			best, bestD = c, d
		}
	})
	return best, bestD >= 0
}

// Members returns the frontier colors in lexicographic order.
func (f *Frontier) Members() []core.ColorBase {
	out := make([]core.ColorBase, 0, f.set.Len())
	f.set.Each(func(key int) {
		out = append(out, core.ColorBaseFromKey(key, f.colorSize))
	})
	slices.SortFunc(out, func(a, b core.ColorBase) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	return out
}

// Neighbors returns the up-to-six axis neighbors of c inside a colorSize³
// cube, in -r, +r, -g, +g, -b, +b order.
func Neighbors(c core.ColorBase, colorSize int) []core.ColorBase {
	out := make([]core.ColorBase, 0, 6)
	top := uint8(colorSize - 1)
	for ch := 0; ch < 3; ch++ {
		if c[ch] > 0 {
			n := c
			n[ch]--
			out = append(out, n)
		}
		if c[ch] < top {
			n := c
			n[ch]++
			out = append(out, n)
		}
	}
	return out
}
