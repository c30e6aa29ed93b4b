package core

import "testing"

func TestGridSetAndClear(t *testing.T) {
	g := NewGrid(3)
	if g.Filled() != 0 || g.Complete() {
		t.Fatal("new grid must be empty")
	}
	g.Set(1, 2, ColorBase{1, 2, 3})
	g.Set(1, 2, ColorBase{3, 2, 1})
	if g.Filled() != 1 {
		t.Fatalf("overwrite counted twice: filled=%d", g.Filled())
	}
	c, ok := g.At(1, 2)
	if !ok || c != (ColorBase{3, 2, 1}) {
		t.Fatalf("At(1,2) = %v,%v", c, ok)
	}
	if _, ok := g.AtIndex(g.Index(1, 2)); !ok {
		t.Fatal("AtIndex disagrees with At")
	}
	if g.InBounds(3, 0) || g.InBounds(0, -1) || !g.InBounds(2, 2) {
		t.Fatal("InBounds wrong at the edges")
	}
	g.Clear()
	if _, ok := g.At(1, 2); ok || g.Filled() != 0 {
		t.Fatal("Clear left cells assigned")
	}
}

func TestColorBaseKeyRoundTrip(t *testing.T) {
	const cs = 5
	seen := make(map[int]bool)
	for r := 0; r < cs; r++ {
		for g := 0; g < cs; g++ {
			for b := 0; b < cs; b++ {
				c := ColorBase{uint8(r), uint8(g), uint8(b)}
				k := c.Key(cs)
				if k < 0 || k >= cs*cs*cs || seen[k] {
					t.Fatalf("key %d for %v out of range or duplicated", k, c)
				}
				seen[k] = true
				if back := ColorBaseFromKey(k, cs); back != c {
					t.Fatalf("ColorBaseFromKey(%d) = %v, want %v", k, back, c)
				}
			}
		}
	}
}

func TestColorBaseOrdering(t *testing.T) {
	a := ColorBase{0, 2, 2}
	b := ColorBase{1, 0, 0}
	if !a.Less(b) || b.Less(a) || a.Less(a) {
		t.Fatal("Less is not lexicographic")
	}
	if d := a.Dist2(b); d != 1+4+4 {
		t.Fatalf("Dist2 = %d, want 9", d)
	}
}
