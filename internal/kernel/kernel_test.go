package kernel

import "testing"

func TestSpatialOrdering(t *testing.T) {
	for _, size := range []int{1, 2, 8, 27} {
		k := Spatial(size)
		if len(k) != SpatialLen(size) {
			t.Fatalf("size %d: len=%d, want %d", size, len(k), SpatialLen(size))
		}
		if k[0] != (Offset2{0, 0}) {
			t.Fatalf("size %d: first offset %v, want origin", size, k[0])
		}
		seen := make(map[Offset2]bool, len(k))
		for i, o := range k {
			if seen[o] {
				t.Fatalf("size %d: duplicate offset %v", size, o)
			}
			seen[o] = true
			if i > 0 && k[i-1].Dist2() > o.Dist2() {
				t.Fatalf("size %d: offset %d (%v) shorter than its predecessor %v", size, i, o, k[i-1])
			}
		}
	}
}

func TestSpatialTieBreakIsGenerationOrder(t *testing.T) {
	k := Spatial(3)
	want := []Offset2{{0, 0}, {-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	for i, o := range want {
		if k[i] != o {
			t.Fatalf("offset %d = %v, want %v (full prefix %v)", i, k[i], o, k[:len(want)])
		}
	}
}

func TestColorOrdering(t *testing.T) {
	for _, cs := range []int{1, 4, 9} {
		k := Color(cs)
		if len(k) != ColorLen(cs) {
			t.Fatalf("colorSize %d: len=%d, want %d", cs, len(k), ColorLen(cs))
		}
		for i := 1; i < len(k); i++ {
			if k[i-1].Dist2() > k[i].Dist2() {
				t.Fatalf("colorSize %d: offset %d (%v) shorter than %v", cs, i, k[i], k[i-1])
			}
		}
	}
	k := Color(4)
	want := []Offset3{{0, 0, 0}, {-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {0, 0, 1}, {0, 1, 0}, {1, 0, 0}}
	for i, o := range want {
		if k[i] != o {
			t.Fatalf("color offset %d = %v, want %v", i, k[i], o)
		}
	}
}

func TestDist2DoesNotOverflow(t *testing.T) {
	o := Offset3{-255, 255, -255}
	if got := o.Dist2(); got != 3*255*255 {
		t.Fatalf("Dist2 = %d", got)
	}
	s := Offset2{-4095, 4095}
	if got := s.Dist2(); got != 2*4095*4095 {
		t.Fatalf("Dist2 = %d", got)
	}
}

func TestNonPositiveSizes(t *testing.T) {
	if len(Spatial(0)) != 0 || len(Color(0)) != 0 || SpatialLen(-1) != 0 || ColorLen(-3) != 0 {
		t.Fatal("non-positive sizes must yield empty kernels")
	}
}
