package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// ColorBase is a discretized color. Each channel lies in [0, colorSize).
type ColorBase [3]uint8

// Key packs c into a dense index in [0, colorSize³).
func (c ColorBase) Key(colorSize int) int {
	return (int(c[0])*colorSize+int(c[1]))*colorSize + int(c[2])
}

// ColorBaseFromKey is the inverse of ColorBase.Key.
func ColorBaseFromKey(key, colorSize int) ColorBase {
	b := key % colorSize
	key /= colorSize
	g := key % colorSize
	r := key / colorSize
	return ColorBase{uint8(r), uint8(g), uint8(b)}
}

// Dist2 returns the squared Euclidean distance between two color-bases.
func (c ColorBase) Dist2(o ColorBase) int64 {
	dr := int64(c[0]) - int64(o[0])
	dg := int64(c[1]) - int64(o[1])
	db := int64(c[2]) - int64(o[2])
	return dr*dr + dg*dg + db*db
}

// Less orders color-bases lexicographically by (r, g, b).
func (c ColorBase) Less(o ColorBase) bool {
	if c[0] != o[0] {
		return c[0] < o[0]
	}
	if c[1] != o[1] {
		return c[1] < o[1]
	}
	return c[2] < o[2]
}

// Location addresses one grid cell as (row, col).
type Location [2]int

// Sim is the contract the viewer drives. A sim advances one unit of work per
// Step and can paint its current state into an RGBA buffer.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed uint64)
	Step() bool
	Done() bool
	FillRGBA(buf []byte)
}
