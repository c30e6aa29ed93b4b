package core

// Grid maps every location of a square canvas to an optional color-base.
// Cells are stored in row-major order.
type Grid struct {
	W, H   int
	data   []ColorBase
	set    []bool
	filled int
}

// NewGrid allocates an empty grid with the given side length.
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = 1
	}
	n := size * size
	return &Grid{W: size, H: size, data: make([]ColorBase, n), set: make([]bool, n)}
}

// Index returns the linear slice index for location (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// At returns the color assigned to (row, col), if any.
func (g *Grid) At(row, col int) (ColorBase, bool) {
	i := g.Index(row, col)
	return g.data[i], g.set[i]
}

// AtIndex is At for a linear index.
func (g *Grid) AtIndex(i int) (ColorBase, bool) { return g.data[i], g.set[i] }

// Set assigns c to (row, col). Assigning an already assigned cell overwrites it.
func (g *Grid) Set(row, col int, c ColorBase) {
	i := g.Index(row, col)
	if !g.set[i] {
		g.filled++
	}
	g.data[i] = c
	g.set[i] = true
}

// Filled returns the number of assigned cells.
func (g *Grid) Filled() int { return g.filled }

// Complete reports whether every cell holds a color.
func (g *Grid) Complete() bool { return g.filled == len(g.data) }

// Clear empties the grid.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = ColorBase{}
		g.set[i] = false
	}
	g.filled = 0
}
