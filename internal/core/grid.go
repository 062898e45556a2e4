package core

// Cell is the occupancy state of a single grid cell.
type Cell uint8

const (
	Wall Cell = iota
	Path
)

// Grid stores a 2D grid of cells in row-major order.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a grid with the given dimensions. Every cell starts as a
// Wall.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// GridFromCells wraps an existing row-major buffer. The caller hands over
// ownership of cells.
func GridFromCells(w, h int, cells []Cell) *Grid {
	return &Grid{W: w, H: h, data: cells}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the cell at (x, y). Out of bounds coordinates read as Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.data[g.Index(x, y)]
}

// Set writes the cell at (x, y). Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = c
}

// Count returns how many cells hold the value c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.data {
		if v == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := make([]Cell, len(g.data))
	copy(cp, g.data)
	return &Grid{W: g.W, H: g.H, data: cp}
}

// Binary returns the grid as 0/1 bytes (1 for Path), the layout GridPainter
// expects.
func (g *Grid) Binary() []uint8 {
	out := make([]uint8, len(g.data))
	for i, c := range g.data {
		if c == Path {
			out[i] = 1
		}
	}
	return out
}
