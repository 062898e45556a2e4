// Package maze generates grid mazes and answers collision queries against
// their wall geometry.
//
// Grid coordinates are integer cell indices. World coordinates are continuous
// units where one cell spans BlockSize units on each axis and Y grows upwards.
package maze

import (
	"errors"
	"fmt"
	"strings"

	"mazegame/internal/core"
)

// BlockSize is the world-space edge length of one grid cell.
const BlockSize = 10

// ErrInvalidMaze reports a Maze built from inconsistent parts.
var ErrInvalidMaze = errors.New("invalid maze")

// Maze is an immutable occupancy grid with a start and an end cell.
type Maze struct {
	grid  *core.Grid
	start core.Point
	end   core.Point
	order []core.Point
}

// New validates the parts and assembles a Maze. The grid is owned by the Maze
// afterwards and must not be mutated by the caller.
func New(grid *core.Grid, start, end core.Point) (*Maze, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidMaze)
	}
	if grid.W <= 0 || grid.H <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidMaze, grid.W, grid.H)
	}
	if len(grid.Cells()) != grid.W*grid.H {
		return nil, fmt.Errorf("%w: %d cells for %dx%d grid", ErrInvalidMaze, len(grid.Cells()), grid.W, grid.H)
	}
	if !grid.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: start %v out of bounds", ErrInvalidMaze, start)
	}
	if !grid.InBounds(end.X, end.Y) {
		return nil, fmt.Errorf("%w: end %v out of bounds", ErrInvalidMaze, end)
	}
	if grid.At(start.X, start.Y) != core.Path {
		return nil, fmt.Errorf("%w: start %v is a wall", ErrInvalidMaze, start)
	}
	if grid.At(end.X, end.Y) != core.Path {
		return nil, fmt.Errorf("%w: end %v is a wall", ErrInvalidMaze, end)
	}
	return &Maze{grid: grid, start: start, end: end}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.W }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.H }

// Size returns the grid dimensions.
func (m *Maze) Size() core.Size { return core.Size{W: m.grid.W, H: m.grid.H} }

// Start is the cell the player begins in.
func (m *Maze) Start() core.Point { return m.start }

// End is the last cell carved during generation.
func (m *Maze) End() core.Point { return m.end }

// At returns the cell at (x, y). Cells outside the grid read as Wall.
func (m *Maze) At(x, y int) core.Cell { return m.grid.At(x, y) }

// IsWall reports whether (x, y) is an in-bounds Wall cell.
func (m *Maze) IsWall(x, y int) bool {
	return m.grid.InBounds(x, y) && m.grid.At(x, y) == core.Wall
}

// Paths returns the number of Path cells.
func (m *Maze) Paths() int { return m.grid.Count(core.Path) }

// Carved returns the number of carve steps the generator performed. Mazes not
// built by the generator report 0.
func (m *Maze) Carved() int { return len(m.order) }

// CarveOrder returns the carved cells in the order the generator opened them,
// excluding the origin.
func (m *Maze) CarveOrder() []core.Point {
	out := make([]core.Point, len(m.order))
	copy(out, m.order)
	return out
}

// Binary returns the grid as 0/1 bytes with 1 marking Path cells.
func (m *Maze) Binary() []uint8 { return m.grid.Binary() }

// String renders the maze as text with the top row (highest Y) first.
// '#' is a wall, '.' a path, 'S' the start and 'E' the end.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((m.grid.W + 1) * m.grid.H)
	for y := m.grid.H - 1; y >= 0; y-- {
		for x := 0; x < m.grid.W; x++ {
			p := core.Point{X: x, Y: y}
			switch {
			case p == m.start:
				b.WriteByte('S')
			case p == m.end:
				b.WriteByte('E')
			case m.grid.At(x, y) == core.Path:
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a Maze from the text produced by String. A missing 'S'
// places the start at (0,0); a missing 'E' places the end on the start.
func Parse(text string) (*Maze, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	h := len(lines)
	w := len(strings.TrimSpace(lines[0]))
	if w == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidMaze)
	}
	grid := core.NewGrid(w, h)
	start := core.Point{}
	end := core.Point{X: -1, Y: -1}
	for row, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMaze, row, len(line), w)
		}
		y := h - 1 - row
		for x, ch := range line {
			switch ch {
			case '#':
			case '.':
				grid.Set(x, y, core.Path)
			case 'S':
				grid.Set(x, y, core.Path)
				start = core.Point{X: x, Y: y}
			case 'E':
				grid.Set(x, y, core.Path)
				end = core.Point{X: x, Y: y}
			default:
				return nil, fmt.Errorf("%w: unexpected %q at row %d", ErrInvalidMaze, ch, row)
			}
		}
	}
	if end.X < 0 {
		end = start
	}
	return New(grid, start, end)
}
