package maze

import "mazegame/internal/core"

// Generator carves spanning-tree mazes with a random frontier walk.
//
// Every pass scans the whole grid for Wall cells touching exactly one Path
// cell and opens one of them at random. A cell with two or more Path
// neighbours would join two branches, so it is never opened and the carved
// cells always form a tree rooted at the origin.
type Generator struct {
	w, h int
	rng  *core.RNG

	frontier []core.Point
}

// NewGenerator returns a generator for a w*h maze drawing from rng. A nil rng
// is replaced with a time-seeded one.
func NewGenerator(w, h int, rng *core.RNG) *Generator {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if rng == nil {
		rng = core.NewTimeRNG()
	}
	return &Generator{w: w, h: h, rng: rng}
}

// Generate builds a w*h maze using a freshly seeded random source.
func Generate(w, h int) *Maze {
	return NewGenerator(w, h, nil).Generate()
}

// Generate carves a new maze. Each call produces an independent layout.
func (g *Generator) Generate() *Maze {
	grid := core.NewGrid(g.w, g.h)
	grid.Set(0, 0, core.Path)

	last := core.Point{}
	var order []core.Point
	for {
		g.collectFrontier(grid)
		if len(g.frontier) == 0 {
			break
		}
		pick := g.frontier[g.rng.IntN(len(g.frontier))]
		grid.Set(pick.X, pick.Y, core.Path)
		order = append(order, pick)
		last = pick
	}

	m, err := New(grid, core.Point{}, last)
	if err != nil {
		// The origin and every carved cell are Path by construction.
		panic(err)
	}
	m.order = order
	return m
}

func (g *Generator) collectFrontier(grid *core.Grid) {
	g.frontier = g.frontier[:0]
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if grid.At(x, y) != core.Wall {
				continue
			}
			if pathNeighbors(grid, x, y) == 1 {
				g.frontier = append(g.frontier, core.Point{X: x, Y: y})
			}
		}
	}
}

func pathNeighbors(grid *core.Grid, x, y int) int {
	n := 0
	for _, d := range core.Neighbors4 {
		nx, ny := x+d.X, y+d.Y
		if grid.InBounds(nx, ny) && grid.At(nx, ny) == core.Path {
			n++
		}
	}
	return n
}
