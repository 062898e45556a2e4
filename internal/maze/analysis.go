package maze

import "mazegame/internal/core"

// Distances returns the 4-connected step distance from from to every cell,
// indexed row-major. Walls and unreachable cells hold -1.
func (m *Maze) Distances(from core.Point) []int {
	dist := make([]int, m.grid.W*m.grid.H)
	for i := range dist {
		dist[i] = -1
	}
	if m.grid.At(from.X, from.Y) != core.Path {
		return dist
	}
	dist[m.grid.Index(from.X, from.Y)] = 0
	queue := []core.Point{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		d := dist[m.grid.Index(p.X, p.Y)]
		for _, off := range core.Neighbors4 {
			n := p.Add(off)
			if m.grid.At(n.X, n.Y) != core.Path {
				continue
			}
			i := m.grid.Index(n.X, n.Y)
			if dist[i] >= 0 {
				continue
			}
			dist[i] = d + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// SolutionLength returns the number of steps from the start to the end, or
// -1 when the end is unreachable.
func (m *Maze) SolutionLength() int {
	return m.Distances(m.start)[m.grid.Index(m.end.X, m.end.Y)]
}

// DeadEnds counts Path cells with exactly one Path neighbor.
func (m *Maze) DeadEnds() int {
	n := 0
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			if m.grid.At(x, y) == core.Path && pathNeighbors(m.grid, x, y) == 1 {
				n++
			}
		}
	}
	return n
}
