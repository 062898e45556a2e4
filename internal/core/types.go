package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Point addresses a grid cell.
type Point struct {
	X int
	Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Neighbors4 lists the N/E/S/W offsets.
var Neighbors4 = [4]Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}
