package maze

import "math"

// Vec is a point or offset in world space.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

// Collider is an axis-aligned rectangle in world space anchored at its
// lower-left corner.
type Collider struct {
	X, Y float64
	W, H float64
}

// NewCollider returns a collider at pos with the given size.
func NewCollider(pos Vec, w, h float64) Collider {
	return Collider{X: pos.X, Y: pos.Y, W: w, H: h}
}

// CollidesWith reports whether c and o overlap. Rectangles that only share an
// edge or a corner do not collide.
func (c Collider) CollidesWith(o Collider) bool {
	return c.X < o.X+o.W && c.X+c.W > o.X &&
		c.Y < o.Y+o.H && c.Y+c.H > o.Y
}

// ColliderAt returns the world-space rectangle covered by grid cell (x, y).
func ColliderAt(x, y int) Collider {
	return Collider{
		X: float64(BlockSize * x),
		Y: float64(BlockSize * y),
		W: BlockSize,
		H: BlockSize,
	}
}

// CheckCollision reports whether c overlaps any Wall cell.
//
// It tests every cell of the grid, so a query costs O(width*height). That is
// fine for mazes of a few thousand cells; CheckCollisionNear gives the same
// answer by visiting only the cells under c.
func (m *Maze) CheckCollision(c Collider) bool {
	for y := 0; y < m.grid.H; y++ {
		for x := 0; x < m.grid.W; x++ {
			if m.IsWall(x, y) && ColliderAt(x, y).CollidesWith(c) {
				return true
			}
		}
	}
	return false
}

// CheckCollisionNear is CheckCollision restricted to the cells whose
// rectangles can intersect c's bounding box.
func (m *Maze) CheckCollisionNear(c Collider) bool {
	x0, x1 := cellSpan(c.X, c.W, m.grid.W)
	y0, y1 := cellSpan(c.Y, c.H, m.grid.H)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if m.IsWall(x, y) && ColliderAt(x, y).CollidesWith(c) {
				return true
			}
		}
	}
	return false
}

// cellSpan returns the inclusive range of cell indices along one axis that a
// segment [pos, pos+size] may touch, padded by one cell against rounding and
// clamped to [0, n-1]. The range is empty (lo > hi) when nothing can overlap.
func cellSpan(pos, size float64, n int) (int, int) {
	a, b := pos, pos+size
	if b < a {
		a, b = b, a
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, -1
	}
	lo := math.Floor(a/BlockSize) - 1
	hi := math.Ceil(b/BlockSize) + 1
	if lo < 0 {
		lo = 0
	}
	if hi > float64(n-1) {
		hi = float64(n - 1)
	}
	if lo > hi {
		return 0, -1
	}
	return int(lo), int(hi)
}
