// Package player moves the avatar through a maze.
package player

import (
	"mazegame/internal/core"
	"mazegame/internal/input"
	"mazegame/internal/maze"
	"mazegame/internal/render"
)

const (
	// Size is the edge length of the square avatar in world units.
	Size = maze.BlockSize / 2
	// DefaultSpeed is the avatar speed in world units per second.
	DefaultSpeed = 20.0
)

// DefaultStart centers the avatar inside the origin cell.
var DefaultStart = maze.Vec{X: maze.BlockSize / 4.0, Y: maze.BlockSize / 4.0}

// Player is the avatar: a square collider steered by the input snapshot.
type Player struct {
	maze  *maze.Maze
	pos   maze.Vec
	start maze.Vec
	speed float64
	shape *render.Shape

	strictCorners bool
}

// New places a player at start inside m.
func New(m *maze.Maze, start maze.Vec, speed float64) *Player {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	p := &Player{
		maze:  m,
		pos:   start,
		start: start,
		speed: speed,
		shape: render.NewRect(Size, Size, render.Avatar),
	}
	p.shape.Translate(start.X, start.Y)
	return p
}

// Position returns the lower-left corner of the avatar.
func (p *Player) Position() maze.Vec { return p.pos }

// Start returns the position Reset returns to.
func (p *Player) Start() maze.Vec { return p.start }

// Speed returns the movement speed in world units per second.
func (p *Player) Speed() float64 { return p.speed }

// Center returns the center of the avatar.
func (p *Player) Center() maze.Vec {
	return maze.Vec{X: p.pos.X + Size/2.0, Y: p.pos.Y + Size/2.0}
}

// Cell returns the grid cell containing the avatar's center.
func (p *Player) Cell() core.Point {
	c := p.Center()
	return core.Point{X: int(c.X / maze.BlockSize), Y: int(c.Y / maze.BlockSize)}
}

// Collider returns the avatar's current collision rectangle.
func (p *Player) Collider() maze.Collider {
	return maze.NewCollider(p.pos, Size, Size)
}

// SetStrictCorners makes Update reject a diagonal step whose combined
// rectangle overlaps a wall, keeping only the horizontal part of the move.
func (p *Player) SetStrictCorners(on bool) { p.strictCorners = on }

// Shape returns the drawable that tracks the avatar.
func (p *Player) Shape() *render.Shape { return p.shape }

// Update advances the avatar by dt seconds.
//
// Holding Reset puts the avatar back at its start and ignores movement for
// the frame. Otherwise each axis is moved and checked against the walls on
// its own, which lets the avatar slide along a wall while moving diagonally.
// Unless strict corners are enabled the combined diagonal rectangle is never
// checked, so a diagonal step can clip the corner of a wall.
func (p *Player) Update(dt float64, in input.State) {
	if in.Held(input.Reset) {
		p.pos = p.start
		p.shape.Translate(p.pos.X, p.pos.Y)
		return
	}

	step := p.speed * dt
	newX, newY := p.pos.X, p.pos.Y
	if in.Held(input.Up) {
		newY += step
	}
	if in.Held(input.Down) {
		newY -= step
	}
	if in.Held(input.Right) {
		newX += step
	}
	if in.Held(input.Left) {
		newX -= step
	}

	if p.maze.CheckCollisionNear(maze.Collider{X: newX, Y: p.pos.Y, W: Size, H: Size}) {
		newX = p.pos.X
	}
	if p.maze.CheckCollisionNear(maze.Collider{X: p.pos.X, Y: newY, W: Size, H: Size}) {
		newY = p.pos.Y
	}
	if p.strictCorners && newX != p.pos.X && newY != p.pos.Y &&
		p.maze.CheckCollisionNear(maze.Collider{X: newX, Y: newY, W: Size, H: Size}) {
		newY = p.pos.Y
	}

	p.pos = maze.Vec{
		X: clamp(newX, 0, float64(p.maze.Width()*maze.BlockSize-Size)),
		Y: clamp(newY, 0, float64(p.maze.Height()*maze.BlockSize-Size)),
	}
	p.shape.Translate(p.pos.X, p.pos.Y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
