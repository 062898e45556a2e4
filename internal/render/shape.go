// Package render describes drawable shapes and the adapters that put them on
// a display.
//
// The simulation only produces Shape values. Adapters own whatever device
// resources back a shape and key them by the shape's ID.
package render

import (
	"image/color"

	"github.com/google/uuid"
)

// Palette used by the maze scene.
var (
	Background = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Floor      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Marker     = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	Avatar     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Transform positions a shape in world space.
type Transform struct {
	X, Y float64
}

// Shape is an axis-aligned rectangle with a color and a world transform.
type Shape struct {
	ID        uuid.UUID
	W, H      float64
	Color     color.RGBA
	Transform Transform
}

// NewRect returns a w*h rectangle with a fresh identity.
func NewRect(w, h float64, c color.RGBA) *Shape {
	return &Shape{ID: uuid.New(), W: w, H: h, Color: c}
}

// Translate moves the shape to (x, y).
func (s *Shape) Translate(x, y float64) {
	s.Transform = Transform{X: x, Y: y}
}

// Adapter issues draw calls for shapes against a display surface.
type Adapter interface {
	// Register uploads the shape's geometry. Registering the same ID twice
	// is a no-op.
	Register(s *Shape)
	// BeginFrame clears the surface and binds the camera view.
	BeginFrame(v View)
	// Draw renders s with its current transform and color.
	Draw(s *Shape)
	// EndFrame finishes the frame.
	EndFrame()
	// Close releases every registered resource.
	Close()
}
