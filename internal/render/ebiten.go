//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenAdapter draws shapes as GPU images. Each registered shape gets a
// white image of its size that is tinted with the shape color at draw time,
// so color changes never re-upload geometry.
type EbitenAdapter struct {
	images     *Registry[*ebiten.Image]
	background color.Color

	target *ebiten.Image
	view   View
}

// NewEbitenAdapter returns an adapter clearing frames to background.
func NewEbitenAdapter(background color.Color) *EbitenAdapter {
	return &EbitenAdapter{
		images:     NewRegistry(func(img *ebiten.Image) { img.Dispose() }),
		background: background,
	}
}

// SetTarget selects the image the next frame is drawn onto.
func (a *EbitenAdapter) SetTarget(dst *ebiten.Image) { a.target = dst }

// Register implements Adapter.
func (a *EbitenAdapter) Register(s *Shape) {
	a.images.Acquire(s.ID, func() *ebiten.Image {
		w := max(1, int(math.Ceil(s.W)))
		h := max(1, int(math.Ceil(s.H)))
		img := ebiten.NewImage(w, h)
		img.Fill(color.White)
		return img
	})
}

// BeginFrame implements Adapter.
func (a *EbitenAdapter) BeginFrame(v View) {
	a.view = v
	if a.target != nil {
		a.target.Fill(a.background)
	}
}

// Draw implements Adapter.
func (a *EbitenAdapter) Draw(s *Shape) {
	if a.target == nil {
		return
	}
	img, ok := a.images.Get(s.ID)
	if !ok {
		return
	}
	sx, sy, sw, sh := a.view.Rect(s.Transform.X, s.Transform.Y, s.W, s.H)
	if !a.view.Visible(sx, sy, sw, sh) {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sw/float64(b.Dx()), sh/float64(b.Dy()))
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(s.Color)
	a.target.DrawImage(img, op)
}

// EndFrame implements Adapter. Presentation is driven by ebiten.
func (a *EbitenAdapter) EndFrame() { a.target = nil }

// Close implements Adapter.
func (a *EbitenAdapter) Close() { a.images.Close() }
