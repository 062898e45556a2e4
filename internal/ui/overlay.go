//go:build ebiten

package ui

import (
	"image/color"

	"mazegame/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

const minimapLimit = 120

type markProvider interface {
	Marks() []render.Mark
}

// Overlay draws the maze minimap in the top-right corner of the screen.
type Overlay struct {
	src     markProvider
	painter *render.GridPainter
	cells   []uint8
	scale   int
	visible bool
}

// NewOverlay builds a minimap for a w*h grid whose Path cells are marked 1
// in cells.
func NewOverlay(src markProvider, w, h int, cells []uint8) *Overlay {
	return &Overlay{
		src:     src,
		painter: render.NewGridPainter(w, h),
		cells:   cells,
		scale:   MinimapScale(w, h, minimapLimit),
		visible: true,
	}
}

// Toggle shows or hides the minimap.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw renders the minimap onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	w, _ := o.painter.Size()
	x := screen.Bounds().Dx() - w*o.scale - panelPadding
	o.painter.Blit(screen, o.cells, o.src.Marks(), render.Floor, color.RGBA{R: 0, G: 0, B: 96, A: 255}, o.scale, x, panelPadding)
}

// Dispose releases the minimap image.
func (o *Overlay) Dispose() { o.painter.Dispose() }
