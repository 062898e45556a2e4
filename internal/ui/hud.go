//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"mazegame/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
	panelWidth   = 180
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
	Finished() (bool, time.Duration)
}

// HUD renders the readout panel and the arrival banner over the maze view.
type HUD struct {
	src     parameterProvider
	visible bool
	lines   []Line
	banner  string
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src parameterProvider) *HUD {
	return &HUD{src: src, visible: true}
}

// Toggle shows or hides the panel. The banner is always drawn.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Visible reports whether the panel is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Update refreshes the cached readouts.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = Lines(h.src.Parameters())
	h.banner = Banner(h.src.Finished())
}

// Draw paints the HUD onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	if h.visible && len(h.lines) > 0 {
		height := float32(2*panelPadding + lineHeight*len(h.lines))
		vector.DrawFilledRect(screen, 0, 0, panelWidth, height, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
		for i, line := range h.lines {
			fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
			x := panelPadding + 8
			if line.Header {
				fg = color.RGBA{R: 200, G: 200, B: 210, A: 255}
				x = panelPadding
			}
			text.Draw(screen, line.Text, face, x, panelPadding+lineHeight*(i+1)-3, fg)
		}
	}
	if h.banner != "" {
		b := screen.Bounds()
		bounds := text.BoundString(face, h.banner)
		x := (b.Dx() - bounds.Dx()) / 2
		y := b.Dy() - 2*lineHeight
		vector.DrawFilledRect(screen, float32(x-panelPadding), float32(y-lineHeight), float32(bounds.Dx()+2*panelPadding), float32(lineHeight+panelPadding), color.RGBA{R: 16, G: 16, B: 20, A: 220}, false)
		text.Draw(screen, h.banner, face, x, y, color.RGBA{R: 255, G: 192, B: 203, A: 255})
	}
}
