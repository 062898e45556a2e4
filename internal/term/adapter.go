// Package term runs the maze in a terminal through tcell.
//
// Each character cell shows two vertically stacked pixels using the upper
// half block glyph, so a cols*rows terminal is a cols*(2*rows) pixel surface.
package term

import (
	"image/color"
	"math"

	"mazegame/internal/render"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Adapter rasterizes shapes onto a tcell screen.
type Adapter struct {
	screen     tcell.Screen
	shapes     *render.Registry[*render.Shape]
	background color.RGBA

	view      render.View
	cols      int
	rows      int
	reserved  int
	pix       []color.RGBA
	inFrame   bool
	statusRow string
}

// NewAdapter returns an adapter drawing on screen. The bottom reserved rows
// are left for status text.
func NewAdapter(screen tcell.Screen, background color.RGBA, reserved int) *Adapter {
	return &Adapter{
		screen:     screen,
		shapes:     render.NewRegistry[*render.Shape](nil),
		background: background,
		reserved:   max(0, reserved),
	}
}

// PixelSize returns the drawable surface in pixels for the current screen.
func (a *Adapter) PixelSize() (int, int) {
	cols, rows := a.screen.Size()
	rows = max(0, rows-a.reserved)
	return cols, rows * 2
}

// Register implements render.Adapter.
func (a *Adapter) Register(s *render.Shape) {
	a.shapes.Acquire(s.ID, func() *render.Shape { return s })
}

// BeginFrame implements render.Adapter.
func (a *Adapter) BeginFrame(v render.View) {
	a.view = v
	a.cols, a.rows = a.screen.Size()
	a.rows = max(0, a.rows-a.reserved)
	n := a.cols * a.rows * 2
	if cap(a.pix) < n {
		a.pix = make([]color.RGBA, n)
	}
	a.pix = a.pix[:n]
	for i := range a.pix {
		a.pix[i] = a.background
	}
	a.inFrame = true
}

// Draw implements render.Adapter.
func (a *Adapter) Draw(s *render.Shape) {
	if !a.inFrame {
		return
	}
	if _, ok := a.shapes.Get(s.ID); !ok {
		return
	}
	sx, sy, sw, sh := a.view.Rect(s.Transform.X, s.Transform.Y, s.W, s.H)
	w, h := a.cols, a.rows*2
	x0 := clampInt(int(math.Round(sx)), 0, w)
	x1 := clampInt(int(math.Round(sx+sw)), 0, w)
	y0 := clampInt(int(math.Round(sy)), 0, h)
	y1 := clampInt(int(math.Round(sy+sh)), 0, h)
	for y := y0; y < y1; y++ {
		row := a.pix[y*w : (y+1)*w]
		for x := x0; x < x1; x++ {
			row[x] = s.Color
		}
	}
}

// SetStatus sets the text shown on the first reserved row.
func (a *Adapter) SetStatus(text string) { a.statusRow = text }

// EndFrame implements render.Adapter. It flushes the pixels to the screen.
func (a *Adapter) EndFrame() {
	if !a.inFrame {
		return
	}
	a.inFrame = false
	w := a.cols
	for r := 0; r < a.rows; r++ {
		for c := 0; c < w; c++ {
			top := a.pix[(2*r)*w+c]
			bottom := a.pix[(2*r+1)*w+c]
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			a.screen.SetContent(c, r, halfBlock, nil, style)
		}
	}
	if a.reserved > 0 {
		a.drawStatus(a.rows)
	}
	a.screen.Show()
}

func (a *Adapter) drawStatus(row int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	runes := []rune(a.statusRow)
	for c := 0; c < a.cols; c++ {
		ch := ' '
		if c < len(runes) {
			ch = runes[c]
		}
		a.screen.SetContent(c, row, ch, nil, style)
	}
}

// Close implements render.Adapter.
func (a *Adapter) Close() { a.shapes.Close() }

// Pixel returns the color of surface pixel (x, y) from the last frame.
func (a *Adapter) Pixel(x, y int) color.RGBA {
	w := a.cols
	if x < 0 || y < 0 || x >= w || y >= a.rows*2 {
		return color.RGBA{}
	}
	return a.pix[y*w+x]
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
