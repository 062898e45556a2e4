//go:build ebiten

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[Key]ebiten.Key{
	"W":      ebiten.KeyW,
	"A":      ebiten.KeyA,
	"S":      ebiten.KeyS,
	"D":      ebiten.KeyD,
	"H":      ebiten.KeyH,
	"Up":     ebiten.KeyArrowUp,
	"Down":   ebiten.KeyArrowDown,
	"Left":   ebiten.KeyArrowLeft,
	"Right":  ebiten.KeyArrowRight,
	"Space":  ebiten.KeySpace,
	"Escape": ebiten.KeyEscape,
	"F11":    ebiten.KeyF11,
}

// EbitenPoller reads ebiten's keyboard state once per frame.
type EbitenPoller struct {
	bindings Bindings
	buf      []ebiten.Key
}

// NewEbitenPoller returns a poller resolving keys through b.
func NewEbitenPoller(b Bindings) *EbitenPoller {
	if b == nil {
		b = DefaultBindings()
	}
	return &EbitenPoller{bindings: b}
}

// Poll captures the current frame's snapshot. It must be called from
// ebiten's Update.
func (p *EbitenPoller) Poll() Snapshot {
	var s Snapshot
	for _, a := range Actions() {
		for _, k := range p.bindings[a] {
			ek, ok := ebitenKeys[k]
			if !ok {
				continue
			}
			if ebiten.IsKeyPressed(ek) {
				s.held |= 1 << a
			}
			if inpututil.IsKeyJustPressed(ek) {
				s.pressed |= 1 << a
			}
		}
	}
	p.buf = inpututil.AppendJustPressedKeys(p.buf[:0])
	s.anyKey = len(p.buf) > 0
	return s
}
