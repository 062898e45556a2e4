//go:build ebiten

package app

import (
	"mazegame/internal/input"
	"mazegame/internal/render"
	"mazegame/internal/scene"
	"mazegame/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a maze scene to the ebiten.Game interface.
type Game struct {
	scene   *scene.Scene
	poller  *input.EbitenPoller
	adapter *render.EbitenAdapter
	hud     *ui.HUD
	overlay *ui.Overlay

	width, height int
	cursorX       int
	cursorY       int
}

// New constructs a Game for the provided scene and uploads its shapes.
func New(sc *scene.Scene, cfg *Config) *Game {
	m := sc.Maze()
	g := &Game{
		scene:   sc,
		poller:  input.NewEbitenPoller(input.DefaultBindings()),
		adapter: render.NewEbitenAdapter(render.Background),
		hud:     ui.NewHUD(sc),
		overlay: ui.NewOverlay(sc, m.Width(), m.Height(), m.Binary()),
		width:   cfg.Window,
		height:  cfg.Window,
	}
	sc.Register(g.adapter)
	return g
}

// Update handles per-frame logic and advances the scene.
func (g *Game) Update() error {
	snap := g.poller.Poll()
	ev := g.scene.Update(1/float64(ebiten.TPS()), snap)
	if ev.Quit {
		return ebiten.Termination
	}
	if ev.ToggleFullscreen {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if ev.ToggleHUD {
		g.hud.Toggle()
		g.overlay.Toggle()
	}
	g.updateCursor(ev.AnyKey)
	g.hud.Update()
	return nil
}

// updateCursor hides the cursor on key presses and shows it again when the
// mouse moves.
func (g *Game) updateCursor(anyKey bool) {
	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	if anyKey {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.adapter.SetTarget(screen)
	b := screen.Bounds()
	g.scene.Draw(g.adapter, b.Dx(), b.Dy())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout follows the window size so resizing widens the view instead of
// stretching it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Close releases GPU resources owned by the game.
func (g *Game) Close() {
	g.adapter.Close()
	g.overlay.Dispose()
}
