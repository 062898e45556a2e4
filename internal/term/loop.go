package term

import (
	"context"
	"time"

	"mazegame/internal/core"
	"mazegame/internal/input"
	"mazegame/internal/render"
	"mazegame/internal/scene"
	"mazegame/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// Options tune the terminal loop.
type Options struct {
	TPS         int
	Zoom        float64
	HoldTimeout time.Duration
}

// DefaultOptions draws one pixel per world unit at 30 frames per second.
func DefaultOptions() Options {
	return Options{TPS: 30, Zoom: 1, HoldTimeout: 150 * time.Millisecond}
}

// Game runs a scene on a tcell screen.
type Game struct {
	screen  tcell.Screen
	scene   *scene.Scene
	adapter *Adapter
	tracker *input.Tracker
	holder  *Holder
	clock   *core.FrameClock
	opts    Options
	status  bool
}

// NewGame prepares sc for display on an initialized screen.
func NewGame(screen tcell.Screen, sc *scene.Scene, opts Options) *Game {
	if opts.TPS <= 0 {
		opts.TPS = DefaultOptions().TPS
	}
	if opts.HoldTimeout <= 0 {
		opts.HoldTimeout = DefaultOptions().HoldTimeout
	}
	tracker := input.NewTracker(input.DefaultBindings())
	g := &Game{
		screen:  screen,
		scene:   sc,
		adapter: NewAdapter(screen, render.Background, 1),
		tracker: tracker,
		holder:  NewHolder(tracker, opts.HoldTimeout),
		clock:   core.NewFrameClock(),
		opts:    opts,
		status:  true,
	}
	sc.Register(g.adapter)
	return g
}

// Adapter returns the render adapter drawing on the screen.
func (g *Game) Adapter() *Adapter { return g.adapter }

// HandleEvent feeds one tcell event into the game.
func (g *Game) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.holder.Press(KeyName(ev), now)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// Step advances and draws one frame. It reports false once the player quits.
func (g *Game) Step(dt float64, now time.Time) bool {
	g.holder.Expire(now)
	ev := g.scene.Update(dt, g.tracker.Snapshot())
	g.tracker.EndFrame()
	if ev.Quit {
		return false
	}
	if ev.ToggleHUD {
		g.status = !g.status
	}
	g.draw()
	return true
}

func (g *Game) draw() {
	w, h := g.adapter.PixelSize()
	c := g.scene.Player().Center()
	g.adapter.SetStatus(g.statusLine())
	g.scene.DrawView(g.adapter, render.FollowAt(w, h, c.X, c.Y, g.opts.Zoom))
}

func (g *Game) statusLine() string {
	if banner := ui.Banner(g.scene.Finished()); banner != "" {
		return banner
	}
	if !g.status {
		return ""
	}
	return "WASD/arrows move, Space restart, Esc quit, H hide help - " + g.scene.Elapsed().Round(time.Second).String()
}

// Run drives the game until ctx is cancelled or the player quits.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(core.FrameInterval(g.opts.TPS))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	g.clock.Reset()
	g.clock.Tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.HandleEvent(ev, time.Now())
		case now := <-ticker.C:
			if !g.Step(g.clock.Tick(), now) {
				return nil
			}
		}
	}
}

// Close releases the adapter's resources. The caller owns the screen.
func (g *Game) Close() { g.adapter.Close() }
