// Package scene runs one maze session: it advances the avatar each frame,
// detects arrival at the exit and emits the shapes a frontend draws.
package scene

import (
	"time"

	"mazegame/internal/core"
	"mazegame/internal/input"
	"mazegame/internal/maze"
	"mazegame/internal/player"
	"mazegame/internal/render"
)

// Notifier is told about session milestones.
type Notifier interface {
	ExitReached()
}

type silent struct{}

func (silent) ExitReached() {}

// Options tune a scene.
type Options struct {
	Start         maze.Vec
	Speed         float64
	StrictCorners bool
	Seed          int64
	Notifier      Notifier
}

// DefaultOptions returns the standard avatar start and speed.
func DefaultOptions() Options {
	return Options{Start: player.DefaultStart, Speed: player.DefaultSpeed}
}

// Events reports what happened during an Update.
type Events struct {
	Quit             bool
	ToggleFullscreen bool
	ToggleHUD        bool
	ReachedExit      bool
	AnyKey           bool
}

// Scene owns the maze, the avatar and the cached maze shapes.
type Scene struct {
	maze   *maze.Maze
	player *player.Player
	notify Notifier
	seed   int64

	cells []*render.Shape

	elapsed  time.Duration
	finished bool
	finish   time.Duration
}

// New builds a scene for m. Shapes for every Path cell are created once; the
// start and end cells are tinted with the marker color.
func New(m *maze.Maze, opts Options) *Scene {
	if opts.Notifier == nil {
		opts.Notifier = silent{}
	}
	p := player.New(m, opts.Start, opts.Speed)
	p.SetStrictCorners(opts.StrictCorners)
	s := &Scene{maze: m, player: p, notify: opts.Notifier, seed: opts.Seed}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y) != core.Path {
				continue
			}
			c := render.NewRect(maze.BlockSize, maze.BlockSize, render.Floor)
			pt := core.Point{X: x, Y: y}
			if pt == m.Start() || pt == m.End() {
				c.Color = render.Marker
			}
			c.Translate(float64(maze.BlockSize*x), float64(maze.BlockSize*y))
			s.cells = append(s.cells, c)
		}
	}
	return s
}

// Maze returns the scene's maze.
func (s *Scene) Maze() *maze.Maze { return s.maze }

// Player returns the avatar.
func (s *Scene) Player() *player.Player { return s.player }

// Elapsed returns the time since the scene started or was last reset.
func (s *Scene) Elapsed() time.Duration { return s.elapsed }

// Finished reports whether the avatar has reached the exit since the last
// reset, along with the elapsed time at arrival.
func (s *Scene) Finished() (bool, time.Duration) { return s.finished, s.finish }

// Update advances the scene by dt seconds using the frame's input snapshot.
func (s *Scene) Update(dt float64, in input.State) Events {
	var ev Events
	ev.Quit = in.JustPressed(input.Quit) || in.Held(input.Quit)
	ev.ToggleFullscreen = in.JustPressed(input.ToggleFullscreen)
	ev.ToggleHUD = in.JustPressed(input.ToggleHUD)
	if snap, ok := in.(input.Snapshot); ok {
		ev.AnyKey = snap.AnyKey()
	}

	if dt < 0 {
		dt = 0
	}
	s.player.Update(dt, in)
	if in.Held(input.Reset) {
		s.elapsed = 0
		s.finished = false
		s.finish = 0
		return ev
	}
	s.elapsed += time.Duration(dt * float64(time.Second))

	if !s.finished && s.player.Cell() == s.maze.End() {
		s.finished = true
		s.finish = s.elapsed
		ev.ReachedExit = true
		s.notify.ExitReached()
	}
	return ev
}

// Register uploads every scene shape to a.
func (s *Scene) Register(a render.Adapter) {
	for _, c := range s.cells {
		a.Register(c)
	}
	a.Register(s.player.Shape())
}

// View returns the camera view following the avatar on a w*h screen.
func (s *Scene) View(w, h int) render.View {
	c := s.player.Center()
	return render.Follow(w, h, c.X, c.Y)
}

// Draw renders one frame of the scene through a on a w*h screen.
func (s *Scene) Draw(a render.Adapter, w, h int) {
	s.DrawView(a, s.View(w, h))
}

// DrawView renders one frame of the scene through a using v.
func (s *Scene) DrawView(a render.Adapter, v render.View) {
	a.BeginFrame(v)
	for _, c := range s.cells {
		a.Draw(c)
	}
	a.Draw(s.player.Shape())
	a.EndFrame()
}

// Marks returns minimap highlights for the start, the end and the avatar.
func (s *Scene) Marks() []render.Mark {
	start, end := s.maze.Start(), s.maze.End()
	cell := s.player.Cell()
	return []render.Mark{
		{X: start.X, Y: start.Y, Color: render.Marker},
		{X: end.X, Y: end.Y, Color: render.Marker},
		{X: cell.X, Y: cell.Y, Color: render.Avatar},
	}
}

// Parameters returns the HUD readouts for the scene.
func (s *Scene) Parameters() core.ParameterSnapshot {
	pos := s.player.Position()
	cell := s.player.Cell()
	done, at := s.Finished()
	finish := core.DurationParam("finish", "Reached exit at", at)
	if !done {
		finish.Value = "--"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Maze",
			Params: []core.Parameter{
				core.IntParam("w", "Width", s.maze.Width()),
				core.IntParam("h", "Height", s.maze.Height()),
				core.Int64Param("seed", "Seed", s.seed),
				core.IntParam("paths", "Open cells", s.maze.Paths()),
			},
		},
		{
			Name: "Player",
			Params: []core.Parameter{
				core.FloatParam("x", "X", pos.X),
				core.FloatParam("y", "Y", pos.Y),
				core.IntParam("cell_x", "Cell X", cell.X),
				core.IntParam("cell_y", "Cell Y", cell.Y),
				core.FloatParam("speed", "Speed", s.player.Speed()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.DurationParam("elapsed", "Elapsed", s.elapsed),
				core.BoolParam("finished", "Exit reached", done),
				finish,
			},
		},
	}}
}
