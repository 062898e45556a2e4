package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegame/internal/input"
	"mazegame/internal/maze"
	"mazegame/internal/render"
)

type countingNotifier struct{ n int }

func (c *countingNotifier) ExitReached() { c.n++ }

func corridor(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.Parse("" +
		"###\n" +
		"S.E\n")
	require.NoError(t, err)
	return m
}

func TestNewCachesPathShapes(t *testing.T) {
	s := New(corridor(t), DefaultOptions())
	require.Len(t, s.cells, 3)
	assert.Equal(t, render.Marker, s.cells[0].Color, "start is tinted")
	assert.Equal(t, render.Floor, s.cells[1].Color)
	assert.Equal(t, render.Marker, s.cells[2].Color, "end is tinted")
	assert.Equal(t, render.Transform{X: 20, Y: 0}, s.cells[2].Transform)
}

func TestDrawThroughRecorder(t *testing.T) {
	s := New(corridor(t), DefaultOptions())
	rec := render.NewRecorder()
	s.Register(rec)
	s.Register(rec)
	assert.Equal(t, 4, rec.Registered(), "registration is idempotent per shape")

	s.Draw(rec, 540, 540)
	f, ok := rec.Last()
	require.True(t, ok)
	require.Len(t, f.Calls, 4)
	assert.Zero(t, rec.Unregistered)

	last := f.Calls[len(f.Calls)-1]
	assert.Equal(t, render.Avatar, last.Color, "avatar is drawn over the maze")
	sx, sy := f.View.Project(s.Player().Center().X, s.Player().Center().Y)
	assert.InDelta(t, 270, sx, 1e-9)
	assert.InDelta(t, 270, sy, 1e-9)
}

func TestExitReachedOncePerReset(t *testing.T) {
	notifier := &countingNotifier{}
	opts := DefaultOptions()
	opts.Notifier = notifier
	s := New(corridor(t), opts)

	right := input.NewSnapshot([]input.Action{input.Right}, nil)
	var hits int
	for i := 0; i < 100; i++ {
		if s.Update(0.05, right).ReachedExit {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, notifier.n)
	done, at := s.Finished()
	assert.True(t, done)
	assert.Greater(t, at, time.Duration(0))
	assert.Equal(t, 5*time.Second, s.Elapsed())

	s.Update(0.05, input.NewSnapshot([]input.Action{input.Reset}, nil))
	done, _ = s.Finished()
	assert.False(t, done)
	assert.Zero(t, s.Elapsed())
	assert.Equal(t, DefaultOptions().Start, s.Player().Position())

	for i := 0; i < 100; i++ {
		s.Update(0.05, right)
	}
	assert.Equal(t, 2, notifier.n, "exit re-arms after reset")
}

func TestUpdateEvents(t *testing.T) {
	s := New(corridor(t), DefaultOptions())
	ev := s.Update(0.01, input.NewSnapshot(nil, []input.Action{input.Quit, input.ToggleFullscreen, input.ToggleHUD}))
	assert.True(t, ev.Quit)
	assert.True(t, ev.ToggleFullscreen)
	assert.True(t, ev.ToggleHUD)
	assert.True(t, ev.AnyKey)

	ev = s.Update(0.01, input.Snapshot{})
	assert.Equal(t, Events{}, ev)
}

func TestSingleCellMazeFinishesImmediately(t *testing.T) {
	m := maze.Generate(1, 1)
	s := New(m, DefaultOptions())
	ev := s.Update(0, input.Snapshot{})
	assert.True(t, ev.ReachedExit)
}

func TestParameters(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 99
	s := New(corridor(t), opts)
	snap := s.Parameters()

	seed, ok := snap.Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "99", seed.Value)
	finish, ok := snap.Lookup("finish")
	require.True(t, ok)
	assert.Equal(t, "--", finish.Value)
	paths, _ := snap.Lookup("paths")
	assert.Equal(t, "3", paths.Value)
}

func TestMarks(t *testing.T) {
	s := New(corridor(t), DefaultOptions())
	marks := s.Marks()
	require.Len(t, marks, 3)
	assert.Equal(t, render.Mark{X: 2, Y: 0, Color: render.Marker}, marks[1])
	assert.Equal(t, render.Avatar, marks[2].Color)
}
