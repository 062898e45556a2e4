package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegame/internal/input"
	"mazegame/internal/maze"
	"mazegame/internal/render"
	"mazegame/internal/scene"
)

func simScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func corridor(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.Parse("" +
		"###\n" +
		"S.E\n")
	require.NoError(t, err)
	return m
}

func TestKeyName(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "Up"},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "Left"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "Escape"},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "Escape"},
		{tcell.NewEventKey(tcell.KeyF11, 0, tcell.ModNone), "F11"},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "Space"},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "W"},
		{tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), "D"},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KeyName(tc.ev))
	}
}

func TestHolderReleasesAfterTimeout(t *testing.T) {
	tr := input.NewTracker(nil)
	h := NewHolder(tr, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press("W", t0)
	h.Press("", t0)
	assert.True(t, tr.IsDown("W"))

	h.Press("W", t0.Add(80*time.Millisecond))
	h.Expire(t0.Add(150 * time.Millisecond))
	assert.True(t, tr.IsDown("W"), "auto-repeat extends the hold")

	h.Expire(t0.Add(180 * time.Millisecond))
	assert.False(t, tr.IsDown("W"))
}

func TestAdapterRastersHalfBlocks(t *testing.T) {
	screen := simScreen(t, 20, 6)
	a := NewAdapter(screen, render.Background, 1)
	w, h := a.PixelSize()
	require.Equal(t, 20, w)
	require.Equal(t, 10, h)

	floor := render.NewRect(10, 10, render.Floor)
	avatar := render.NewRect(5, 5, render.Avatar)
	avatar.Translate(2.5, 2.5)
	stray := render.NewRect(10, 10, render.Marker)
	stray.Translate(-10, 0)
	a.Register(floor)
	a.Register(avatar)

	a.SetStatus("hi")
	a.BeginFrame(render.FollowAt(w, h, 5, 5, 1))
	a.Draw(floor)
	a.Draw(avatar)
	a.Draw(stray)
	a.EndFrame()

	assert.Equal(t, render.Background, a.Pixel(0, 0))
	assert.Equal(t, render.Floor, a.Pixel(6, 1))
	assert.Equal(t, render.Avatar, a.Pixel(10, 5))
	assert.Equal(t, render.Background, a.Pixel(2, 5), "unregistered shapes are skipped")

	mainc, _, style, _ := screen.GetContent(10, 2)
	assert.Equal(t, halfBlock, mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, toColor(render.Avatar), fg)
	assert.Equal(t, toColor(render.Avatar), bg)

	mainc, _, _, _ = screen.GetContent(1, 5)
	assert.Equal(t, 'i', mainc)
}

func TestGameStepMovesAndQuits(t *testing.T) {
	screen := simScreen(t, 20, 6)
	sc := scene.New(corridor(t), scene.DefaultOptions())
	g := NewGame(screen, sc, Options{TPS: 10, Zoom: 1, HoldTimeout: 150 * time.Millisecond})
	defer g.Close()
	t0 := time.Unix(0, 0)

	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), t0)
	require.True(t, g.Step(0.1, t0))
	assert.InDelta(t, 4.5, sc.Player().Position().X, 1e-9)

	require.True(t, g.Step(0.1, t0.Add(200*time.Millisecond)))
	assert.InDelta(t, 4.5, sc.Player().Position().X, 1e-9, "released key stops the avatar")

	w, h := g.Adapter().PixelSize()
	assert.Equal(t, render.Avatar, g.Adapter().Pixel(w/2, h/2), "camera follows the avatar")

	g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), t0.Add(300*time.Millisecond))
	assert.False(t, g.Step(0.1, t0.Add(300*time.Millisecond)))
}

func TestStatusLineToggles(t *testing.T) {
	screen := simScreen(t, 80, 6)
	g := NewGame(screen, scene.New(corridor(t), scene.DefaultOptions()), DefaultOptions())
	t0 := time.Unix(0, 0)

	assert.Contains(t, g.statusLine(), "Esc quit")
	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), t0)
	require.True(t, g.Step(0, t0))
	assert.Empty(t, g.statusLine())
}

func TestRunStopsOnEscape(t *testing.T) {
	screen := simScreen(t, 20, 6)
	g := NewGame(screen, scene.New(corridor(t), scene.DefaultOptions()), Options{TPS: 100})
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, g.Run(ctx))
}

func TestRunHonorsContext(t *testing.T) {
	screen := simScreen(t, 20, 6)
	g := NewGame(screen, scene.New(corridor(t), scene.DefaultOptions()), Options{TPS: 100})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, g.Run(ctx), context.DeadlineExceeded)
}
