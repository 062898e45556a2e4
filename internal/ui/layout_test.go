package ui

import (
	"testing"
	"time"

	"mazegame/internal/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Maze", Params: []core.Parameter{core.IntParam("w", "Width", 50)}},
		{Name: "Run", Params: []core.Parameter{core.BoolParam("finished", "Exit reached", true)}},
	}}
	lines := Lines(snap)
	want := []Line{
		{Text: "Maze", Header: true},
		{Text: "Width: 50"},
		{Text: "Run", Header: true},
		{Text: "Exit reached: yes"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestBanner(t *testing.T) {
	if got := Banner(false, time.Second); got != "" {
		t.Fatalf("unfinished banner = %q", got)
	}
	if got := Banner(true, 12340*time.Millisecond); got != "Exit reached in 12.3s - hold Space to restart" {
		t.Fatalf("unexpected banner %q", got)
	}
}

func TestMinimapScale(t *testing.T) {
	cases := []struct {
		w, h, limit, want int
	}{
		{50, 50, 120, 2},
		{10, 5, 120, 12},
		{500, 20, 120, 1},
		{0, 0, 120, 1},
	}
	for _, c := range cases {
		if got := MinimapScale(c.w, c.h, c.limit); got != c.want {
			t.Fatalf("MinimapScale(%d,%d,%d) = %d, want %d", c.w, c.h, c.limit, got, c.want)
		}
	}
}
