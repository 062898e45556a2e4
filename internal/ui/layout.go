package ui

import (
	"fmt"
	"time"

	"mazegame/internal/core"
)

// Line is one row of HUD text.
type Line struct {
	Text   string
	Header bool
}

// Lines flattens a parameter snapshot into HUD rows: a header per group
// followed by "Label: value" rows.
func Lines(snap core.ParameterSnapshot) []Line {
	var out []Line
	for _, group := range snap.Groups {
		out = append(out, Line{Text: group.Name, Header: true})
		for _, p := range group.Params {
			out = append(out, Line{Text: fmt.Sprintf("%s: %s", p.Label, p.Value)})
		}
	}
	return out
}

// Banner returns the arrival message, or "" while the exit has not been
// reached.
func Banner(finished bool, at time.Duration) string {
	if !finished {
		return ""
	}
	return fmt.Sprintf("Exit reached in %s - hold Space to restart", at.Round(100*time.Millisecond))
}

// MinimapScale picks the largest integer pixel scale that keeps a w*h grid
// within limit pixels on its longer side, never below 1.
func MinimapScale(w, h, limit int) int {
	longest := max(w, h)
	if longest <= 0 {
		return 1
	}
	return max(1, limit/longest)
}
