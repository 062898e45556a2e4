package input

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a frontend-neutral key name such as "W", "Up" or "Space".
type Key string

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]Key

// DefaultBindings returns WASD plus arrow keys for movement, Space to return
// to the start, Escape to quit, F11 for fullscreen and H for the HUD.
func DefaultBindings() Bindings {
	return Bindings{
		Up:               {"W", "Up"},
		Down:             {"S", "Down"},
		Left:             {"A", "Left"},
		Right:            {"D", "Right"},
		Reset:            {"Space"},
		Quit:             {"Escape"},
		ToggleFullscreen: {"F11"},
		ToggleHUD:        {"H"},
	}
}

// Lookup returns the actions bound to k.
func (b Bindings) Lookup(k Key) []Action {
	var out []Action
	for _, a := range Actions() {
		for _, bound := range b[a] {
			if strings.EqualFold(string(bound), string(k)) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// Keys returns the sorted set of keys referenced by the bindings.
func (b Bindings) Keys() []Key {
	seen := map[Key]struct{}{}
	for _, keys := range b {
		for _, k := range keys {
			seen[k] = struct{}{}
		}
	}
	out := make([]Key, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Describe returns a one-line help string such as "up: W/Up, down: S/Down".
func (b Bindings) Describe() string {
	parts := make([]string, 0, len(b))
	for _, a := range Actions() {
		keys := b[a]
		if len(keys) == 0 {
			continue
		}
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = string(k)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", a, strings.Join(names, "/")))
	}
	return strings.Join(parts, ", ")
}
