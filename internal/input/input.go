// Package input turns raw key events into per-frame action snapshots.
package input

// Action is a logical control the game reacts to.
type Action uint8

const (
	Up Action = iota
	Down
	Left
	Right
	Reset
	Quit
	ToggleFullscreen
	ToggleHUD

	actionCount
)

var actionNames = [actionCount]string{
	Up:               "up",
	Down:             "down",
	Left:             "left",
	Right:            "right",
	Reset:            "reset",
	Quit:             "quit",
	ToggleFullscreen: "fullscreen",
	ToggleHUD:        "hud",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// State answers per-frame questions about the player's controls.
type State interface {
	// Held reports whether any key bound to a is currently down.
	Held(a Action) bool
	// JustPressed reports whether a key bound to a went down this frame.
	JustPressed(a Action) bool
}

// Snapshot is an immutable State captured at a frame boundary.
type Snapshot struct {
	held    uint16
	pressed uint16
	anyKey  bool
}

// NewSnapshot builds a snapshot from explicit action lists.
func NewSnapshot(held, justPressed []Action) Snapshot {
	var s Snapshot
	for _, a := range held {
		s.held |= 1 << a
	}
	for _, a := range justPressed {
		s.pressed |= 1 << a
		s.anyKey = true
	}
	return s
}

// Held implements State.
func (s Snapshot) Held(a Action) bool { return s.held&(1<<a) != 0 }

// JustPressed implements State.
func (s Snapshot) JustPressed(a Action) bool { return s.pressed&(1<<a) != 0 }

// AnyKey reports whether any key, bound or not, went down this frame.
func (s Snapshot) AnyKey() bool { return s.anyKey }

// With returns a copy of s with a held and, when pressed is true, newly
// pressed.
func (s Snapshot) With(a Action, pressed bool) Snapshot {
	s.held |= 1 << a
	if pressed {
		s.pressed |= 1 << a
		s.anyKey = true
	}
	return s
}
