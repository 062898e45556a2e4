package term

import (
	"time"
	"unicode"

	"mazegame/internal/input"

	"github.com/gdamore/tcell/v2"
)

// KeyName maps a tcell key event to the frontend-neutral key name used by
// input.Bindings. Unknown keys map to "".
func KeyName(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyLeft:
		return "Left"
	case tcell.KeyRight:
		return "Right"
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "Escape"
	case tcell.KeyF11:
		return "F11"
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "Space"
		}
		return input.Key(string(unicode.ToUpper(r)))
	}
	return ""
}

// Holder turns the press-only key events a terminal delivers into held keys.
// A key stays down until no press or auto-repeat for it arrives within the
// timeout.
type Holder struct {
	tracker  *input.Tracker
	timeout  time.Duration
	deadline map[input.Key]time.Time
}

// NewHolder wraps tracker with the given hold timeout.
func NewHolder(tracker *input.Tracker, timeout time.Duration) *Holder {
	return &Holder{tracker: tracker, timeout: timeout, deadline: map[input.Key]time.Time{}}
}

// Press records a press or auto-repeat of k at now.
func (h *Holder) Press(k input.Key, now time.Time) {
	if k == "" {
		return
	}
	h.tracker.KeyDown(k)
	h.deadline[k] = now.Add(h.timeout)
}

// Expire releases keys whose hold window has passed.
func (h *Holder) Expire(now time.Time) {
	for k, d := range h.deadline {
		if !now.Before(d) {
			h.tracker.KeyUp(k)
			delete(h.deadline, k)
		}
	}
}
