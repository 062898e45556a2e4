package input

// Tracker accumulates key down/up events between frames. Frontends feed it
// from their event callbacks and take one Snapshot per frame.
type Tracker struct {
	bindings Bindings
	down     map[Key]bool
	pressed  map[Key]bool
	anyKey   bool
}

// NewTracker returns a tracker resolving keys through b.
func NewTracker(b Bindings) *Tracker {
	if b == nil {
		b = DefaultBindings()
	}
	return &Tracker{
		bindings: b,
		down:     map[Key]bool{},
		pressed:  map[Key]bool{},
	}
}

// KeyDown records that k went down. Repeated downs without an intervening
// KeyUp do not count as new presses.
func (t *Tracker) KeyDown(k Key) {
	t.anyKey = true
	if t.down[k] {
		return
	}
	t.down[k] = true
	t.pressed[k] = true
}

// KeyUp records that k was released.
func (t *Tracker) KeyUp(k Key) {
	delete(t.down, k)
}

// IsDown reports whether k is currently held.
func (t *Tracker) IsDown(k Key) bool { return t.down[k] }

// Snapshot resolves the current key state into actions.
func (t *Tracker) Snapshot() Snapshot {
	var s Snapshot
	for k := range t.down {
		for _, a := range t.bindings.Lookup(k) {
			s.held |= 1 << a
		}
	}
	for k := range t.pressed {
		for _, a := range t.bindings.Lookup(k) {
			s.pressed |= 1 << a
		}
	}
	s.anyKey = t.anyKey
	return s
}

// EndFrame clears the transient just-pressed state.
func (t *Tracker) EndFrame() {
	clear(t.pressed)
	t.anyKey = false
}
