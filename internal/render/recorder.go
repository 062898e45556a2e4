package render

import (
	"image/color"

	"github.com/google/uuid"
)

// DrawCall is one recorded Draw.
type DrawCall struct {
	ID    uuid.UUID
	X, Y  float64
	W, H  float64
	Color color.RGBA
}

// Frame groups the draw calls between BeginFrame and EndFrame.
type Frame struct {
	View  View
	Calls []DrawCall
}

// Recorder is a headless Adapter that records what would have been drawn.
type Recorder struct {
	shapes *Registry[*Shape]
	frames []Frame
	open   bool

	Unregistered int
	Closed       bool
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{shapes: NewRegistry[*Shape](nil)}
}

// Register implements Adapter.
func (r *Recorder) Register(s *Shape) {
	r.shapes.Acquire(s.ID, func() *Shape { return s })
}

// BeginFrame implements Adapter.
func (r *Recorder) BeginFrame(v View) {
	r.frames = append(r.frames, Frame{View: v})
	r.open = true
}

// Draw implements Adapter. Draws of unregistered shapes or outside a frame
// are counted and dropped.
func (r *Recorder) Draw(s *Shape) {
	if _, ok := r.shapes.Get(s.ID); !ok || !r.open {
		r.Unregistered++
		return
	}
	f := &r.frames[len(r.frames)-1]
	f.Calls = append(f.Calls, DrawCall{
		ID:    s.ID,
		X:     s.Transform.X,
		Y:     s.Transform.Y,
		W:     s.W,
		H:     s.H,
		Color: s.Color,
	})
}

// EndFrame implements Adapter.
func (r *Recorder) EndFrame() { r.open = false }

// Close implements Adapter.
func (r *Recorder) Close() {
	r.shapes.Close()
	r.Closed = true
}

// Registered returns the number of registered shapes.
func (r *Recorder) Registered() int { return r.shapes.Len() }

// Frames returns the recorded frames.
func (r *Recorder) Frames() []Frame { return r.frames }

// Last returns the most recent frame.
func (r *Recorder) Last() (Frame, bool) {
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}
