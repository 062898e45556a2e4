// Package audio plays the exit-reached cue.
package audio

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// noteLength is the duration of each chime note.
const noteLength = 90 * time.Millisecond

// exitNotes is a rising C major arpeggio (C5 E5 G5 C6).
var exitNotes = []float64{523.25, 659.25, 783.99, 1046.50}

// Chime plays a short arpeggio when the player reaches the exit. A Chime
// whose speaker failed to initialize stays silent.
type Chime struct {
	mu     sync.Mutex
	ready  bool
	volume float64
}

// NewChime returns an uninitialized chime at the given volume in [0, 1].
func NewChime(volume float64) *Chime {
	return &Chime{volume: volume}
}

// Init opens the audio device.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	c.ready = true
	return nil
}

// ExitReached plays the chime. It never blocks on playback.
func (c *Chime) ExitReached() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	s, err := ExitStreamer(sampleRate, c.volume)
	if err != nil {
		log.Printf("[audio] build chime: %v", err)
		return
	}
	speaker.Play(s)
}

// Close stops any playing sound.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return
	}
	speaker.Clear()
	c.ready = false
}

// ExitStreamer builds the chime as a finite stream.
func ExitStreamer(rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(exitNotes))
	for _, freq := range exitNotes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Take(rate.N(noteLength), tone))
	}
	return withVolume(beep.Seq(notes...), volume), nil
}

// withVolume scales s linearly; a volume of 0 or less mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
