// Package audio plays short synthesized chimes on scene transitions.
// Audio is strictly decorative: every failure path degrades to
// silence, never to an error the scene has to care about.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tannenbaum/scene"
)

const (
	sampleRate = beep.SampleRate(44100)
	noteLen    = 90 * time.Millisecond
	chimeGain  = -2.0 // quiet enough to sit under ambient noise
)

// Each mode lands on its own little motif so transitions are audible
// without looking at the screen
var modeNotes = map[scene.Mode][]float64{
	scene.ModeTree:    {523.25, 659.25, 783.99}, // C5 E5 G5 rising
	scene.ModeScatter: {783.99, 659.25, 523.25}, // falling
	scene.ModeFocus:   {659.25, 987.77},         // E5 B5
}

// Chime owns the speaker. A Chime that failed to initialize is still
// fully usable; it just does nothing
type Chime struct {
	ready bool
}

// New initializes the speaker. The returned error is informational:
// the Chime works (silently) either way
func New() (*Chime, error) {
	c := &Chime{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.ready = true
	return c, nil
}

// ModeChime plays the motif for the committed mode. Safe from the
// frame loop; playback is mixed on the speaker's own goroutine
func (c *Chime) ModeChime(m scene.Mode) {
	if !c.ready {
		return
	}
	notes, ok := modeNotes[m]
	if !ok {
		return
	}

	seq := make([]beep.Streamer, 0, len(notes))
	n := sampleRate.N(noteLen)
	for _, freq := range notes {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			log.Printf("audio: tone generation failed: %v", err)
			return
		}
		seq = append(seq, beep.Take(n, sine))
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(seq...),
		Base:     2,
		Volume:   chimeGain,
	})
}

// Close releases the speaker. Safe on a silent Chime
func (c *Chime) Close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}
