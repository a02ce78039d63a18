// Package sound plays short feedback tones when a control is activated.
// Audio is optional: every method is safe to call when the speaker could not
// be initialized.
package sound

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Control names the button that was activated.
type Control int

const (
	ControlColor Control = iota
	ControlSpeed
	ControlReset
)

var controlFreq = map[Control]float64{
	ControlColor: 660,
	ControlSpeed: 880,
	ControlReset: 440,
}

// Player owns the speaker for the lifetime of the program.
type Player struct {
	mu          sync.Mutex
	initialized bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Init opens the audio device. A second call is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.initialized = true
	log.Printf("[Sound] speaker ready at %d Hz", sampleRate)
	return nil
}

// Enabled reports whether tones will be heard.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Click plays the tone for c.
func (p *Player) Click(c Control) {
	if !p.Enabled() {
		return
	}
	freq, ok := controlFreq[c]
	if !ok {
		freq = 440
	}
	speaker.Play(clickStreamer(freq))
}

// Stop silences anything still playing.
func (p *Player) Stop() {
	if !p.Enabled() {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

func clickStreamer(freq float64) beep.Streamer {
	return newTone(sampleRate, freq, 0.2, sampleRate.N(60*time.Millisecond))
}
