package sound

import (
	"math"

	"github.com/faiface/beep"
)

// tone is a finite sine burst with a linear fade-out, used as a UI click.
type tone struct {
	sr     beep.SampleRate
	freq   float64
	gain   float64
	length int
	pos    int
}

func newTone(sr beep.SampleRate, freq, gain float64, length int) *tone {
	return &tone{sr: sr, freq: freq, gain: gain, length: length}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.sr)
		envelope := 1 - float64(t.pos)/float64(t.length)
		v := math.Sin(phase) * envelope * t.gain
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
