// Package particle animates the faint dots drifting behind the chain.
package particle

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// Particle has a fixed fractional start position and a phase offset into
// its rise cycle.
type Particle struct {
	X, Y  float64 // in [0, 1) of the container
	Phase float64 // seconds
}

// Sample is a particle's drawable state at the current time.
type Sample struct {
	X, Y   float64 // in [0, 1) of the container
	Radius float64
	Alpha  float64
	Color  color.RGBA
}

// Field is a set of particles that rise and fade on a shared cycle.
type Field struct {
	particles []Particle
	cycle     float64
	elapsed   float64
}

// NewField scatters n particles using rng. Phases are spread over one cycle.
func NewField(n int, cycle time.Duration, rng *rand.Rand) *Field {
	if cycle <= 0 {
		cycle = 15 * time.Second
	}
	f := &Field{
		particles: make([]Particle, n),
		cycle:     cycle.Seconds(),
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:     rng.Float64(),
			Y:     rng.Float64(),
			Phase: rng.Float64() * f.cycle,
		}
	}
	return f
}

func (f *Field) Len() int { return len(f.particles) }

// Advance moves the shared clock forward.
func (f *Field) Advance(dt time.Duration) {
	f.elapsed = math.Mod(f.elapsed+dt.Seconds(), f.cycle)
}

// Each calls fn with the current state of every particle.
func (f *Field) Each(fn func(Sample)) {
	for _, p := range f.particles {
		progress := math.Mod(f.elapsed+p.Phase, f.cycle) / f.cycle

		y := p.Y - progress
		if y < 0 {
			y += 1
		}
		if y >= 1 {
			y = 0
		}

		r, g, b := hsvToRgb(190+p.X*80, 0.35, 1)
		fn(Sample{
			X:      p.X,
			Y:      y,
			Radius: 1.5 + p.Y,
			Alpha:  Clamp01(math.Sin(math.Pi*progress)) * 0.5,
			Color:  color.RGBA{R: r, G: g, B: b, A: 255},
		})
	}
}
