package particle

import (
	"math/rand"
	"testing"
	"time"
)

func TestFieldSamplesStayInBounds(t *testing.T) {
	f := NewField(50, 15*time.Second, rand.New(rand.NewSource(1)))
	if f.Len() != 50 {
		t.Fatalf("expected 50 particles, got %d", f.Len())
	}

	for step := 0; step < 2000; step++ {
		f.Advance(time.Second / 60)
		f.Each(func(s Sample) {
			if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
				t.Fatalf("step %d: sample out of bounds: %+v", step, s)
			}
			if s.Alpha < 0 || s.Alpha > 0.5 {
				t.Fatalf("step %d: alpha out of range: %v", step, s.Alpha)
			}
		})
	}
}

func TestFieldRises(t *testing.T) {
	f := &Field{particles: []Particle{{X: 0.5, Y: 0.9}}, cycle: 10}

	var before, after Sample
	f.Each(func(s Sample) { before = s })
	f.Advance(time.Second)
	f.Each(func(s Sample) { after = s })

	if after.Y >= before.Y {
		t.Errorf("particle should rise: before %v after %v", before.Y, after.Y)
	}
	if before.Alpha != 0 {
		t.Errorf("particle at cycle start should be invisible, got %v", before.Alpha)
	}
	if after.Alpha <= 0 {
		t.Errorf("particle mid-cycle should be visible, got %v", after.Alpha)
	}
}

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{360, 0, 1, 255, 255, 255},
		{-120, 1, 1, 0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsvToRgb(%v,%v,%v) = %d,%d,%d want %d,%d,%d", tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{
		{-0.5, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {3, 1},
	} {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
