package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pointer-snake/internal/particle"
)

// sprite is the ebiten handle of one chain segment. The chain writes into
// it during Update and Draw paints it.
type sprite struct {
	head      bool
	left, top float64
	w, h      float64
	col       color.Color
	opacity   float64
}

func (s *sprite) SetPosition(left, top float64) { s.left, s.top = left, top }
func (s *sprite) SetSize(w, h float64) { s.w, s.h = w, h }
func (s *sprite) SetColor(c color.Color) { s.col = c }
func (s *sprite) SetOpacity(a float64) { s.opacity = a }

// fade returns c with its alpha scaled by a.
func fade(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * particle.Clamp01(a)))
	return n
}

// draw paints the sprite offset by the container origin (ox, oy).
func (s *sprite) draw(screen *ebiten.Image, ox, oy float64) {
	if s.col == nil || s.w <= 0 {
		return
	}
	cx := ox + s.left + s.w/2
	cy := oy + s.top + s.h/2
	r := s.w / 2

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), fade(s.col, s.opacity), true)

	if !s.head {
		return
	}
	// Head: glow ring and a pair of eyes.
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r+3), 2, fade(s.col, 0.35), true)
	eye := color.RGBA{R: 15, G: 20, B: 30, A: 255}
	vector.DrawFilledCircle(screen, float32(cx-r*0.35), float32(cy-r*0.2), float32(r*0.15), eye, true)
	vector.DrawFilledCircle(screen, float32(cx+r*0.35), float32(cy-r*0.2), float32(r*0.15), eye, true)
}
