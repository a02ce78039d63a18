package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pointer-snake/internal/particle"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	b := g.Bounds()
	g.drawContainer(screen, b.X, b.Y, b.Width, b.Height)
	g.drawParticles(screen, b.X, b.Y, b.Width, b.Height)

	// Tail first so the head ends up on top.
	for i := len(g.sprite) - 1; i >= 0; i-- {
		g.sprite[i].draw(screen, b.X, b.Y)
	}

	for _, btn := range g.buttons {
		btn.draw(screen)
	}

	status := "Move the mouse or drag a finger in the box | C: color  S: speed  R: reset  Esc/Q: quit"
	ebitenutil.DebugPrintAt(screen, status, g.resetBtn.x+g.resetBtn.w+20, g.resetBtn.y+12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	const band = 4
	for y := 0; y < g.screenH; y += band {
		ratio := float64(y) / math.Max(float64(g.screenH), 1)
		r := uint8(10 + 8*math.Sin(g.time*0.2+ratio*math.Pi))
		gv := uint8(14 + 6*math.Cos(g.time*0.15+ratio*math.Pi))
		b := uint8(28 + 12*math.Sin(g.time*0.25+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.screenW), band, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawContainer(screen *ebiten.Image, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 8, G: 12, B: 22, A: 160}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
}

func (g *Game) drawParticles(screen *ebiten.Image, x, y, w, h float64) {
	g.field.Each(func(p particle.Sample) {
		if p.Alpha <= 0 {
			return
		}
		px := x + p.X*w
		py := y + p.Y*h
		vector.DrawFilledCircle(screen, float32(px), float32(py), float32(p.Radius), fade(p.Color, p.Alpha), true)
	})
}
