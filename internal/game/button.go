package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// button is a toolbar control. It owns its caption so the scene can
// relabel it after a preset change.
type button struct {
	x, y, w, h int
	prefix     string
	label      string
	onClick    func()

	hovered bool
	pressed bool
}

func (b *button) SetLabel(text string) { b.label = text }

func (b *button) text() string {
	if b.prefix == "" {
		return b.label
	}
	return b.prefix + ": " + b.label
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// update runs the hover/press/release cycle and reports whether the button
// was clicked this frame.
func (b *button) update(in input, mouseX, mouseY int) bool {
	b.hovered = b.contains(mouseX, mouseY)

	if b.hovered && in.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if in.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && b.hovered
		b.pressed = false
		if clicked {
			b.click()
			return true
		}
	}
	return false
}

func (b *button) click() {
	if b.onClick != nil {
		b.onClick()
	}
}

func (b *button) draw(screen *ebiten.Image) {
	var bgColor color.Color
	if b.pressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if b.hovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, borderColor, false)

	text := b.text()
	textWidth := len(text) * 6 // debug font glyph width
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}
