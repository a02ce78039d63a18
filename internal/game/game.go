// Package game is the ebiten frontend: a toolbar of three buttons above a
// play area in which the chain follows the mouse or a touch drag.
package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/pointer-snake/internal/chain"
	"github.com/iburimskiy/pointer-snake/internal/config"
	"github.com/iburimskiy/pointer-snake/internal/particle"
	"github.com/iburimskiy/pointer-snake/internal/scene"
	"github.com/iburimskiy/pointer-snake/internal/sound"
)

const noTouch ebiten.TouchID = -1

// Game implements ebiten.Game.
type Game struct {
	in     input
	scene  *scene.Scene
	sprite []*sprite
	field  *particle.Field
	player *sound.Player

	colorBtn *button
	speedBtn *button
	resetBtn *button
	buttons  []*button

	screenW, screenH int

	touchID  ebiten.TouchID
	touchBuf []ebiten.TouchID

	time float64
}

// NewGame wires a scene to live ebiten input. player may be nil.
func NewGame(cfg *config.File, player *sound.Player) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return newGame(cfg, player, ebitenInput{}, rng)
}

func newGame(cfg *config.File, player *sound.Player, in input, rng *rand.Rand) *Game {
	g := &Game{
		in:      in,
		player:  player,
		screenW: cfg.Window.Width,
		screenH: cfg.Window.Height,
		touchID: noTouch,
		field:   particle.NewField(cfg.ParticleCount(), config.ParticleCycleSec*time.Second, rng),
	}

	x := config.ButtonX
	next := func(prefix string, onClick func()) *button {
		b := &button{
			x: x, y: config.ButtonY,
			w: config.ButtonWidth, h: config.ButtonHeight,
			prefix:  prefix,
			onClick: onClick,
		}
		x += config.ButtonWidth + config.ButtonSpacing
		g.buttons = append(g.buttons, b)
		return b
	}
	g.colorBtn = next("Color", g.cycleColor)
	g.speedBtn = next("Speed", g.cycleSpeed)
	g.resetBtn = next("", g.reset)
	g.resetBtn.SetLabel("Reset")

	g.scene = scene.New(scene.Options{
		Segments:  cfg.Segments,
		Container: g,
		NewHandle: func(i int) chain.Renderable {
			s := &sprite{head: i == 0}
			g.sprite = append(g.sprite, s)
			return s
		},
		ColorLabel: g.colorBtn,
		SpeedLabel: g.speedBtn,
	})
	return g
}

// Bounds is the play area below the toolbar in screen pixels.
func (g *Game) Bounds() scene.Rect {
	w := g.screenW - 2*config.ContainerMargin
	h := g.screenH - config.ContainerTop - config.ContainerMargin
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return scene.Rect{
		X:      config.ContainerMargin,
		Y:      config.ContainerTop,
		Width:  float64(w),
		Height: float64(h),
	}
}

func (g *Game) inContainer(x, y int) bool {
	b := g.Bounds()
	fx, fy := float64(x), float64(y)
	return fx >= b.X && fx < b.X+b.Width && fy >= b.Y && fy < b.Y+b.Height
}

func (g *Game) cycleColor() {
	g.scene.CycleColor()
	g.click(sound.ControlColor)
}

func (g *Game) cycleSpeed() {
	g.scene.CycleSpeed()
	g.click(sound.ControlSpeed)
}

func (g *Game) reset() {
	g.scene.Reset()
	g.click(sound.ControlReset)
}

func (g *Game) click(c sound.Control) {
	if g.player != nil {
		g.player.Click(c)
	}
}

func (g *Game) Update() error {
	// First frame and window resizes recenter the chain.
	g.scene.SyncBounds()

	if g.in.IsKeyJustPressed(ebiten.KeyEscape) || g.in.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.in.IsKeyJustPressed(ebiten.KeyC) {
		g.cycleColor()
	}
	if g.in.IsKeyJustPressed(ebiten.KeyS) {
		g.cycleSpeed()
	}
	if g.in.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}

	mouseX, mouseY := g.in.CursorPosition()
	for _, b := range g.buttons {
		b.update(g.in, mouseX, mouseY)
	}

	g.updateTouch()
	if g.touchID == noTouch {
		if g.inContainer(mouseX, mouseY) {
			g.scene.PointerMove(float64(mouseX), float64(mouseY))
		} else if g.scene.Pointer.Active && !g.scene.Pointer.Dragging {
			g.scene.PointerLeave()
		}
	}

	g.scene.Tick()

	dt := time.Second / time.Duration(ebiten.DefaultTPS)
	g.field.Advance(dt)
	g.time += dt.Seconds()
	return nil
}

// updateTouch follows the first finger down. A touch that starts on a
// button activates it instead of dragging the chain.
func (g *Game) updateTouch() {
	if g.touchID != noTouch {
		if g.in.IsTouchJustReleased(g.touchID) {
			g.touchID = noTouch
			g.scene.TouchEnd()
			return
		}
		x, y := g.in.TouchPosition(g.touchID)
		g.scene.TouchMove(float64(x), float64(y))
		return
	}

	g.touchBuf = g.in.AppendJustPressedTouchIDs(g.touchBuf[:0])
	for _, id := range g.touchBuf {
		x, y := g.in.TouchPosition(id)
		for _, b := range g.buttons {
			if b.contains(x, y) {
				b.click()
				return
			}
		}
		if g.inContainer(x, y) {
			g.touchID = id
			g.scene.TouchStart(float64(x), float64(y))
			return
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Scene exposes the driven scene.
func (g *Game) Scene() *scene.Scene { return g.scene }
