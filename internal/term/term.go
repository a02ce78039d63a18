// Package term runs the chain in a terminal. Each cell stands for a block of
// cellW x cellH virtual pixels so the chain keeps its pixel geometry; the
// top row is a toolbar.
package term

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/pointer-snake/internal/chain"
	"github.com/iburimskiy/pointer-snake/internal/config"
	"github.com/iburimskiy/pointer-snake/internal/particle"
	"github.com/iburimskiy/pointer-snake/internal/scene"
	"github.com/iburimskiy/pointer-snake/internal/sound"
)

const (
	cellW = 8
	cellH = 16

	toolbarRows = 1
)

var background = colorful.Color{R: 0.04, G: 0.05, B: 0.09}

// cell is the terminal handle of one chain segment.
type cell struct {
	head      bool
	left, top float64
	w, h      float64
	col       color.Color
	opacity   float64
}

func (c *cell) SetPosition(left, top float64) { c.left, c.top = left, top }
func (c *cell) SetSize(w, h float64) { c.w, c.h = w, h }
func (c *cell) SetColor(col color.Color) { c.col = col }
func (c *cell) SetOpacity(a float64) { c.opacity = a }

type label struct{ text string }

func (l *label) SetLabel(text string) { l.text = text }

type action int

const (
	actionNone action = iota
	actionColor
	actionSpeed
	actionReset
	actionQuit
)

type span struct {
	x0, x1 int
	act    action
}

// App owns the tcell screen and the scene it drives.
type App struct {
	screen tcell.Screen
	scene  *scene.Scene
	cells  []*cell
	field  *particle.Field
	player *sound.Player
	fps    int

	colorLabel label
	speedLabel label
	toolbar    []span

	cols, rows int
	mouseDown  bool
	quit       context.CancelFunc
}

// New initializes the terminal. player may be nil.
func New(cfg *config.File, player *sound.Player) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return newApp(screen, cfg, player, rng), nil
}

func newApp(screen tcell.Screen, cfg *config.File, player *sound.Player, rng *rand.Rand) *App {
	a := &App{
		screen: screen,
		player: player,
		fps:    cfg.FPS,
		field:  particle.NewField(cfg.ParticleCount(), config.ParticleCycleSec*time.Second, rng),
	}
	a.cols, a.rows = screen.Size()
	a.scene = scene.New(scene.Options{
		Segments:  cfg.Segments,
		Container: a,
		NewHandle: func(i int) chain.Renderable {
			c := &cell{head: i == 0}
			a.cells = append(a.cells, c)
			return c
		},
		ColorLabel: &a.colorLabel,
		SpeedLabel: &a.speedLabel,
	})
	a.scene.SyncBounds()
	return a
}

// Scene exposes the driven scene.
func (a *App) Scene() *scene.Scene { return a.scene }

// Bounds is everything below the toolbar, in virtual pixels.
func (a *App) Bounds() scene.Rect {
	rows := a.rows - toolbarRows
	if rows < 0 {
		rows = 0
	}
	cols := a.cols
	if cols < 0 {
		cols = 0
	}
	return scene.Rect{
		X:      0,
		Y:      toolbarRows * cellH,
		Width:  float64(cols * cellW),
		Height: float64(rows * cellH),
	}
}

// Run drives the scene until ctx is cancelled or the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.quit = cancel

	events := make(chan scene.Event, 64)
	go a.poll(ctx, events)

	log.Printf("[Term] running at %d fps on a %dx%d terminal", a.fps, a.cols, a.rows)
	err := scene.Run(ctx, a.scene, scene.NewTickerClock(a.fps), events, a.draw)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close restores the terminal.
func (a *App) Close() {
	if a.player != nil {
		a.player.Stop()
	}
	a.screen.Fini()
}

func (a *App) poll(ctx context.Context, events chan<- scene.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		e := a.translate(ev)
		if e == nil {
			continue
		}
		select {
		case events <- e:
		case <-ctx.Done():
			return
		}
	}
}

// translate turns a tcell event into a scene update. It runs on the poller
// goroutine and only captures event data; all state is touched by the
// returned closure on the loop goroutine.
func (a *App) translate(ev tcell.Event) scene.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act := keyAction(ev.Key(), ev.Rune())
		if act == actionNone {
			return nil
		}
		return func(*scene.Scene) { a.do(act) }

	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		return func(s *scene.Scene) { a.mouse(s, x, y, down) }

	case *tcell.EventResize:
		w, h := ev.Size()
		return func(s *scene.Scene) { a.resize(s, w, h) }

	case *tcell.EventFocus:
		if ev.Focused {
			return nil
		}
		return func(s *scene.Scene) { s.PointerLeave() }
	}
	return nil
}

func keyAction(k tcell.Key, r rune) action {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch r {
		case 'c', 'C':
			return actionColor
		case 's', 'S':
			return actionSpeed
		case 'r', 'R':
			return actionReset
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

func (a *App) do(act action) {
	switch act {
	case actionColor:
		a.scene.CycleColor()
		a.click(sound.ControlColor)
	case actionSpeed:
		a.scene.CycleSpeed()
		a.click(sound.ControlSpeed)
	case actionReset:
		a.scene.Reset()
		a.click(sound.ControlReset)
	case actionQuit:
		if a.quit != nil {
			a.quit()
		}
	}
}

func (a *App) click(c sound.Control) {
	if a.player != nil {
		a.player.Click(c)
	}
}

// pixel maps a cell to the virtual pixel at its center.
func pixel(x, y int) (float64, float64) {
	return float64(x*cellW + cellW/2), float64(y*cellH + cellH/2)
}

// mouse treats a held left button as a touch drag and plain motion as a
// hovering pointer.
func (a *App) mouse(s *scene.Scene, x, y int, down bool) {
	pressed := down && !a.mouseDown
	a.mouseDown = down

	if y < toolbarRows {
		if pressed {
			a.do(a.toolbarAt(x))
		}
		if s.Pointer.Dragging {
			s.TouchEnd()
		} else {
			s.PointerLeave()
		}
		return
	}

	px, py := pixel(x, y)
	switch {
	case pressed:
		s.TouchStart(px, py)
	case down:
		s.TouchMove(px, py)
	default:
		if s.Pointer.Dragging {
			s.TouchEnd()
		}
		s.PointerMove(px, py)
	}
}

func (a *App) toolbarAt(x int) action {
	for _, sp := range a.toolbar {
		if x >= sp.x0 && x < sp.x1 {
			return sp.act
		}
	}
	return actionNone
}

func (a *App) resize(s *scene.Scene, w, h int) {
	a.cols, a.rows = w, h
	a.screen.Sync()
	s.SyncBounds()
}

func (a *App) draw(*scene.Scene) {
	a.field.Advance(time.Second / time.Duration(a.fps))

	a.screen.Clear()
	a.drawParticles()
	// Tail first so the head ends up on top.
	for i := len(a.cells) - 1; i >= 0; i-- {
		a.drawCell(a.cells[i])
	}
	a.drawToolbar()
	a.screen.Show()
}

func (a *App) drawParticles() {
	b := a.Bounds()
	a.field.Each(func(p particle.Sample) {
		if p.Alpha <= 0.05 {
			return
		}
		x := int((b.X + p.X*b.Width) / cellW)
		y := int((b.Y + p.Y*b.Height) / cellH)
		a.screen.SetContent(x, y, '·', nil, tcell.StyleDefault.Foreground(shade(p.Color, p.Alpha)))
	})
}

func (a *App) drawCell(c *cell) {
	if c.col == nil {
		return
	}
	b := a.Bounds()
	cx := b.X + c.left + c.w/2
	cy := b.Y + c.top + c.h/2
	if cx < 0 || cy < b.Y {
		return
	}
	x, y := int(cx/cellW), int(cy/cellH)
	if x >= a.cols || y >= a.rows {
		return
	}
	a.screen.SetContent(x, y, glyph(c), nil, tcell.StyleDefault.Foreground(shade(c.col, c.opacity)))
}

func glyph(c *cell) rune {
	switch {
	case c.head:
		return '◉'
	case c.w >= 30:
		return '●'
	case c.w >= 18:
		return '•'
	default:
		return '∙'
	}
}

// shade mixes col into the background by opacity a.
func shade(col color.Color, a float64) tcell.Color {
	c, _ := colorful.MakeColor(col)
	r, g, b := background.BlendRgb(c, a).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (a *App) drawToolbar() {
	a.toolbar = a.toolbar[:0]
	x := 0
	put := func(text string, act action) {
		start := x
		for _, r := range text {
			a.screen.SetContent(x, 0, r, nil, tcell.StyleDefault.Reverse(act != actionNone))
			x++
		}
		if act != actionNone {
			a.toolbar = append(a.toolbar, span{x0: start, x1: x, act: act})
		}
		x++
	}
	put(" [c] Color: "+a.colorLabel.text+" ", actionColor)
	put(" [s] Speed: "+a.speedLabel.text+" ", actionSpeed)
	put(" [r] Reset ", actionReset)
	put(" [q] Quit ", actionQuit)
}
