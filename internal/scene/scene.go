// Package scene owns the mutable state of the effect: the chain, the pointer
// tracking state and the selected presets. Frontends translate their raw
// input into calls on a Scene and call Tick once per frame.
package scene

import (
	"image/color"
	"log"

	"github.com/iburimskiy/pointer-snake/internal/chain"
	"github.com/iburimskiy/pointer-snake/internal/config"
)

// Rect is a container's rendered bounds in frontend coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center is the container-local center point. Empty bounds center at the origin.
func (r Rect) Center() chain.Vec {
	w, h := r.Width, r.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return chain.Vec{X: w / 2, Y: h / 2}
}

// Container reports the current bounds of the area the chain lives in.
type Container interface {
	Bounds() Rect
}

// Label is a control whose caption follows the selected preset.
type Label interface {
	SetLabel(text string)
}

// PointerState is the latest pointer or touch input.
type PointerState struct {
	Target   chain.Vec
	Active   bool
	Dragging bool
}

// Settings are the chain parameters chosen through the controls.
type Settings struct {
	Color         config.ColorPreset
	Speed         float64
	SegmentLength float64
}

// Options configures a new Scene.
type Options struct {
	Segments   int
	Container  Container
	NewHandle  func(i int) chain.Renderable
	ColorLabel Label
	SpeedLabel Label
}

// Scene is the single owner of all state read by the chain each frame.
type Scene struct {
	chain     *chain.Chain
	container Container

	Pointer  PointerState
	Settings Settings

	colors *Cycler[config.ColorPreset]
	speeds *Cycler[config.SpeedPreset]

	colorLabel Label
	speedLabel Label

	lastBounds Rect
	sized      bool
}

// New builds a scene with the default presets selected. Segments start at the
// origin; call SyncBounds or Resize once the container has been laid out.
func New(opts Options) *Scene {
	n := opts.Segments
	if n <= 0 {
		n = config.SegmentCount
	}

	s := &Scene{
		chain:      chain.New(n, opts.NewHandle),
		container:  opts.Container,
		colors:     NewCycler(config.Colors, config.DefaultColorIndex),
		speeds:     NewCycler(config.Speeds, config.DefaultSpeedIndex),
		colorLabel: opts.ColorLabel,
		speedLabel: opts.SpeedLabel,
	}
	s.Settings = Settings{
		Color:         s.colors.Current(),
		Speed:         s.speeds.Current().Value,
		SegmentLength: config.SegmentLength,
	}

	if s.colorLabel != nil {
		s.colorLabel.SetLabel(s.Settings.Color.Name)
	}
	if s.speedLabel != nil {
		s.speedLabel.SetLabel(s.speeds.Current().Name)
	}
	return s
}

// Chain exposes the segment chain for renderers and tests.
func (s *Scene) Chain() *chain.Chain { return s.chain }

// Color is the current chain color.
func (s *Scene) Color() color.Color { return s.Settings.Color.RGBA }

// SpeedName is the display name of the selected speed preset.
func (s *Scene) SpeedName() string { return s.speeds.Current().Name }

func (s *Scene) bounds() Rect {
	if s.container == nil {
		return Rect{}
	}
	return s.container.Bounds()
}

// Tick runs one frame of the chain.
func (s *Scene) Tick() {
	s.chain.Tick(chain.Params{
		Target:        s.Pointer.Target,
		Active:        s.Pointer.Active,
		Speed:         s.Settings.Speed,
		SegmentLength: s.Settings.SegmentLength,
		Color:         s.Settings.Color.RGBA,
	})
}

// local converts a frontend coordinate into container-local pixels.
func (s *Scene) local(x, y float64) chain.Vec {
	b := s.bounds()
	return chain.Vec{X: x - b.X, Y: y - b.Y}
}

// PointerMove records a mouse position over the container.
func (s *Scene) PointerMove(x, y float64) {
	s.Pointer.Target = s.local(x, y)
	s.Pointer.Active = true
}

// PointerLeave stops the head from following. The last target is kept.
func (s *Scene) PointerLeave() {
	s.Pointer.Active = false
}

// TouchStart begins a touch drag at the primary touch point.
func (s *Scene) TouchStart(x, y float64) {
	s.Pointer.Dragging = true
	s.Pointer.Target = s.local(x, y)
	s.Pointer.Active = true
}

// TouchMove follows the primary touch point while a drag is in progress.
func (s *Scene) TouchMove(x, y float64) {
	if !s.Pointer.Dragging {
		return
	}
	s.Pointer.Target = s.local(x, y)
	s.Pointer.Active = true
}

// TouchEnd finishes a touch drag.
func (s *Scene) TouchEnd() {
	s.Pointer.Dragging = false
	s.Pointer.Active = false
}

// CycleColor selects the next color preset.
func (s *Scene) CycleColor() config.ColorPreset {
	p := s.colors.Next()
	s.Settings.Color = p
	if s.colorLabel != nil {
		s.colorLabel.SetLabel(p.Name)
	}
	return p
}

// CycleSpeed selects the next speed preset.
func (s *Scene) CycleSpeed() config.SpeedPreset {
	p := s.speeds.Next()
	s.Settings.Speed = p.Value
	if s.speedLabel != nil {
		s.speedLabel.SetLabel(p.Name)
	}
	return p
}

// Reset moves every segment to the container's current center at once.
func (s *Scene) Reset() {
	b := s.bounds()
	s.chain.Place(b.Center())
	s.lastBounds = b
	s.sized = true
}

// Resize recenters the chain after a layout change.
func (s *Scene) Resize() {
	s.Reset()
	log.Printf("[Scene] container resized to %.0fx%.0f", s.lastBounds.Width, s.lastBounds.Height)
}

// SyncBounds recenters the chain on the first call and whenever the
// container's size has changed since the last centering. It reports whether
// a recenter happened.
func (s *Scene) SyncBounds() bool {
	b := s.bounds()
	if s.sized && b.Width == s.lastBounds.Width && b.Height == s.lastBounds.Height {
		s.lastBounds = b
		return false
	}
	s.Resize()
	return true
}
