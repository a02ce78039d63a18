// Package chain implements the follow chain: a head that eases toward a
// target point and a tail of segments held at a fixed link distance from
// their predecessors.
package chain

import (
	"image/color"
	"math"
)

// Vec is a point or offset in container-local pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Dist(o Vec) float64 { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Renderable is the visual handle a segment draws through.
type Renderable interface {
	SetPosition(left, top float64)
	SetSize(w, h float64)
	SetColor(c color.Color)
	SetOpacity(a float64)
}

// Segment is one link of the chain. Index 0 is the head.
type Segment struct {
	Index  int
	Pos    Vec
	Handle Renderable
}

// Chain is an ordered head-to-tail list of segments.
type Chain struct {
	segs []Segment
}

// New creates n segments at the origin, asking newHandle for each visual
// handle in index order.
func New(n int, newHandle func(i int) Renderable) *Chain {
	c := &Chain{segs: make([]Segment, n)}
	for i := range c.segs {
		c.segs[i].Index = i
		if newHandle != nil {
			c.segs[i].Handle = newHandle(i)
		}
	}
	return c
}

func (c *Chain) Len() int { return len(c.segs) }

// Head returns the head position. An empty chain reports the origin.
func (c *Chain) Head() Vec {
	if len(c.segs) == 0 {
		return Vec{}
	}
	return c.segs[0].Pos
}

// Positions returns a copy of every segment position, head first.
func (c *Chain) Positions() []Vec {
	out := make([]Vec, len(c.segs))
	for i := range c.segs {
		out[i] = c.segs[i].Pos
	}
	return out
}

// SetPositions overwrites segment positions from ps, head first.
// Extra entries are ignored; missing ones leave segments untouched.
func (c *Chain) SetPositions(ps []Vec) {
	for i := 0; i < len(ps) && i < len(c.segs); i++ {
		c.segs[i].Pos = ps[i]
	}
}

// Place jumps every segment to p without easing.
func (c *Chain) Place(p Vec) {
	for i := range c.segs {
		c.segs[i].Pos = p
	}
}

// Params carries the per-tick inputs read from the scene.
type Params struct {
	Target        Vec
	Active        bool
	Speed         float64
	SegmentLength float64
	Color         color.Color
}

// Tick advances the chain by one frame and pushes the result to every handle.
// Segments are updated strictly head to tail, each reading its predecessor's
// position from this same frame.
func (c *Chain) Tick(p Params) {
	if len(c.segs) == 0 {
		return
	}

	head := &c.segs[0]
	if p.Active {
		head.Pos = head.Pos.Add(p.Target.Sub(head.Pos).Scale(p.Speed))
	}
	c.apply(head, p.Color)

	for i := 1; i < len(c.segs); i++ {
		prev := c.segs[i-1].Pos
		cur := &c.segs[i]

		// Measured from prev to cur and placed on the opposite side of
		// prev: a follower at (10,0) behind a leader at (0,0) lands at
		// (-15,0). Flipping to prev-cur changes that layout.
		d := cur.Pos.Sub(prev)
		// atan2(0, 0) is 0, so colocated segments fall back to +x.
		angle := math.Atan2(d.Y, d.X)
		cur.Pos = Vec{
			X: prev.X - math.Cos(angle)*p.SegmentLength,
			Y: prev.Y - math.Sin(angle)*p.SegmentLength,
		}
		c.apply(cur, p.Color)
	}
}

func (c *Chain) apply(s *Segment, col color.Color) {
	if s.Handle == nil {
		return
	}
	size := Size(s.Index)
	s.Handle.SetSize(size, size)
	s.Handle.SetPosition(s.Pos.X-size/2, s.Pos.Y-size/2)
	s.Handle.SetColor(col)
	s.Handle.SetOpacity(Opacity(s.Index))
}

// Size is the drawn diameter of segment i.
func Size(i int) float64 {
	return math.Max(40-float64(i)*1.2, 10)
}

// Opacity is the alpha of segment i.
func Opacity(i int) float64 {
	return math.Max(1-float64(i)*0.03, 0.3)
}
