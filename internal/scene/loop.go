package scene

import (
	"context"
	"time"
)

// FrameClock paces ticks. Frames delivers one value per display frame.
type FrameClock interface {
	Frames() <-chan time.Time
	Stop()
}

// Event is an input change applied on the loop goroutine.
type Event func(*Scene)

// TickerClock is a FrameClock backed by time.Ticker. Frames the loop is too
// slow to take are dropped by the ticker.
type TickerClock struct {
	t *time.Ticker
}

func NewTickerClock(fps int) *TickerClock {
	if fps <= 0 {
		fps = 60
	}
	return &TickerClock{t: time.NewTicker(time.Second / time.Duration(fps))}
}

func (c *TickerClock) Frames() <-chan time.Time { return c.t.C }
func (c *TickerClock) Stop() { c.t.Stop() }

// Run is the cooperative drive loop: the only goroutine that touches s.
// Events are applied in arrival order and every event queued before a frame
// is seen by that frame's Tick, which is followed by onFrame. Run returns nil
// when events is closed, or ctx.Err() on cancellation.
func Run(ctx context.Context, s *Scene, clock FrameClock, events <-chan Event, onFrame func(*Scene)) error {
	defer clock.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev != nil {
				ev(s)
			}

		case _, ok := <-clock.Frames():
			if !ok {
				return nil
			}
			// select picks ready cases at random, so events already
			// queued when the frame fires are applied before the tick.
			if !drain(s, events) {
				return nil
			}
			s.Tick()
			if onFrame != nil {
				onFrame(s)
			}
		}
	}
}

// drain applies every event already queued without blocking. It reports
// false once events is closed.
func drain(s *Scene, events <-chan Event) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			if ev != nil {
				ev(s)
			}
		default:
			return true
		}
	}
}
