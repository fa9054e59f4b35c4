package frame

import (
	"context"
	"time"
)

// Clock supplies frame timestamps in seconds.
type Clock interface {
	Seconds() float64
}

type monotonicClock struct {
	start time.Time
}

// NewClock returns a clock counting seconds from now on the monotonic clock.
func NewClock() Clock {
	return monotonicClock{start: time.Now()}
}

func (c monotonicClock) Seconds() float64 {
	return time.Since(c.start).Seconds()
}

// Hooks are called around each tick by Run. Nil hooks are skipped.
type Hooks struct {
	// BeforeTick runs before the tick; returning true stops the loop.
	BeforeTick func() (quit bool)
	// AfterTick runs after the tick, e.g. to present the frame.
	AfterTick func()
}

// Run ticks t with timestamps from clock until ctx is cancelled or
// BeforeTick asks to quit. The host's refresh cadence comes from AfterTick
// (a vsync'd buffer swap) rather than from Run itself.
func Run(ctx context.Context, clock Clock, t Ticker, hooks Hooks) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if hooks.BeforeTick != nil && hooks.BeforeTick() {
			return nil
		}

		t.Tick(clock.Seconds())

		if hooks.AfterTick != nil {
			hooks.AfterTick()
		}
	}
}
