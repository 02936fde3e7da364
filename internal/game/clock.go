package game

import (
	"context"
	"time"
)

// Clock invokes a per-tick callback at a fixed nominal period. The period is
// nominal: ticks are counted, not timed, so movement speed follows tick rate.
type Clock interface {
	OnTick(period time.Duration, fn func())
}

// ManualClock runs ticks only when stepped. Used by tests and the headless
// report to drive the simulation deterministically.
type ManualClock struct {
	period time.Duration
	fn     func()
}

// OnTick registers fn, replacing any previous callback.
func (c *ManualClock) OnTick(period time.Duration, fn func()) {
	c.period = period
	c.fn = fn
}

// Step runs n ticks back to back.
func (c *ManualClock) Step(n int) {
	if c.fn == nil {
		return
	}
	for i := 0; i < n; i++ {
		c.fn()
	}
}

// Elapsed returns the nominal time covered by n ticks.
func (c *ManualClock) Elapsed(n int) time.Duration {
	return time.Duration(n) * c.period
}

// TickerClock drives the callback from a time.Ticker. Functions handed to
// Post run on the same goroutine as the ticks, so callers never need to lock
// state the callback touches.
type TickerClock struct {
	period time.Duration
	fn     func()
	posted chan func()
}

// NewTickerClock creates a clock whose Post queue holds up to backlog entries.
func NewTickerClock(backlog int) *TickerClock {
	return &TickerClock{posted: make(chan func(), backlog)}
}

// OnTick registers fn. It must be called before Run.
func (c *TickerClock) OnTick(period time.Duration, fn func()) {
	c.period = period
	c.fn = fn
}

// Post queues fn to run between ticks. It blocks while the queue is full and
// gives up with ctx.Err() once ctx is done.
func (c *TickerClock) Post(ctx context.Context, fn func()) error {
	select {
	case c.posted <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run ticks until ctx is done and returns ctx.Err().
func (c *TickerClock) Run(ctx context.Context) error {
	if c.fn == nil || c.period <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}
	t := time.NewTicker(c.period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-c.posted:
			fn()
		case <-t.C:
			c.fn()
		}
	}
}
