package life

import "time"

// DefaultStepPeriod is the interval between generations when the engine is
// started without a configured speed.
const DefaultStepPeriod = 100 * time.Millisecond

// stepClock paces the run loop at a fixed period per generation. It can be
// rescheduled in place so a new period takes effect immediately instead of
// after the old interval elapses. The clock is not safe for concurrent use;
// the engine serializes access with its own mutex.
type stepClock struct {
	ticker  *time.Ticker
	period  time.Duration
	resched chan struct{}
}

func newStepClock(period time.Duration) *stepClock {
	if period <= 0 {
		period = DefaultStepPeriod
	}
	return &stepClock{
		ticker:  time.NewTicker(period),
		period:  period,
		resched: make(chan struct{}),
	}
}

// C exposes the current tick channel. Reschedule replaces the channel, so the
// run loop re-fetches it every cycle and treats a tick from a superseded
// channel as stale.
func (c *stepClock) C() <-chan time.Time { return c.ticker.C }

// Rescheduled exposes a channel closed when the current schedule is replaced.
// A run loop parked on the tick channel selects on it so a reschedule wakes
// the loop instead of leaving it waiting on a ticker that will never fire.
func (c *stepClock) Rescheduled() <-chan struct{} { return c.resched }

// Reschedule swaps in a fresh ticker so the next tick fires one full new
// period from now. Ticks buffered on the old schedule stay behind on the
// abandoned channel, and waiters on the old Rescheduled channel are released.
func (c *stepClock) Reschedule(period time.Duration) {
	if period <= 0 {
		period = DefaultStepPeriod
	}
	c.period = period
	c.ticker.Stop()
	c.ticker = time.NewTicker(period)
	close(c.resched)
	c.resched = make(chan struct{})
}

// Stop releases the ticker. The clock must not be used afterwards.
func (c *stepClock) Stop() { c.ticker.Stop() }
