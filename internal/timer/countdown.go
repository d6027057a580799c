// Package timer implements the single-clock study countdown.
//
// The countdown owns no goroutine and no wall clock: the event loop calls
// Tick once per second, so pausing cannot drift and all state transitions
// happen on one thread.
package timer

// Countdown counts a fixed number of seconds down to zero. The completion
// signal fires exactly once, on the tick that reaches zero. Pausing freezes
// the remaining time; a pause in effect at zero suppresses completion until
// the countdown is resumed.
type Countdown struct {
	total     int
	remaining int
	paused    bool
	fired     bool
}

// New creates a countdown of totalSeconds. Non-positive totals are treated
// as an already-elapsed countdown that completes on the first tick.
func New(totalSeconds int) *Countdown {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return &Countdown{total: totalSeconds, remaining: totalSeconds}
}

// Tick advances the countdown by one second. It returns the remaining
// seconds and whether the completion signal fired on this tick. While
// paused, Tick is a no-op and completion is withheld.
func (c *Countdown) Tick() (remaining int, completed bool) {
	if c.paused {
		return c.remaining, false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 && !c.fired {
		c.fired = true
		return c.remaining, true
	}
	return c.remaining, false
}

// Pause freezes the countdown. Idempotent.
func (c *Countdown) Pause() {
	c.paused = true
}

// Resume unfreezes the countdown. Idempotent.
func (c *Countdown) Resume() {
	c.paused = false
}

// Paused reports whether the countdown is frozen.
func (c *Countdown) Paused() bool {
	return c.paused
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Total returns the configured duration in seconds.
func (c *Countdown) Total() int {
	return c.total
}

// Completed reports whether the completion signal has fired.
func (c *Countdown) Completed() bool {
	return c.fired
}

// ElapsedSeconds returns the seconds counted down so far.
func (c *Countdown) ElapsedSeconds() int {
	return c.total - c.remaining
}

// ElapsedMinutes returns the elapsed whole minutes, never less than 1: a
// session that ends instantly still reports one minute studied.
func (c *Countdown) ElapsedMinutes() int {
	mins := c.ElapsedSeconds() / 60
	if mins < 1 {
		return 1
	}
	return mins
}
