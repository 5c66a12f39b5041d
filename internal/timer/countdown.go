// Package timer implements the quiz countdown as a tick-driven state
// machine. It knows nothing about scheduling; the caller decides what a
// tick is (the TUI delivers one per second).
package timer

// Countdown counts down from an initial number of seconds. It fires the
// expiry callback exactly once when the value reaches zero and never goes
// negative. Pausing freezes the value; ticks received while paused are
// discarded rather than deferred, so resuming never jumps.
type Countdown struct {
	remaining int
	paused    bool
	expired   bool
	onExpire  func()
}

// New returns a countdown starting at initial seconds. onExpire may be nil.
func New(initial int, onExpire func()) *Countdown {
	c := &Countdown{onExpire: onExpire}
	c.Reset(initial)
	return c
}

// Tick advances the countdown by one second. It is a no-op while paused or
// after expiry.
func (c *Countdown) Tick() {
	if c.paused || c.expired || c.remaining <= 0 {
		return
	}
	c.remaining--
	if c.remaining == 0 {
		c.expired = true
		if c.onExpire != nil {
			c.onExpire()
		}
	}
}

// Pause freezes the countdown.
func (c *Countdown) Pause() { c.paused = true }

// Resume unfreezes the countdown.
func (c *Countdown) Resume() { c.paused = false }

// Reset restarts the countdown at initial seconds, clearing pause and
// expiry state. A non-positive initial value expires immediately on the
// first tick guard and leaves remaining at zero.
func (c *Countdown) Reset(initial int) {
	if initial < 0 {
		initial = 0
	}
	c.remaining = initial
	c.paused = false
	c.expired = initial == 0
}

// Remaining reports the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Paused reports whether the countdown is frozen.
func (c *Countdown) Paused() bool { return c.paused }

// Expired reports whether the countdown has reached zero.
func (c *Countdown) Expired() bool { return c.expired }
