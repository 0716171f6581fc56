package engine

// Countdown is a tick-driven timer. It replaces delayed callbacks: the owner
// advances it once per tick and reacts when Tick reports expiry.
type Countdown struct {
	remaining int
}

// Start arms the timer for the given number of ticks.
func (c *Countdown) Start(ticks int) {
	c.remaining = max(0, ticks)
}

// Tick advances the timer and returns true on the tick it expires.
func (c *Countdown) Tick() bool {
	if c.remaining <= 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

// Active reports whether the timer is still counting.
func (c *Countdown) Active() bool {
	return c.remaining > 0
}

// Stop disarms the timer without expiring it.
func (c *Countdown) Stop() {
	c.remaining = 0
}
