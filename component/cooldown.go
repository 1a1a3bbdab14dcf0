package component

// Cooldown is a millisecond timer started at a timestamp and polled with the
// current time. There are no timer goroutines; Tick must be called each frame.
type Cooldown struct {
	Duration int64

	startedAt int64
	running   bool
}

func NewCooldown(duration int64) Cooldown {
	return Cooldown{Duration: duration}
}

// Start begins the cooldown at now with the default duration.
func (c *Cooldown) Start(now int64) {
	c.StartFor(now, c.Duration)
}

// StartFor begins the cooldown at now with an explicit duration.
func (c *Cooldown) StartFor(now, duration int64) {
	if c == nil {
		return
	}
	c.startedAt = now
	c.Duration = duration
	c.running = true
}

func (c *Cooldown) Running() bool {
	return c != nil && c.running
}

func (c *Cooldown) Ready() bool {
	return c != nil && !c.running
}

// Tick stops the cooldown once Duration has elapsed. It returns true only on
// the tick that ends it.
func (c *Cooldown) Tick(now int64) bool {
	if c == nil || !c.running {
		return false
	}
	if now-c.startedAt >= c.Duration {
		c.running = false
		return true
	}
	return false
}

func (c *Cooldown) StartedAt() int64 {
	if c == nil {
		return 0
	}
	return c.startedAt
}
