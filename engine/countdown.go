package engine

import "time"

// Countdown is the cast timer cadence; remaining time itself is derived from the session clock
// C() is nil while stopped so a select on it blocks
type Countdown struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewCountdown creates a stopped countdown ticking at interval
func NewCountdown(interval time.Duration) *Countdown {
	return &Countdown{interval: interval}
}

// Start begins ticking; no-op when already running
func (c *Countdown) Start() {
	if c.ticker != nil {
		return
	}
	c.ticker = time.NewTicker(c.interval)
}

// Stop halts ticking and releases the ticker
func (c *Countdown) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
}

// Running reports whether the countdown is ticking
func (c *Countdown) Running() bool {
	return c.ticker != nil
}

// C returns the tick channel, nil when stopped
func (c *Countdown) C() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}
