package client

import (
	"math"
	"time"
)

// FrameClock converts wall-clock frame time into fixed simulation steps.
type FrameClock struct {
	step     time.Duration // Time per simulation step
	maxSteps int           // Most steps returned by one Advance
	acc      time.Duration // Unconsumed time
}

// NewFrameClock creates a clock producing one step per step duration and
// at most maxSteps per call.
func NewFrameClock(step time.Duration, maxSteps int) *FrameClock {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &FrameClock{step: step, maxSteps: maxSteps}
}

// Advance adds elapsed time and returns how many steps are due. Negative
// deltas produce no steps. A backlog beyond maxSteps is dropped so a
// stalled connection does not fast-forward the game.
func (c *FrameClock) Advance(elapsed time.Duration) int {
	if elapsed < 0 || c.step <= 0 {
		return 0
	}
	c.acc += elapsed
	steps := int(c.acc / c.step)
	if steps > c.maxSteps {
		c.acc = 0
		return c.maxSteps
	}
	c.acc -= time.Duration(steps) * c.step
	return steps
}

// AdvanceSeconds is Advance for a delta in seconds. NaN and infinite
// deltas produce no steps.
func (c *FrameClock) AdvanceSeconds(dt float64) int {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	dt = math.Min(dt, time.Hour.Seconds())
	return c.Advance(time.Duration(math.Round(dt * float64(time.Second))))
}

// Reset drops any accumulated time.
func (c *FrameClock) Reset() {
	c.acc = 0
}
