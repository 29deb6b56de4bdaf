package client

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockAdvance(t *testing.T) {
	c := NewFrameClock(10*time.Millisecond, 5)
	if got := c.Advance(25 * time.Millisecond); got != 2 {
		t.Fatalf("25ms = %d steps, want 2", got)
	}
	if got := c.Advance(5 * time.Millisecond); got != 1 {
		t.Fatalf("leftover 5ms + 5ms = %d steps, want 1", got)
	}
	if got := c.Advance(time.Second); got != 5 {
		t.Fatalf("backlog = %d steps, want capped at 5", got)
	}
	if got := c.Advance(0); got != 0 {
		t.Fatalf("backlog should be dropped, got %d steps", got)
	}
}

func TestFrameClockGuards(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"negative", -1},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFrameClock(10*time.Millisecond, 5)
			c.AdvanceSeconds(0.004)
			if got := c.AdvanceSeconds(tt.dt); got != 0 {
				t.Fatalf("AdvanceSeconds(%v) = %d, want 0", tt.dt, got)
			}
			if c.acc < 0 {
				t.Fatalf("accumulator corrupted: %v", c.acc)
			}
			if got := c.AdvanceSeconds(0.006); got != 1 {
				t.Fatalf("clock should keep working after a bad delta, got %d", got)
			}
		})
	}
}
