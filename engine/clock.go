package engine

import "time"

// MaxFrameDelta caps the per-frame time step in seconds. Without it a long
// gap between ticks (window minimized, host throttling) would teleport every
// star across the surface in a single step.
const MaxFrameDelta = 0.04

// FrameClock turns host timestamps into clamped frame deltas
type FrameClock struct {
	last time.Time
}

// Tick records now and returns the elapsed time since the previous tick in
// seconds, clamped to [0, MaxFrameDelta]. The first tick returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}
