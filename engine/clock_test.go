package engine

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockFirstTickIsZero(t *testing.T) {
	var c FrameClock
	if dt := c.Tick(time.Now()); dt != 0 {
		t.Errorf("first tick dt = %g, want 0", dt)
	}
}

func TestFrameClockReportsElapsedSeconds(t *testing.T) {
	var c FrameClock
	base := time.Now()

	c.Tick(base)
	dt := c.Tick(base.Add(16 * time.Millisecond))
	if math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("dt = %g, want 0.016", dt)
	}
}

func TestFrameClockClampsLargeGaps(t *testing.T) {
	var c FrameClock
	base := time.Now()

	c.Tick(base)
	if dt := c.Tick(base.Add(3 * time.Second)); dt != MaxFrameDelta {
		t.Errorf("dt after 3s gap = %g, want %g", dt, MaxFrameDelta)
	}

	// The clamp must not lose the timestamp: the next normal frame is normal
	dt := c.Tick(base.Add(3*time.Second + 16*time.Millisecond))
	if math.Abs(dt-0.016) > 1e-9 {
		t.Errorf("dt after clamped frame = %g, want 0.016", dt)
	}
}

func TestFrameClockIgnoresBackwardsTime(t *testing.T) {
	var c FrameClock
	base := time.Now()

	c.Tick(base)
	if dt := c.Tick(base.Add(-time.Second)); dt != 0 {
		t.Errorf("dt for backwards time = %g, want 0", dt)
	}
}
