package engine

import "math"

// Simulation constants
const (
	// wrapMargin expands the wrap bounding box past the visible edges so
	// stars fade off-screen before reappearing on the opposite side
	wrapMargin = 10.0

	// driftX and driftY fix the drift direction, upper-right to lower-left;
	// all layers share it, parallax comes from per-star speed
	driftX = 0.6
	driftY = 0.4

	// phaseRate is the twinkle oscillator rate in radians per second
	phaseRate = 4.0
)

// Advance moves every star by dt seconds and accumulates its twinkle phase.
// dt must already be clamped by the frame clock. The wrap check is
// deliberately one-sided per axis: with the fixed drift direction x only
// ever leaves through the left edge and y through the bottom, so the other
// two edges cannot be crossed.
func Advance(stars []Star, dt float64, surface *Surface) {
	for i := range stars {
		s := &stars[i]
		s.X -= s.Speed * dt * driftX
		s.Y += s.Speed * dt * driftY
		s.Phase += dt * phaseRate

		if s.X < -wrapMargin {
			s.X = surface.LogicalWidth + wrapMargin
		}
		if s.Y > surface.LogicalHeight+wrapMargin {
			s.Y = -wrapMargin
		}
	}
}

// TwinkleAlpha derives the render alpha for a star from its phase and
// twinkle amplitude. The raw oscillation 0.7 + sin(phase)*0.3 is remapped to
// 0.35 + raw*0.35, keeping the result inside [0.35, 0.70] for any phase and
// any amplitude in [0, 1].
func TwinkleAlpha(phase, amplitude float64) float64 {
	raw := 0.7 + math.Sin(phase)*0.3*amplitude
	return 0.35 + raw*0.35
}
