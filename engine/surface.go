package engine

import "math"

// Device pixel scale bounds. Host-reported ratios above 2 buy nothing for a
// starfield and double the fill cost, so the scale is clamped.
const (
	minPixelScale = 1.0
	maxPixelScale = 2.0
)

// Surface tracks the drawing surface geometry: logical (scale-independent)
// dimensions, the clamped device pixel scale, and the resulting backing-store
// size. The simulation reads it for wrap bounds and the compositor for
// vignette geometry; neither mutates it.
type Surface struct {
	LogicalWidth  float64
	LogicalHeight float64

	// PixelScale is the device pixel ratio, clamped to [1, 2]
	PixelScale float64

	// DeviceWidth and DeviceHeight are the backing-store dimensions,
	// round(logical * scale)
	DeviceWidth  int
	DeviceHeight int
}

// Configure resets the surface for a new logical size and device scale.
// Called once at startup and again on every resize. Previous geometry is
// discarded wholesale; there is no incremental resize path.
func (s *Surface) Configure(logicalWidth, logicalHeight, scale float64) {
	if scale < minPixelScale {
		scale = minPixelScale
	}
	if scale > maxPixelScale {
		scale = maxPixelScale
	}
	s.LogicalWidth = logicalWidth
	s.LogicalHeight = logicalHeight
	s.PixelScale = scale
	s.DeviceWidth = int(math.Round(logicalWidth * scale))
	s.DeviceHeight = int(math.Round(logicalHeight * scale))
}
