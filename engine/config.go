package engine

import (
	"fmt"
	"image/color"
)

// LayerSpec describes one parallax depth layer. Every star in a layer draws
// its radius and drift speed from the layer's ranges at build time; deeper
// layers use smaller sizes and slower speeds so they appear further away.
type LayerSpec struct {
	// Count is the number of stars in this layer
	Count int

	// SizeMin and SizeMax bound the star radius in logical pixels
	SizeMin float64
	SizeMax float64

	// SpeedMin and SpeedMax bound the drift speed in logical pixels per second
	SpeedMin float64
	SpeedMax float64

	// Tint is the base star color; its alpha channel is replaced per frame
	// by the twinkle oscillator
	Tint color.NRGBA
}

// Validate checks the layer ranges and rejects malformed configuration.
// These are startup-time errors, not runtime conditions, so they fail fast
// instead of being clamped.
func (l LayerSpec) Validate() error {
	if l.Count <= 0 {
		return fmt.Errorf("layer count must be positive, got %d", l.Count)
	}
	if l.SizeMin <= 0 {
		return fmt.Errorf("layer size minimum must be positive, got %g", l.SizeMin)
	}
	if l.SizeMax < l.SizeMin {
		return fmt.Errorf("layer size range inverted: [%g, %g]", l.SizeMin, l.SizeMax)
	}
	if l.SpeedMin < 0 {
		return fmt.Errorf("layer speed minimum must be non-negative, got %g", l.SpeedMin)
	}
	if l.SpeedMax < l.SpeedMin {
		return fmt.Errorf("layer speed range inverted: [%g, %g]", l.SpeedMin, l.SpeedMax)
	}
	return nil
}

// Config holds engine configuration
type Config struct {
	// ScreenWidth is the initial window width in logical pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in logical pixels
	ScreenHeight int

	// Layers are the parallax layers, ordered far to near
	Layers []LayerSpec

	// Background is the fill color behind the vignette and stars
	Background color.NRGBA
}

// Validate checks every layer spec
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if len(c.Layers) == 0 {
		return fmt.Errorf("at least one layer is required")
	}
	for i, layer := range c.Layers {
		if err := layer.Validate(); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

// DefaultConfig returns the stock three-layer starfield
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  960,
		ScreenHeight: 600,
		Layers: []LayerSpec{
			{Count: 80, SizeMin: 0.6, SizeMax: 1.2, SpeedMin: 4.0, SpeedMax: 9.0, Tint: color.NRGBA{R: 170, G: 190, B: 255, A: 255}},
			{Count: 50, SizeMin: 1.0, SizeMax: 1.6, SpeedMin: 10.0, SpeedMax: 18.0, Tint: color.NRGBA{R: 210, G: 220, B: 255, A: 255}},
			{Count: 24, SizeMin: 1.6, SizeMax: 2.6, SpeedMin: 20.0, SpeedMax: 34.0, Tint: color.NRGBA{R: 255, G: 244, B: 214, A: 255}},
		},
		Background: color.NRGBA{R: 5, G: 8, B: 22, A: 255},
	}
}
