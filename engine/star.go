package engine

import (
	"image/color"
	"math"
	"math/rand"
)

// Twinkle amplitude bounds. Each star gets a fixed amplitude in this range so
// the field shimmers unevenly instead of pulsing in lockstep.
const (
	twinkleMin = 0.6
	twinkleMax = 1.0
)

// Star is a single starfield entity. Position, radius and speed live in
// logical coordinates. Phase accumulates monotonically and drives the
// twinkle oscillator; the rendered alpha is derived from it every frame and
// never stored.
type Star struct {
	X, Y    float64
	Radius  float64
	Speed   float64
	Phase   float64
	Twinkle float64
	Tint    color.NRGBA
}

// BuildStars creates the full star pool from the layer specs. Stars are
// placed uniformly within the surface's logical bounds with radius, speed,
// initial phase and twinkle amplitude sampled uniformly from their ranges.
// The pool is allocated once and lives for the process lifetime.
func BuildStars(layers []LayerSpec, surface *Surface, rng *rand.Rand) ([]Star, error) {
	total := 0
	for _, layer := range layers {
		if err := layer.Validate(); err != nil {
			return nil, err
		}
		total += layer.Count
	}

	stars := make([]Star, 0, total)
	for _, layer := range layers {
		for i := 0; i < layer.Count; i++ {
			stars = append(stars, Star{
				X:       rng.Float64() * surface.LogicalWidth,
				Y:       rng.Float64() * surface.LogicalHeight,
				Radius:  randRange(rng, layer.SizeMin, layer.SizeMax),
				Speed:   randRange(rng, layer.SpeedMin, layer.SpeedMax),
				Phase:   rng.Float64() * 2 * math.Pi,
				Twinkle: randRange(rng, twinkleMin, twinkleMax),
				Tint:    layer.Tint,
			})
		}
	}
	return stars, nil
}

// randRange returns a uniform value in [min, max]
func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
