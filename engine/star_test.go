package engine

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestBuildStarsHonorsLayerRanges(t *testing.T) {
	surface := testSurface(800, 600)
	layer := LayerSpec{
		Count:    80,
		SizeMin:  1,
		SizeMax:  1.6,
		SpeedMin: 10,
		SpeedMax: 18,
		Tint:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}

	stars, err := BuildStars([]LayerSpec{layer}, surface, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("BuildStars: %v", err)
	}
	if len(stars) != 80 {
		t.Fatalf("got %d stars, want 80", len(stars))
	}
	for i, s := range stars {
		if s.Radius < 1 || s.Radius > 1.6 {
			t.Errorf("star %d radius %g outside [1, 1.6]", i, s.Radius)
		}
		if s.Speed < 10 || s.Speed > 18 {
			t.Errorf("star %d speed %g outside [10, 18]", i, s.Speed)
		}
		if s.X < 0 || s.X > surface.LogicalWidth || s.Y < 0 || s.Y > surface.LogicalHeight {
			t.Errorf("star %d placed at (%g,%g), outside logical bounds", i, s.X, s.Y)
		}
		if s.Phase < 0 || s.Phase >= 2*math.Pi {
			t.Errorf("star %d phase %g outside [0, 2pi)", i, s.Phase)
		}
		if s.Twinkle < twinkleMin || s.Twinkle > twinkleMax {
			t.Errorf("star %d twinkle %g outside [%g, %g]", i, s.Twinkle, twinkleMin, twinkleMax)
		}
		if s.Tint != layer.Tint {
			t.Errorf("star %d tint %v, want layer tint %v", i, s.Tint, layer.Tint)
		}
	}
}

func TestBuildStarsMultipleLayers(t *testing.T) {
	surface := testSurface(800, 600)
	cfg := DefaultConfig()

	stars, err := BuildStars(cfg.Layers, surface, rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatalf("BuildStars: %v", err)
	}
	want := 0
	for _, layer := range cfg.Layers {
		want += layer.Count
	}
	if len(stars) != want {
		t.Fatalf("got %d stars, want %d", len(stars), want)
	}
}

func TestLayerSpecValidationRejectsBadRanges(t *testing.T) {
	base := LayerSpec{Count: 10, SizeMin: 1, SizeMax: 2, SpeedMin: 5, SpeedMax: 10}

	cases := []struct {
		name   string
		mutate func(*LayerSpec)
	}{
		{"zero count", func(l *LayerSpec) { l.Count = 0 }},
		{"negative count", func(l *LayerSpec) { l.Count = -3 }},
		{"zero size min", func(l *LayerSpec) { l.SizeMin = 0 }},
		{"inverted size range", func(l *LayerSpec) { l.SizeMin, l.SizeMax = 2, 1 }},
		{"negative speed min", func(l *LayerSpec) { l.SpeedMin = -1 }},
		{"inverted speed range", func(l *LayerSpec) { l.SpeedMin, l.SpeedMax = 10, 5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layer := base
			tc.mutate(&layer)
			if err := layer.Validate(); err == nil {
				t.Errorf("Validate accepted %+v", layer)
			}
			surface := testSurface(800, 600)
			if _, err := BuildStars([]LayerSpec{layer}, surface, rand.New(rand.NewSource(1))); err == nil {
				t.Errorf("BuildStars accepted %+v", layer)
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Errorf("Validate rejected a well-formed layer: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig invalid: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Layers = nil
	if err := cfg.Validate(); err == nil {
		t.Error("config with no layers accepted")
	}

	cfg = DefaultConfig()
	cfg.ScreenWidth = 0
	if err := cfg.Validate(); err == nil {
		t.Error("config with zero screen width accepted")
	}
}
