package effects

import (
	"math/rand"
	"testing"
)

func testOverlay(t *testing.T, seed int64) *Overlay {
	t.Helper()
	o, err := NewOverlay(rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	return o
}

// drain advances the overlay in frame-sized steps until total seconds have
// elapsed, mimicking the tick cadence effects actually see
func drain(o *Overlay, total float64) {
	const step = 0.016
	for elapsed := 0.0; elapsed < total; elapsed += step {
		o.Update(step)
	}
}

func TestEffectsExpireCleanly(t *testing.T) {
	cases := []struct {
		kind     Kind
		lifetime float64
	}{
		{KindBurst, burstLifeMax},
		{KindFlash, flashLife},
		{KindSticker, stickerLife},
		{KindTextSwap, swapLife},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			o := testOverlay(t, 21)
			o.Trigger(tc.kind, 200, 150)
			if o.ActiveCount() == 0 {
				t.Fatal("trigger produced no live effect")
			}
			drain(o, tc.lifetime+0.1)
			if n := o.ActiveCount(); n != 0 {
				t.Errorf("%d effect entities alive after lifetime elapsed", n)
			}
		})
	}
}

func TestRetriggerIsIndependent(t *testing.T) {
	o := testOverlay(t, 22)
	o.Trigger(KindBurst, 100, 100)
	first := o.ActiveCount()
	o.Trigger(KindBurst, 300, 300)
	if o.ActiveCount() != 2*first {
		t.Errorf("second burst disturbed the first: %d live, want %d", o.ActiveCount(), 2*first)
	}
	drain(o, burstLifeMax+0.1)
	if n := o.ActiveCount(); n != 0 {
		t.Errorf("%d effect entities alive after both bursts expired", n)
	}
}

func TestSparkleRateLimit(t *testing.T) {
	o := testOverlay(t, 23)

	if !o.PointerSparkle(10, 10) {
		t.Fatal("first sparkle rejected")
	}
	if o.PointerSparkle(11, 10) {
		t.Error("second sparkle accepted within the rate-limit window")
	}

	o.Update(sparkleInterval)
	if !o.PointerSparkle(12, 10) {
		t.Error("sparkle rejected after the rate-limit window elapsed")
	}
}

func TestSparkleExpires(t *testing.T) {
	o := testOverlay(t, 24)
	o.PointerSparkle(50, 50)
	drain(o, sparkleLife+0.1)
	if n := o.ActiveCount(); n != 0 {
		t.Errorf("%d sparkles alive after lifetime elapsed", n)
	}
}

func TestStickerClickRemoval(t *testing.T) {
	o := testOverlay(t, 25)
	o.Trigger(KindSticker, 120, 90)

	if o.ClickAt(500, 500) {
		t.Error("click far from the sticker removed it")
	}
	if !o.ClickAt(120, 90) {
		t.Error("click on the sticker did not remove it")
	}
	if n := o.ActiveCount(); n != 0 {
		t.Errorf("%d effect entities alive after sticker removal", n)
	}
	if o.ClickAt(120, 90) {
		t.Error("second click removed an already-removed sticker")
	}
}

func TestBannerSwapReverts(t *testing.T) {
	o := testOverlay(t, 26)

	if o.Banner() != defaultBanner {
		t.Fatalf("initial banner = %q, want %q", o.Banner(), defaultBanner)
	}
	o.Trigger(KindTextSwap, 0, 0)
	if o.Banner() == defaultBanner {
		t.Error("banner unchanged after text swap trigger")
	}
	drain(o, swapLife+0.1)
	if o.Banner() != defaultBanner {
		t.Errorf("banner = %q after swap expiry, want %q", o.Banner(), defaultBanner)
	}
}

func TestTriggerRandomStaysInClosedSet(t *testing.T) {
	o := testOverlay(t, 27)
	seen := map[Kind]bool{}
	for i := 0; i < 200; i++ {
		kind := o.TriggerRandom(100, 100)
		if kind < 0 || kind >= kindCount {
			t.Fatalf("TriggerRandom returned out-of-set kind %d", kind)
		}
		seen[kind] = true
		drain(o, stickerLife+0.1)
	}
	for k := Kind(0); k < kindCount; k++ {
		if !seen[k] {
			t.Errorf("kind %v never selected in 200 uniform draws", k)
		}
	}
}
