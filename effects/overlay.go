// Package effects implements the transient visual overlays drawn on top of
// the starfield: pointer sparkle trails and a closed set of click-triggered
// celebratory effects. Every effect is self-expiring and independent of the
// star simulation.
package effects

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind identifies one of the triggerable effect variants
type Kind int

const (
	KindBurst Kind = iota
	KindFlash
	KindSticker
	KindTextSwap

	kindCount
)

// String returns the effect name
func (k Kind) String() string {
	switch k {
	case KindBurst:
		return "burst"
	case KindFlash:
		return "flash"
	case KindSticker:
		return "sticker"
	case KindTextSwap:
		return "textswap"
	}
	return "unknown"
}

// sparkleInterval is the minimum spacing between pointer sparkle spawns in
// seconds
const sparkleInterval = 0.04

// Overlay owns all live transient effects. The engine calls into it from its
// tick, so all state stays on one goroutine and no effect ever interleaves
// with a simulation step.
type Overlay struct {
	rng *rand.Rand

	sparkles  []sparkle
	particles []burstParticle
	flashes   []flash
	stickers  []sticker

	banner   string
	swapText string
	swapLeft float64

	sinceSparkle float64
}

// NewOverlay creates an empty overlay. The rng drives effect variation
// (hues, burst directions, sticker glyphs).
func NewOverlay(rng *rand.Rand) (*Overlay, error) {
	if err := loadFont(); err != nil {
		return nil, err
	}
	return &Overlay{
		rng:          rng,
		banner:       defaultBanner,
		sinceSparkle: sparkleInterval,
	}, nil
}

// Trigger starts one effect of the given kind centered at (x, y) in logical
// coordinates. Each trigger is an independent overlay; re-triggering adds
// another instance and never disturbs a live one.
func (o *Overlay) Trigger(kind Kind, x, y float64) {
	switch kind {
	case KindBurst:
		o.spawnBurst(x, y)
	case KindFlash:
		o.spawnFlash()
	case KindSticker:
		o.spawnSticker(x, y)
	case KindTextSwap:
		o.swapBanner()
	}
}

// TriggerRandom picks a kind uniformly and triggers it at (x, y)
func (o *Overlay) TriggerRandom(x, y float64) Kind {
	kind := Kind(o.rng.Intn(int(kindCount)))
	o.Trigger(kind, x, y)
	return kind
}

// PointerSparkle spawns a sparkle at the pointer position, rate-limited to
// one spawn per sparkleInterval of accumulated frame time. Returns whether a
// sparkle was spawned.
func (o *Overlay) PointerSparkle(x, y float64) bool {
	if o.sinceSparkle < sparkleInterval {
		return false
	}
	o.sinceSparkle = 0
	o.spawnSparkle(x, y)
	return true
}

// ClickAt removes the topmost sticker under (x, y), if any, and reports
// whether one was removed
func (o *Overlay) ClickAt(x, y float64) bool {
	for i := len(o.stickers) - 1; i >= 0; i-- {
		if o.stickers[i].hit(x, y) {
			o.stickers = append(o.stickers[:i], o.stickers[i+1:]...)
			return true
		}
	}
	return false
}

// Update advances every live effect by dt seconds and drops the expired
// ones. After an effect's declared lifetime elapses it leaves no residual
// state behind.
func (o *Overlay) Update(dt float64) {
	o.sinceSparkle += dt
	o.updateSparkles(dt)
	o.updateBurst(dt)
	o.updateFlashes(dt)
	o.updateStickers(dt)

	if o.swapLeft > 0 {
		o.swapLeft -= dt
		if o.swapLeft <= 0 {
			o.swapLeft = 0
			o.swapText = ""
		}
	}
}

// Draw renders every live effect plus the banner on top of the frame
func (o *Overlay) Draw(dst *ebiten.Image) {
	o.drawFlashes(dst)
	o.drawSparkles(dst)
	o.drawBurst(dst)
	o.drawStickers(dst)
	o.drawBanner(dst)
}

// ActiveCount returns the number of live effect entities, counting an active
// banner swap as one
func (o *Overlay) ActiveCount() int {
	n := len(o.sparkles) + len(o.particles) + len(o.flashes) + len(o.stickers)
	if o.swapLeft > 0 {
		n++
	}
	return n
}

// Banner returns the text currently shown in the banner
func (o *Overlay) Banner() string {
	if o.swapLeft > 0 {
		return o.swapText
	}
	return o.banner
}
