package effects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Flash tuning
const (
	flashLife     = 0.45 // seconds
	flashMaxAlpha = 0.85
)

// flash is a full-frame white wash fading out over its lifetime
type flash struct {
	age float64
}

func (o *Overlay) spawnFlash() {
	o.flashes = append(o.flashes, flash{})
}

func (o *Overlay) updateFlashes(dt float64) {
	n := 0
	for i := range o.flashes {
		f := o.flashes[i]
		f.age += dt
		if f.age >= flashLife {
			continue
		}
		o.flashes[n] = f
		n++
	}
	o.flashes = o.flashes[:n]
}

func (o *Overlay) drawFlashes(dst *ebiten.Image) {
	if len(o.flashes) == 0 {
		return
	}
	b := dst.Bounds()
	for i := range o.flashes {
		t := 1 - o.flashes[i].age/flashLife
		clr := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(t*flashMaxAlpha*255 + 0.5)}
		vector.DrawFilledRect(dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), clr, false)
	}
}
