package effects

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sparkle tuning
const (
	sparkleLife     = 0.9  // seconds
	sparkleRise     = 26.0 // upward drift in logical px/s
	sparkleJitter   = 18.0 // horizontal velocity spread
	sparkleSizeMin  = 1.2
	sparkleSizeMax  = 2.8
)

// sparkle is a single pointer-trail mote: it rises, shrinks and fades out
// over its fixed lifetime
type sparkle struct {
	x, y   float64
	vx, vy float64
	age    float64
	size   float64
	clr    color.NRGBA
}

func (o *Overlay) spawnSparkle(x, y float64) {
	hue := o.rng.Float64() * 360
	o.sparkles = append(o.sparkles, sparkle{
		x:    x,
		y:    y,
		vx:   (o.rng.Float64() - 0.5) * 2 * sparkleJitter,
		vy:   -sparkleRise * (0.6 + o.rng.Float64()*0.8),
		size: sparkleSizeMin + o.rng.Float64()*(sparkleSizeMax-sparkleSizeMin),
		clr:  hsvColor(hue, 0.35, 1.0),
	})
}

func (o *Overlay) updateSparkles(dt float64) {
	n := 0
	for i := range o.sparkles {
		sp := o.sparkles[i]
		sp.age += dt
		if sp.age >= sparkleLife {
			continue
		}
		sp.x += sp.vx * dt
		sp.y += sp.vy * dt
		o.sparkles[n] = sp
		n++
	}
	o.sparkles = o.sparkles[:n]
}

func (o *Overlay) drawSparkles(dst *ebiten.Image) {
	for i := range o.sparkles {
		sp := &o.sparkles[i]
		t := 1 - sp.age/sparkleLife
		clr := sp.clr
		clr.A = uint8(t*255 + 0.5)
		vector.DrawFilledCircle(dst, float32(sp.x), float32(sp.y), float32(sp.size*t+0.4), clr, true)
	}
}

// hsvColor samples an opaque NRGBA from hue/saturation/value
func hsvColor(h, s, v float64) color.NRGBA {
	c := colorful.Hsv(h, s, v).Clamped()
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 255,
	}
}
