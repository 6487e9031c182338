package effects

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Burst tuning
const (
	burstParticleCount = 26
	burstSpeedMin      = 60.0  // logical px/s
	burstSpeedMax      = 220.0
	burstLifeMin       = 0.5 // seconds
	burstLifeMax       = 1.1
	burstSizeMin       = 1.5
	burstSizeMax       = 3.5
	burstGravity       = 240.0 // logical px/s^2
)

// burstParticle is one mote of a celebratory burst; it flies out radially,
// falls under gravity and fades with age
type burstParticle struct {
	x, y     float64
	vx, vy   float64
	age      float64
	lifetime float64
	size     float64
	clr      color.NRGBA
}

func (o *Overlay) spawnBurst(x, y float64) {
	for i := 0; i < burstParticleCount; i++ {
		angle := o.rng.Float64() * 2 * math.Pi
		speed := burstSpeedMin + o.rng.Float64()*(burstSpeedMax-burstSpeedMin)
		o.particles = append(o.particles, burstParticle{
			x:        x,
			y:        y,
			vx:       math.Cos(angle) * speed,
			vy:       math.Sin(angle) * speed,
			lifetime: burstLifeMin + o.rng.Float64()*(burstLifeMax-burstLifeMin),
			size:     burstSizeMin + o.rng.Float64()*(burstSizeMax-burstSizeMin),
			clr:      hsvColor(o.rng.Float64()*360, 0.65, 1.0),
		})
	}
}

func (o *Overlay) updateBurst(dt float64) {
	n := 0
	for i := range o.particles {
		p := o.particles[i]
		p.age += dt
		if p.age >= p.lifetime {
			continue
		}
		p.vy += burstGravity * dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		o.particles[n] = p
		n++
	}
	o.particles = o.particles[:n]
}

func (o *Overlay) drawBurst(dst *ebiten.Image) {
	for i := range o.particles {
		p := &o.particles[i]
		t := 1 - p.age/p.lifetime
		clr := p.clr
		clr.A = uint8(t*255 + 0.5)
		vector.DrawFilledCircle(dst, float32(p.x), float32(p.y), float32(p.size), clr, true)
	}
}
