package effects

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Sticker tuning
const (
	stickerLife     = 6.0 // seconds before self-removal
	stickerFontSize = 30.0
	stickerBobSpeed = 3.0 // radians per second
	stickerBobSpan  = 4.0 // logical px
	stickerHitPad   = 6.0 // extra clickable margin around the glyph box
)

// stickerGlyphs is the fixed set a placed sticker is drawn from
var stickerGlyphs = []string{"*", "+", ":)", "<3", "!!"}

// sticker is a placed glyph that bobs in place until it times out or is
// clicked away
type sticker struct {
	x, y  float64
	w, h  float64
	glyph string
	age   float64
	bob   float64
	clr   [3]uint8
}

func (o *Overlay) spawnSticker(x, y float64) {
	glyph := stickerGlyphs[o.rng.Intn(len(stickerGlyphs))]
	w, h := text.Measure(glyph, fontFace(stickerFontSize), 0)
	c := hsvColor(o.rng.Float64()*360, 0.45, 1.0)
	o.stickers = append(o.stickers, sticker{
		x:     x,
		y:     y,
		w:     w,
		h:     h,
		glyph: glyph,
		bob:   o.rng.Float64() * 2 * math.Pi,
		clr:   [3]uint8{c.R, c.G, c.B},
	})
}

// hit reports whether (x, y) falls inside the sticker's padded glyph box
func (s *sticker) hit(x, y float64) bool {
	return math.Abs(x-s.x) <= s.w/2+stickerHitPad && math.Abs(y-s.y) <= s.h/2+stickerHitPad
}

func (o *Overlay) updateStickers(dt float64) {
	n := 0
	for i := range o.stickers {
		s := o.stickers[i]
		s.age += dt
		if s.age >= stickerLife {
			continue
		}
		s.bob += dt * stickerBobSpeed
		o.stickers[n] = s
		n++
	}
	o.stickers = o.stickers[:n]
}

func (o *Overlay) drawStickers(dst *ebiten.Image) {
	face := fontFace(stickerFontSize)
	for i := range o.stickers {
		s := &o.stickers[i]

		// fade out over the last second
		alpha := 1.0
		if left := stickerLife - s.age; left < 1 {
			alpha = left
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(s.x-s.w/2, s.y-s.h/2+math.Sin(s.bob)*stickerBobSpan)
		op.ColorScale.Scale(float32(s.clr[0])/255, float32(s.clr[1])/255, float32(s.clr[2])/255, float32(alpha))
		text.Draw(dst, s.glyph, face, op)
	}
}
