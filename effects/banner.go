package effects

import (
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Banner tuning
const (
	defaultBanner  = "n i g h t d r i f t"
	swapLife       = 3.0 // seconds before the banner reverts
	bannerFontSize = 18.0
	bannerTopInset = 14.0
)

// swapPhrases is the fixed set of celebratory replacements
var swapPhrases = []string{
	"* * s t a r s * *",
	"~ drift on ~",
	"have a nice night",
	"wheee!",
}

// swapBanner replaces the banner text for swapLife seconds. Re-triggering
// restarts the timer with a fresh phrase.
func (o *Overlay) swapBanner() {
	o.swapText = swapPhrases[o.rng.Intn(len(swapPhrases))]
	o.swapLeft = swapLife
}

func (o *Overlay) drawBanner(dst *ebiten.Image) {
	s := o.Banner()
	face := fontFace(bannerFontSize)
	w, _ := text.Measure(s, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(dst.Bounds().Dx())-w)/2, bannerTopInset)
	op.ColorScale.Scale(0.8, 0.85, 1.0, 0.9)
	text.Draw(dst, s, face, op)
}
