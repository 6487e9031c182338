package engine

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Rendering constants
const (
	// glowRadius is the fixed soft-glow spread around each star core in
	// logical pixels
	glowRadius = 8.0

	// glowAlphaScale dims the halo relative to the star's frame alpha
	glowAlphaScale = 0.22

	// vignetteInnerFactor and the outer max(w,h) radius define the radial
	// gradient: transparent at inner, semi-opaque dark at outer
	vignetteInnerFactor = 0.1

	// vignetteDownscale renders the gradient at reduced resolution; it is a
	// smooth field, so linear upscaling is invisible
	vignetteDownscale = 4
)

// Vignette and glow colors
var (
	colorVignetteEdge = color.NRGBA{R: 2, G: 3, B: 12, A: 190}
	colorGlow         = color.NRGBA{R: 140, G: 180, B: 255, A: 255}
)

// Compositor draws one full frame: background clear, vignette backdrop, then
// every star in insertion order. Overlapping stars alpha-blend; no depth
// sorting is done.
type Compositor struct {
	background color.NRGBA

	// cached vignette, rebuilt when the logical size changes
	vignette  *ebiten.Image
	vignetteW int
	vignetteH int
}

// NewCompositor creates a compositor with the given clear color
func NewCompositor(background color.NRGBA) *Compositor {
	return &Compositor{background: background}
}

// Render draws the frame into dst in logical coordinates
func (c *Compositor) Render(dst *ebiten.Image, surface *Surface, stars []Star) {
	dst.Fill(c.background)
	c.drawVignette(dst, surface)

	for i := range stars {
		s := &stars[i]
		a := TwinkleAlpha(s.Phase, s.Twinkle)

		// Soft glow halo first, then the core on top. The halo is a
		// per-star draw, so it cannot bleed into anything else.
		glow := colorGlow
		glow.A = uint8(a*glowAlphaScale*255 + 0.5)
		vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), float32(s.Radius+glowRadius), glow, true)

		tint := s.Tint
		tint.A = uint8(a*255 + 0.5)
		vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), float32(s.Radius), tint, true)
	}
}

// drawVignette paints the cached radial gradient, rebuilding it if the
// surface size changed since the last frame
func (c *Compositor) drawVignette(dst *ebiten.Image, surface *Surface) {
	w := int(surface.LogicalWidth)
	h := int(surface.LogicalHeight)
	if w <= 0 || h <= 0 {
		return
	}
	if c.vignette == nil || c.vignetteW != w || c.vignetteH != h {
		c.vignette = buildVignette(w, h)
		c.vignetteW = w
		c.vignetteH = h
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(vignetteDownscale, vignetteDownscale)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(c.vignette, op)
}

// buildVignette renders the radial gradient into a downscaled image. Alpha
// ramps linearly from 0 at the inner radius to the edge color's alpha at the
// outer radius, matching a two-stop radial gradient fill.
func buildVignette(w, h int) *ebiten.Image {
	sw := (w + vignetteDownscale - 1) / vignetteDownscale
	sh := (h + vignetteDownscale - 1) / vignetteDownscale
	img := image.NewNRGBA(image.Rect(0, 0, sw, sh))

	cx := float64(w) * 0.5
	cy := float64(h) * 0.5
	inner := vignetteInnerFactor * math.Min(float64(w), float64(h))
	outer := math.Max(float64(w), float64(h))
	span := outer - inner

	for py := 0; py < sh; py++ {
		for px := 0; px < sw; px++ {
			x := (float64(px) + 0.5) * vignetteDownscale
			y := (float64(py) + 0.5) * vignetteDownscale
			d := math.Hypot(x-cx, y-cy)
			t := (d - inner) / span
			if t < 0 {
				t = 0
			}
			if t > 1 {
				t = 1
			}
			img.SetNRGBA(px, py, color.NRGBA{
				R: colorVignetteEdge.R,
				G: colorVignetteEdge.G,
				B: colorVignetteEdge.B,
				A: uint8(t*float64(colorVignetteEdge.A) + 0.5),
			})
		}
	}
	return ebiten.NewImageFromImage(img)
}
