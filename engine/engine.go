// Package engine implements the starfield animation core: surface geometry,
// the star pool, the frame-timed simulation step and the compositor, driven
// by ebiten's frame loop.
package engine

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"nightdrift/effects"
)

const (
	// dropFPSThreshold triggers a profile capture when the frame rate
	// stays below it
	dropFPSThreshold = 45.0

	// dropWarmup ignores frame-rate drops right after startup while
	// caches warm up
	dropWarmup = 3 * time.Second
)

// Engine owns all animation state and implements ebiten.Game. Ebiten calls
// Layout, Update and Draw from a single goroutine, so a resize reported via
// Layout is always consumed at the start of the next tick and never
// interleaves with a simulation step.
type Engine struct {
	cfg      Config
	surface  Surface
	stars    []Star
	clock    FrameClock
	comp     *Compositor
	overlay  *effects.Overlay
	pulse    PulseMeter
	recorder *Recorder

	outsideW  int
	outsideH  int
	lastScale float64

	lastCursorX int
	lastCursorY int

	started time.Time
	stopped atomic.Bool
}

// New validates the configuration, builds the star pool and returns a ready
// engine. Configuration errors are rejected here, before the loop starts.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		cfg:         cfg,
		comp:        NewCompositor(cfg.Background),
		recorder:    NewRecorder("profiles"),
		outsideW:    cfg.ScreenWidth,
		outsideH:    cfg.ScreenHeight,
		lastScale:   1,
		lastCursorX: -1,
		lastCursorY: -1,
		started:     time.Now(),
	}
	e.surface.Configure(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight), 1)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	stars, err := BuildStars(cfg.Layers, &e.surface, rng)
	if err != nil {
		return nil, err
	}
	e.stars = stars

	overlay, err := effects.NewOverlay(rng)
	if err != nil {
		return nil, err
	}
	e.overlay = overlay

	return e, nil
}

// Stop requests a clean shutdown; the next Update returns
// ebiten.Termination and RunGame exits without error. Safe to call from any
// goroutine and idempotent.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}

// Update advances the animation by one tick
func (e *Engine) Update() error {
	if e.stopped.Load() {
		return ebiten.Termination
	}

	// Consume any resize first so the whole tick sees one surface state
	scale := ebiten.Monitor().DeviceScaleFactor()
	lw, lh := float64(e.outsideW), float64(e.outsideH)
	if lw != e.surface.LogicalWidth || lh != e.surface.LogicalHeight || scale != e.lastScale {
		e.lastScale = scale
		e.surface.Configure(lw, lh, scale)
	}

	dt := e.clock.Tick(time.Now())
	Advance(e.stars, dt, &e.surface)

	e.handleInput()
	e.overlay.Update(dt)

	if e.pulse.Tick(dt) {
		fps := e.pulse.FPS()
		ebiten.SetWindowTitle(fmt.Sprintf("nightdrift  %.0f fps", fps))
		if fps < dropFPSThreshold && time.Since(e.started) > dropWarmup {
			if err := e.recorder.Capture(fmt.Sprintf("fps%.0f", fps)); err == nil {
				fmt.Printf("frame rate drop (%.0f fps), capturing profile\n", fps)
			}
		}
	}
	return nil
}

// handleInput maps pointer and keyboard events onto the overlay: movement
// leaves a sparkle trail, left click removes a sticker under the cursor (or
// sparkles), space or right click triggers a random effect at the surface
// midpoint.
func (e *Engine) handleInput() {
	cx, cy := ebiten.CursorPosition()
	inside := cx >= 0 && cy >= 0 && cx < e.outsideW && cy < e.outsideH

	if inside && (cx != e.lastCursorX || cy != e.lastCursorY) {
		e.overlay.PointerSparkle(float64(cx), float64(cy))
		e.lastCursorX, e.lastCursorY = cx, cy
	}

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !e.overlay.ClickAt(float64(cx), float64(cy)) {
			e.overlay.PointerSparkle(float64(cx), float64(cy))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		e.overlay.TriggerRandom(e.surface.LogicalWidth/2, e.surface.LogicalHeight/2)
	}
}

// Draw composites the frame: starfield first, transient overlays on top
func (e *Engine) Draw(screen *ebiten.Image) {
	e.comp.Render(screen, &e.surface, e.stars)
	e.overlay.Draw(screen)
}

// Layout reports the logical screen size. The outside size is the window's
// client area in device-independent pixels; using it directly keeps all
// drawing in logical coordinates while ebiten sizes the backing store.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		e.outsideW, e.outsideH = outsideWidth, outsideHeight
	}
	return e.outsideW, e.outsideH
}
