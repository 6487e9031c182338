package engine

// pulseInterval is how often the frame-rate estimate refreshes, in seconds
const pulseInterval = 0.5

// PulseMeter keeps a rolling frames-per-second estimate for the window title
// and for detecting sustained frame-rate drops
type PulseMeter struct {
	frames  int
	elapsed float64
	fps     float64
}

// Tick accounts one frame of dt seconds and returns true when the estimate
// was just refreshed
func (m *PulseMeter) Tick(dt float64) bool {
	m.frames++
	m.elapsed += dt
	if m.elapsed < pulseInterval {
		return false
	}
	if m.elapsed > 0 {
		m.fps = float64(m.frames) / m.elapsed
	}
	m.frames = 0
	m.elapsed = 0
	return true
}

// FPS returns the most recent estimate; zero until the first refresh
func (m *PulseMeter) FPS() float64 {
	return m.fps
}
