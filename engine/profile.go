package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Recorder captures a CPU profile and execution trace when the frame rate
// degrades, so a stutter can be analyzed after the fact with
// `go tool pprof` / `go tool trace`.
type Recorder struct {
	mu       sync.Mutex
	busy     bool
	last     time.Time
	dir      string
	cooldown time.Duration
	duration time.Duration
}

// NewRecorder creates a recorder writing into dir
func NewRecorder(dir string) *Recorder {
	os.MkdirAll(dir, 0755)
	return &Recorder{
		dir:      dir,
		cooldown: 30 * time.Second,
		duration: 5 * time.Second,
	}
}

// Capture starts an asynchronous profile+trace capture. It refuses while a
// capture is running or cooling down, so a persistent drop produces one
// recording per cooldown window rather than a pile.
func (r *Recorder) Capture(reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.busy {
		return fmt.Errorf("capture already in progress")
	}
	if since := time.Since(r.last); since < r.cooldown {
		return fmt.Errorf("capture on cooldown (%v since last)", since.Round(time.Second))
	}
	r.busy = true
	r.last = time.Now()

	base := fmt.Sprintf("drop-%s-%s", time.Now().Format("20060102-150405"), reason)
	go func() {
		defer func() {
			r.mu.Lock()
			r.busy = false
			r.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := r.captureCPU(base); err != nil {
				fmt.Printf("cpu profile capture failed: %v\n", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := r.captureTrace(base); err != nil {
				fmt.Printf("trace capture failed: %v\n", err)
			}
		}()
		wg.Wait()
	}()
	return nil
}

func (r *Recorder) captureCPU(base string) error {
	path := filepath.Join(r.dir, base+".cpu.prof")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(r.duration)
	pprof.StopCPUProfile()

	fmt.Printf("cpu profile saved to %s\n", path)
	return nil
}

func (r *Recorder) captureTrace(base string) error {
	path := filepath.Join(r.dir, base+".trace")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(r.duration)
	trace.Stop()

	fmt.Printf("trace saved to %s\n", path)
	return nil
}
