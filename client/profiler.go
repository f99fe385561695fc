package client

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/profile"
	"go.uber.org/zap"
)

// Profiler captures a CPU profile when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	log             *zap.Logger
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a new profiler instance writing under dir
func NewProfiler(dir string, cooldown, duration time.Duration, log *zap.Logger) *Profiler {
	return &Profiler{
		log:             log,
		captureCooldown: cooldown,
		captureDuration: duration,
		profilesDir:     dir,
	}
}

// CaptureProfile records a CPU profile for the capture duration in the
// background. Each capture gets its own directory named after the reason.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	timestamp := time.Now().Format("20060102-150405")
	dir := filepath.Join(p.profilesDir, fmt.Sprintf("fps-drop-%s-%s", timestamp, reason))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create profile dir %s: %w", dir, err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		stop := profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet)
		time.Sleep(p.captureDuration)
		stop.Stop()

		p.logCapture(dir)
	}()

	return nil
}

// logCapture reports where the profile went and the heap at capture time
func (p *Profiler) logCapture(dir string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info("cpu profile captured",
		zap.String("path", filepath.Join(dir, "cpu.pprof")),
		zap.Uint64("heap_alloc_kb", m.HeapAlloc/1024),
		zap.Uint32("num_gc", m.NumGC),
		zap.Uint64("heap_objects", m.HeapObjects),
	)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
