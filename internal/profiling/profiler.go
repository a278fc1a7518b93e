package profiling

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrCooldown is returned when a capture was taken too recently
	ErrCooldown = errors.New("capture on cooldown")
	// ErrBusy is returned while another capture is running
	ErrBusy = errors.New("already profiling")
)

// Profiler captures CPU profiles and execution traces to a directory
type Profiler struct {
	log zerolog.Logger
	now func() time.Time

	mu              sync.Mutex
	wg              sync.WaitGroup
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
}

// NewProfiler creates a profiler writing into dir, creating it if needed
func NewProfiler(dir string, captureDuration time.Duration, log zerolog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		log:             log,
		now:             time.Now,
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		profilesDir:     dir,
		captureDuration: captureDuration,
	}, nil
}

// CaptureProfile starts a CPU profile and trace in the background.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return ErrBusy
	}
	if !p.lastCaptureTime.IsZero() && p.now().Sub(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("%w: last capture was %v ago", ErrCooldown, p.now().Sub(p.lastCaptureTime))
	}

	p.isProfiling = true
	p.lastCaptureTime = p.now()
	baseName := fmt.Sprintf("stall-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.log.Error().Err(err).Msg("capturing CPU profile")
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.log.Error().Err(err).Msg("capturing trace")
			}
		}()
		wg.Wait()

		p.logSummary(baseName)
	}()

	return nil
}

// Wait blocks until a running capture finishes
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.log.Info().Str("path", profilePath).Msg("CPU profile saved")
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.log.Info().Str("path", tracePath).Msg("trace saved")
	return nil
}

// logSummary reports where the profile went and the heap at capture time
func (p *Profiler) logSummary(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(profilePath)
	if err != nil {
		p.log.Warn().Err(err).Msg("could not analyze profile")
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info().
		Str("profile", profilePath).
		Int64("sizeBytes", info.Size()).
		Uint64("heapAllocKB", m.HeapAlloc/1024).
		Uint32("numGC", m.NumGC).
		Uint64("heapObjects", m.HeapObjects).
		Str("view", "go tool pprof -http=:8080 "+profilePath).
		Msg("profile captured")
}
