package profiling

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Watchdog watches frame deltas and reacts to stalls: a warning every time,
// a profile capture when a profiler is attached.
type Watchdog struct {
	threshold time.Duration
	warmup    time.Duration
	profiler  *Profiler
	log       zerolog.Logger

	stalls int
}

// NewWatchdog creates a watchdog. profiler may be nil. Stalls during the
// first warmup of run time are ignored.
func NewWatchdog(threshold, warmup time.Duration, profiler *Profiler, log zerolog.Logger) *Watchdog {
	return &Watchdog{
		threshold: threshold,
		warmup:    warmup,
		profiler:  profiler,
		log:       log,
	}
}

// Observe checks one frame. now is the time since start, delta the frame
// length, and entities the live entity count for context. It reports
// whether the frame was a stall.
func (w *Watchdog) Observe(now, delta time.Duration, entities int) bool {
	if w.threshold <= 0 || delta <= w.threshold || now < w.warmup {
		return false
	}
	w.stalls++
	w.log.Warn().
		Dur("delta", delta).
		Dur("threshold", w.threshold).
		Int("entities", entities).
		Msg("frame stall")

	if w.profiler != nil {
		reason := fmt.Sprintf("%dms-entities%d", delta.Milliseconds(), entities)
		if err := w.profiler.CaptureProfile(reason); err != nil {
			w.log.Debug().Err(err).Msg("profile capture skipped")
		}
	}
	return true
}

// Stalls returns how many stalls were observed
func (w *Watchdog) Stalls() int {
	return w.stalls
}
