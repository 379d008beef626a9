package batch

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze throughput
// calculations via SetClock. Production code uses the real clock.
var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock swaps the time source used for progress reporting. Pass nil to
// reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// LogProgress returns a Progress that logs completion and throughput. slog
// handlers are safe for concurrent use, so the callback is too.
func LogProgress(logger *slog.Logger) Progress {
	start := clock.Now()
	return func(done, total int) {
		elapsed := clock.Since(start)
		rate := 0.0
		if secs := elapsed.Seconds(); secs > 0 {
			rate = float64(done) / secs
		}
		logger.Info("batch progress",
			"done", done,
			"total", total,
			"targets_per_sec", int(rate),
		)
	}
}
