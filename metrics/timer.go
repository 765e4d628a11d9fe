package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Timer measures a single script run. The first recording freezes the elapsed time.
type Timer struct {
	start   time.Time
	elapsed time.Duration
}

// StartNewTimer returns a running Timer.
func StartNewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started, or the frozen duration once recorded.
func (timer *Timer) Elapsed() time.Duration {
	if timer.elapsed != 0 {
		return timer.elapsed
	}
	return time.Since(timer.start)
}

// stopAndRecord freezes the timer and observes its duration in milliseconds.
func (timer *Timer) stopAndRecord(observer prometheus.Observer) {
	if timer.elapsed == 0 {
		timer.elapsed = time.Since(timer.start)
	}
	observer.Observe(float64(timer.elapsed) / float64(time.Millisecond))
}
