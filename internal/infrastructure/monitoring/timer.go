package monitoring

import "time"

// Timer measures a flush duration
type Timer struct {
	start   time.Time
	metrics *Metrics
}

// NewTimer starts a flush timer
func NewTimer(metrics *Metrics) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
	}
}

// Stop records the elapsed time and returns it
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.metrics.ObserveFlushDuration(elapsed)
	return elapsed
}
