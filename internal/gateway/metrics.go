package gateway

import (
	"sync/atomic"
	"time"
)

// Metrics tracks gateway call counts and latency.
type Metrics struct {
	calls   int64
	errors  int64
	latency int64 // total nanoseconds
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Calls   int64 `json:"calls"`
	Errors  int64 `json:"errors"`
	Latency int64 `json:"latency_ns"`
}

func (m *Metrics) record(d time.Duration, err error) {
	atomic.AddInt64(&m.calls, 1)
	atomic.AddInt64(&m.latency, d.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&m.errors, 1)
	}
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Calls:   atomic.LoadInt64(&m.calls),
		Errors:  atomic.LoadInt64(&m.errors),
		Latency: atomic.LoadInt64(&m.latency),
	}
}

// Reset zeroes all counters (useful for testing)
func (m *Metrics) Reset() {
	atomic.StoreInt64(&m.calls, 0)
	atomic.StoreInt64(&m.errors, 0)
	atomic.StoreInt64(&m.latency, 0)
}

// AverageLatency returns the average latency in milliseconds
func (s MetricsSnapshot) AverageLatency() float64 {
	if s.Calls == 0 {
		return 0
	}
	return float64(s.Latency) / float64(s.Calls) / 1e6
}

// ErrorRate returns the error rate as a percentage
func (s MetricsSnapshot) ErrorRate() float64 {
	if s.Calls == 0 {
		return 0
	}
	return float64(s.Errors) / float64(s.Calls) * 100
}
