package playwait

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks as waits settle.
type MetricsProvider interface {
	// OnWaitStart is called when a wait begins racing its timeout.
	OnWaitStart(label string)

	// OnWaitSuccess is called when the awaited condition settles first.
	// Elapsed is the time from wait start to settlement.
	OnWaitSuccess(label string, elapsed time.Duration)

	// OnWaitTimeout is called when the timeout settles first, whether or
	// not the wait was configured to fail on timeout.
	OnWaitTimeout(label string, timeout time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnWaitStart(_ string)                   {}
func (NoOpMetricsProvider) OnWaitSuccess(_ string, _ time.Duration) {}
func (NoOpMetricsProvider) OnWaitTimeout(_ string, _ time.Duration) {}
