package playwait

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

// countingMetrics records callback invocations.
type countingMetrics struct {
	starts    atomic.Int32
	successes atomic.Int32
	timeouts  atomic.Int32
}

func (m *countingMetrics) OnWaitStart(_ string)                    { m.starts.Add(1) }
func (m *countingMetrics) OnWaitSuccess(_ string, _ time.Duration) { m.successes.Add(1) }
func (m *countingMetrics) OnWaitTimeout(_ string, _ time.Duration) { m.timeouts.Add(1) }

func TestMetrics_SuccessPath(t *testing.T) {
	metrics := &countingMetrics{}
	w := New().Metrics(metrics)

	op := make(chan error)
	close(op)
	if err := w.WaitForOperation(context.Background(), op, "instant"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := metrics.starts.Load(); n != 1 {
		t.Errorf("expected 1 start, got %d", n)
	}
	if n := metrics.successes.Load(); n != 1 {
		t.Errorf("expected 1 success, got %d", n)
	}
	if n := metrics.timeouts.Load(); n != 0 {
		t.Errorf("expected 0 timeouts, got %d", n)
	}
}

func TestMetrics_TimeoutPath(t *testing.T) {
	clock := clockz.NewFakeClock()
	metrics := &countingMetrics{}
	w := New().Clock(clock).Timeout(time.Second).FailOnTimeout(false).Metrics(metrics)

	op := make(chan error) // never settles
	errCh := make(chan error, 1)
	go func() {
		errCh <- w.WaitForOperation(context.Background(), op, "stuck")
	}()

	time.Sleep(10 * time.Millisecond)
	clock.Advance(1100 * time.Millisecond)
	clock.BlockUntilReady()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("wait did not settle after timeout")
	}

	if n := metrics.timeouts.Load(); n != 1 {
		t.Errorf("expected 1 timeout, got %d", n)
	}
	if n := metrics.successes.Load(); n != 0 {
		t.Errorf("expected 0 successes, got %d", n)
	}
}

// onlyTimeouts overrides a single callback via the embedded no-op provider.
type onlyTimeouts struct {
	NoOpMetricsProvider
	timeouts atomic.Int32
}

func (m *onlyTimeouts) OnWaitTimeout(_ string, _ time.Duration) { m.timeouts.Add(1) }

func TestMetrics_NoOpEmbedding(t *testing.T) {
	metrics := &onlyTimeouts{}
	w := New().Metrics(metrics)

	op := make(chan error)
	close(op)
	if err := w.WaitForOperation(context.Background(), op, "instant"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := metrics.timeouts.Load(); n != 0 {
		t.Errorf("expected 0 timeouts, got %d", n)
	}
}
