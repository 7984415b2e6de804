package playwait

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultTimeout bounds waits on a Waiter that has not been configured
// otherwise.
const DefaultTimeout = 5 * time.Second

// DefaultHistorySize is the default capacity of the wait history ring.
const DefaultHistorySize = 8

// TimeoutError is returned when the timeout branch wins the race and the
// Waiter is configured to fail on timeout.
type TimeoutError struct {
	// Label describes the condition that was being waited for.
	Label string

	// Timeout is the bound that elapsed.
	Timeout time.Duration

	// Media is a diagnostic snapshot of the media target, or empty when
	// the wait had no media target.
	Media string
}

// Error returns "timed out after <timeout> waiting for <label>", with the
// media snapshot appended when present.
func (e *TimeoutError) Error() string {
	if e.Media != "" {
		return fmt.Sprintf("timed out after %v waiting for %s (%s)", e.Timeout, e.Label, e.Media)
	}
	return fmt.Sprintf("timed out after %v waiting for %s", e.Timeout, e.Label)
}

// Waiter races playback conditions against a bounded timeout.
//
// Configuration is applied through chainable methods and read at the moment
// a wait begins; changing settings does not affect waits already in flight.
//
// Example:
//
//	waiter := playwait.New().
//	    Timeout(10 * time.Second).
//	    FailOnTimeout(true)
//
//	if err := waiter.WaitForMovement(ctx, video); err != nil {
//	    t.Fatal(err)
//	}
type Waiter struct {
	timeout       time.Duration
	failOnTimeout bool
	clock         clockz.Clock
	metrics       MetricsProvider
	history       *waitRing
}

// New creates a Waiter with a 5 second timeout that fails on timeout.
func New() *Waiter {
	return &Waiter{
		timeout:       DefaultTimeout,
		failOnTimeout: true,
		clock:         clockz.RealClock,
		metrics:       NoOpMetricsProvider{},
		history:       newWaitRing(DefaultHistorySize),
	}
}

// Timeout sets the bound for subsequent waits.
func (w *Waiter) Timeout(d time.Duration) *Waiter {
	w.timeout = d
	return w
}

// FailOnTimeout controls whether a timeout surfaces as a TimeoutError
// (true) or resolves quietly (false) on subsequent waits.
func (w *Waiter) FailOnTimeout(fail bool) *Waiter {
	w.failOnTimeout = fail
	return w
}

// Clock sets a custom clock for time operations.
// Use this with clockz.FakeClock for deterministic timeout testing.
func (w *Waiter) Clock(clock clockz.Clock) *Waiter {
	w.clock = clock
	return w
}

// Metrics installs a metrics provider that is called as waits settle.
func (w *Waiter) Metrics(p MetricsProvider) *Waiter {
	w.metrics = p
	return w
}

// HistorySize resizes the wait history ring. Size 0 disables history.
// Resizing discards previously recorded waits.
func (w *Waiter) HistorySize(size int) *Waiter {
	w.history = newWaitRing(size)
	return w
}

// History returns the recently settled waits, oldest first.
func (w *Waiter) History() []Record {
	return w.history.all()
}

// ClearHistory removes all recorded waits.
func (w *Waiter) ClearHistory() {
	w.history.clear()
}

// WaitForMovement waits until the playhead advances one second past its
// position at call time, or the media ends. The media must not already
// have ended.
func (w *Waiter) WaitForMovement(ctx context.Context, m Media) error {
	if m.Ended() {
		return fmt.Errorf("cannot wait for movement: media already ended")
	}
	return w.WaitUntilPlayheadReaches(ctx, m, m.CurrentTime()+1)
}

// WaitUntilPlayheadReaches waits until the playhead position is at or past
// target (in seconds), or the media ends.
func (w *Waiter) WaitUntilPlayheadReaches(ctx context.Context, m Media, target float64) error {
	label := fmt.Sprintf("movement from %v to %v", m.CurrentTime(), target)
	goal, cleanup := awaitCondition(m, func() bool {
		return m.CurrentTime() >= target || m.Ended()
	}, EventTimeUpdate, EventEnded)
	return w.waitUntil(ctx, label, goal, cleanup, m)
}

// WaitForEnd waits until playback reaches the end of the media. If the
// media has already ended, or its playhead is at or past its duration,
// WaitForEnd returns immediately without registering any subscription.
func (w *Waiter) WaitForEnd(ctx context.Context, m Media) error {
	if atEnd(m) {
		return nil
	}
	goal, cleanup := awaitCondition(m, func() bool {
		return atEnd(m)
	}, EventTimeUpdate, EventEnded)
	return w.waitUntil(ctx, "media end", goal, cleanup, m)
}

// WaitForEvent waits for the first occurrence of the named event on the
// target. The subscription is one-shot: it is released as soon as the
// wait settles.
func (w *Waiter) WaitForEvent(ctx context.Context, target Observable, t EventType) error {
	label := fmt.Sprintf("event %q", string(t))
	goal, cleanup := awaitEvent(target, t)

	// Attach diagnostics only when the target is a media element.
	m, _ := target.(Media)
	return w.waitUntil(ctx, label, goal, cleanup, m)
}

// WaitForOperation waits for a pending operation to complete. The
// operation reports completion by sending on or closing op; a non-nil
// error received is returned to the caller unmodified.
func (w *Waiter) WaitForOperation(ctx context.Context, op <-chan error, label string) error {
	goal, cleanup := awaitOperation(op)
	return w.waitUntil(ctx, label, goal, cleanup, nil)
}

// WaitForMovementOrFail sets the given timeout with fail-on-timeout, then
// waits for playhead movement.
func (w *Waiter) WaitForMovementOrFail(ctx context.Context, m Media, timeout time.Duration) error {
	return w.Timeout(timeout).FailOnTimeout(true).WaitForMovement(ctx, m)
}

// WaitUntilPlayheadReachesOrFail sets the given timeout with
// fail-on-timeout, then waits for the playhead to reach target.
func (w *Waiter) WaitUntilPlayheadReachesOrFail(ctx context.Context, m Media, target float64, timeout time.Duration) error {
	return w.Timeout(timeout).FailOnTimeout(true).WaitUntilPlayheadReaches(ctx, m, target)
}

// WaitForEndOrTimeout waits for end of media but treats a timeout as a
// quiet success, for tests that only need playback to have run its course.
func (w *Waiter) WaitForEndOrTimeout(ctx context.Context, m Media, timeout time.Duration) error {
	return w.Timeout(timeout).FailOnTimeout(false).WaitForEnd(ctx, m)
}

// atEnd reports whether the media satisfies the end condition.
func atEnd(m Media) bool {
	if m.Ended() {
		return true
	}
	dur := m.Duration()
	return dur > 0 && m.CurrentTime() >= dur
}

// waitUntil races the goal against the configured timeout and the context.
//
// Exactly one branch takes effect. The winning branch invokes cleanup;
// cleanup is idempotent, so the losing branch firing later (a timer that
// already has a value in flight, a late event) has no effect.
func (w *Waiter) waitUntil(ctx context.Context, label string, goal <-chan error, cleanup func(), target Media) error {
	// Snapshot settings so concurrent reconfiguration cannot change the
	// semantics of a wait already in flight.
	failOnTimeout := w.failOnTimeout
	timeout := w.timeout

	start := w.clock.Now()
	capitan.Emit(ctx, WaitStarted,
		KeyLabel.Field(label),
		KeyTimeout.Field(timeout),
	)
	w.metrics.OnWaitStart(label)

	timer := w.clock.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-goal:
		cleanup()
		elapsed := w.clock.Since(start)
		if err != nil {
			// The condition itself failed; propagate unmodified.
			capitan.Emit(ctx, WaitFailed,
				KeyLabel.Field(label),
				KeyElapsed.Field(elapsed),
				KeyError.Field(err.Error()),
			)
			w.history.push(Record{Label: label, Outcome: OutcomeFailed, Elapsed: elapsed, Err: err})
			return err
		}
		capitan.Emit(ctx, WaitGoalMet,
			KeyLabel.Field(label),
			KeyElapsed.Field(elapsed),
		)
		w.metrics.OnWaitSuccess(label, elapsed)
		w.history.push(Record{Label: label, Outcome: OutcomeGoalMet, Elapsed: elapsed})
		return nil

	case <-timer.C():
		cleanup()
		w.metrics.OnWaitTimeout(label, timeout)

		var media string
		if target != nil {
			media = describeMedia(target)
		}
		capitan.Emit(ctx, WaitTimedOut,
			KeyLabel.Field(label),
			KeyTimeout.Field(timeout),
			KeyMediaState.Field(media),
		)

		if !failOnTimeout {
			w.history.push(Record{Label: label, Outcome: OutcomeTimeoutIgnored, Elapsed: timeout})
			return nil
		}
		err := &TimeoutError{Label: label, Timeout: timeout, Media: media}
		w.history.push(Record{Label: label, Outcome: OutcomeTimeout, Elapsed: timeout, Err: err})
		return err

	case <-ctx.Done():
		cleanup()
		elapsed := w.clock.Since(start)
		capitan.Emit(ctx, WaitCanceled,
			KeyLabel.Field(label),
			KeyElapsed.Field(elapsed),
		)
		w.history.push(Record{Label: label, Outcome: OutcomeCanceled, Elapsed: elapsed, Err: ctx.Err()})
		return ctx.Err()
	}
}
