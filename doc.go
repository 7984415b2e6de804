/*
Package playwait provides asynchronous wait helpers for media-playback tests,
racing a playback condition against a bounded timeout.

playwait is designed to be embedded within test suites that drive a media
player, not run as a standalone service. A Waiter composes an event
subscription (time updates, ended, arbitrary events) with a clock timer and
resolves with whichever settles first.

# Basic Usage

Create a waiter and configure it with chainable methods:

	waiter := playwait.New().
	    Timeout(10 * time.Second).    // Bound every wait to 10s
	    FailOnTimeout(true)           // Timeout is a test failure

Wait for playback conditions:

	// Fail the test if the playhead does not advance within the timeout.
	if err := waiter.WaitForMovement(ctx, video); err != nil {
	    t.Fatal(err)
	}

	// Wait for a specific timestamp.
	err := waiter.WaitUntilPlayheadReaches(ctx, video, 30.0)

	// Wait for end of media, tolerating a timeout.
	err := waiter.WaitForEndOrTimeout(ctx, video, 5*time.Second)

# Timeout Semantics

Exactly one of the two branches takes effect per wait:

	condition met            -> success, regardless of settings
	timeout, FailOnTimeout   -> *TimeoutError naming the awaited condition
	timeout, !FailOnTimeout  -> success (quiet resolution)

Timeout errors against a media target carry a diagnostic snapshot of the
element (position, duration, ended/paused flags, ready state, buffered
ranges) to aid debugging.

# Events and Targets

Targets expose subscriptions through the Observable interface. Dispatcher is
a ready-made Observable for test fakes and adapters:

	d := playwait.NewDispatcher()
	d.Dispatch(playwait.Event{Type: playwait.EventTimeUpdate})

FileTarget adapts filesystem activity (fsnotify) into the same event model,
so a test can wait for a segment or manifest file to be written:

	target := playwait.NewFileTarget(dir)
	target.Start(ctx)
	defer target.Close()
	err := waiter.WaitForEvent(ctx, target, playwait.EventFileWritten)

# Deterministic Testing

All time operations go through clockz.Clock. Install a fake clock to drive
timeouts without real sleeps:

	clock := clockz.NewFakeClock()
	waiter := playwait.New().Clock(clock).Timeout(time.Second)

The package is built on top of:
  - capitan: For lifecycle signals emitted around each wait
  - clockz: For clock and timer abstraction
  - fsnotify: For filesystem event targets
*/
package playwait
