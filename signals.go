package playwait

import "github.com/zoobzio/capitan"

// Wait lifecycle signals.
var (
	// WaitStarted is emitted when a wait begins racing its timeout.
	WaitStarted = capitan.NewSignal(
		"playwait.wait.started",
		"Wait started",
	)

	// WaitGoalMet is emitted when the awaited condition settles first.
	WaitGoalMet = capitan.NewSignal(
		"playwait.wait.goal.met",
		"Wait condition met before timeout",
	)

	// WaitTimedOut is emitted when the timeout settles first.
	WaitTimedOut = capitan.NewSignal(
		"playwait.wait.timed.out",
		"Wait timed out before condition was met",
	)

	// WaitFailed is emitted when the awaited condition itself fails.
	WaitFailed = capitan.NewSignal(
		"playwait.wait.failed",
		"Wait condition produced an error",
	)

	// WaitCanceled is emitted when the context is canceled mid-wait.
	WaitCanceled = capitan.NewSignal(
		"playwait.wait.canceled",
		"Wait canceled by context",
	)
)
