package playwait

import "github.com/zoobzio/capitan"

// Field keys for wait events.
var (
	// KeyLabel is the human-readable description of the awaited condition.
	KeyLabel = capitan.NewStringKey("label")

	// KeyTimeout is the configured timeout for the wait.
	KeyTimeout = capitan.NewDurationKey("timeout")

	// KeyElapsed is the time the wait took to settle.
	KeyElapsed = capitan.NewDurationKey("elapsed")

	// KeyError is the error message when a wait fails.
	KeyError = capitan.NewStringKey("error")

	// KeyMediaState is the diagnostic snapshot of the media target.
	KeyMediaState = capitan.NewStringKey("media_state")
)
