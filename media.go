package playwait

import (
	"fmt"
	"strings"
)

// Media is a playback target that waits can observe. It mirrors the surface
// a media element exposes: a playhead, duration, end/paused flags, ready
// state, playback rate, and buffered ranges.
//
// Implementations adapt the production player or a test fake; the package
// never mutates a Media, it only reads state and subscribes to events.
type Media interface {
	Observable

	// CurrentTime returns the playhead position in seconds.
	CurrentTime() float64

	// Duration returns the media duration in seconds, or 0 if unknown.
	Duration() float64

	// Ended reports whether playback has reached the end of the media.
	Ended() bool

	// Paused reports whether playback is currently paused.
	Paused() bool

	// ReadyState returns how much of the media is ready to play.
	ReadyState() ReadyState

	// PlaybackRate returns the current playback rate (1.0 is realtime).
	PlaybackRate() float64

	// Buffered returns the currently buffered time ranges.
	Buffered() TimeRanges
}

// ReadyState describes how much media data a target has available.
// Values follow the conventional media element readiness ladder.
type ReadyState int

const (
	// ReadyNothing indicates no media data is available.
	ReadyNothing ReadyState = iota

	// ReadyMetadata indicates duration and dimensions are known.
	ReadyMetadata

	// ReadyCurrentData indicates data for the current position is available.
	ReadyCurrentData

	// ReadyFutureData indicates enough data to advance at least one frame.
	ReadyFutureData

	// ReadyEnoughData indicates playback can proceed without stalling.
	ReadyEnoughData
)

// String returns the string representation of the ready state.
func (s ReadyState) String() string {
	switch s {
	case ReadyNothing:
		return "nothing"
	case ReadyMetadata:
		return "metadata"
	case ReadyCurrentData:
		return "current-data"
	case ReadyFutureData:
		return "future-data"
	case ReadyEnoughData:
		return "enough-data"
	default:
		return "unknown"
	}
}

// TimeRange is a single buffered interval, in seconds.
type TimeRange struct {
	Start float64
	End   float64
}

// TimeRanges is an ordered set of buffered intervals.
type TimeRanges []TimeRange

// String summarizes the ranges as "[0.0-4.5, 10.0-12.3]".
// An empty set renders as "[]".
func (r TimeRanges) String() string {
	parts := make([]string, len(r))
	for i, tr := range r {
		parts[i] = fmt.Sprintf("%.1f-%.1f", tr.Start, tr.End)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Total returns the summed length of all ranges in seconds.
func (r TimeRanges) Total() float64 {
	var total float64
	for _, tr := range r {
		total += tr.End - tr.Start
	}
	return total
}

// describeMedia renders a diagnostic snapshot of a media target for
// timeout errors.
func describeMedia(m Media) string {
	return fmt.Sprintf(
		"currentTime=%.3f duration=%.3f ended=%t paused=%t readyState=%s rate=%g buffered=%s",
		m.CurrentTime(),
		m.Duration(),
		m.Ended(),
		m.Paused(),
		m.ReadyState(),
		m.PlaybackRate(),
		m.Buffered(),
	)
}
