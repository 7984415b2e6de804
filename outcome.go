package playwait

// Outcome classifies how a wait settled.
type Outcome int32

const (
	// OutcomeGoalMet indicates the awaited condition settled before the
	// timeout.
	OutcomeGoalMet Outcome = iota

	// OutcomeTimeout indicates the timeout fired with fail-on-timeout set,
	// producing a TimeoutError.
	OutcomeTimeout

	// OutcomeTimeoutIgnored indicates the timeout fired with
	// fail-on-timeout unset, resolving quietly.
	OutcomeTimeoutIgnored

	// OutcomeFailed indicates the awaited condition itself produced an
	// error.
	OutcomeFailed

	// OutcomeCanceled indicates the context was canceled mid-wait.
	OutcomeCanceled
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeGoalMet:
		return "goal-met"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeTimeoutIgnored:
		return "timeout-ignored"
	case OutcomeFailed:
		return "failed"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}
