package breaks

import (
	"context"
)

// BreakService tracks the at-most-one break window per calendar day and the
// accumulated break seconds on the open session.
type BreakService interface {
	// StartBreak opens the break window on the member's active session and
	// consumes the daily quota.
	StartBreak(ctx context.Context) (StartBreakResponse, error)

	// EndBreak closes the window, folds its elapsed seconds into the
	// session's accumulator and returns the elapsed figure.
	EndBreak(ctx context.Context) (EndBreakResponse, error)
}

// IsOverLimit reports whether an accumulated break total exceeds the daily
// allowance.
func IsOverLimit(breakSeconds int, limitSeconds int) bool {
	return breakSeconds > limitSeconds
}
