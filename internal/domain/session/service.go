package session

import (
	"context"
)

// SessionService is the session ledger: it owns the one-open-session
// invariant and the derived duration figures stored at close.
type SessionService interface {
	// ClockIn opens a new session for the authenticated member.
	ClockIn(ctx context.Context, req ClockInRequest) (SessionResponse, error)

	// ClockOut closes the open session, folding in any open break window and
	// computing net duration, overtime and over-break.
	ClockOut(ctx context.Context, req ClockOutRequest) (SessionResponse, error)

	// GetActive returns the open session, or a clocked-out status.
	GetActive(ctx context.Context) (StatusResponse, error)

	// ListHistory returns the member's sessions ordered by time_in descending.
	ListHistory(ctx context.Context, filter HistoryFilter) (ListSessionsResponse, error)
}
