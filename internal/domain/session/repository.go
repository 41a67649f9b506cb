package session

import (
	"context"
	"time"
)

// SessionRepository defines data access for attendance sessions. All methods
// scope by orgID so one organization can never touch another's rows.
type SessionRepository interface {
	// Create inserts a new open session. Returns ErrAlreadyClockedIn when the
	// partial unique index on open sessions rejects a second open row.
	Create(ctx context.Context, s Session) (Session, error)

	// GetOpen retrieves the member's open session.
	// Returns ErrNoActiveSession when there is none.
	GetOpen(ctx context.Context, memberID string, orgID string) (Session, error)

	// GetByID retrieves a session by ID with org isolation.
	GetByID(ctx context.Context, id string, orgID string) (Session, error)

	// Close finalizes an open session: sets time_out, break_seconds and the
	// derived metric columns. The write is conditioned on the row still being
	// open; a lost race returns ErrNoActiveSession.
	Close(ctx context.Context, s Session) (Session, error)

	// SetBreakStart opens the break window on an open session that has none.
	SetBreakStart(ctx context.Context, id string, orgID string, startedAt time.Time) error

	// AccumulateBreak folds elapsed seconds into break_seconds and clears the
	// open break window. Returns ErrSessionNotFound when no window is open.
	AccumulateBreak(ctx context.Context, id string, orgID string, seconds int) (Session, error)

	// ListHistory returns sessions ordered by time_in descending, the open
	// one (if any) first by construction.
	ListHistory(ctx context.Context, memberID string, orgID string, filter HistoryFilter) ([]Session, int64, error)
}
