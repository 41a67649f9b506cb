package breaks

import (
	"context"
	"time"
)

// QuotaRepository persists the day-scoped break marker, keyed by
// (member, org, day) where day is the owning session's time_in date.
type QuotaRepository interface {
	// IsUsed reports whether the member's break quota for day is consumed.
	IsUsed(ctx context.Context, memberID string, orgID string, day string) (bool, error)

	// MarkUsed consumes the quota for day. Returns ErrBreakAlreadyUsedToday
	// when another writer consumed it first.
	MarkUsed(ctx context.Context, memberID string, orgID string, day string, at time.Time) error
}
