package member

import (
	"context"
)

type MemberRepository interface {
	// GetByCode looks a member up by their org-scoped code.
	GetByCode(ctx context.Context, orgID string, memberCode string) (Member, error)
}
