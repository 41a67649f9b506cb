package member

import (
	"time"
)

// Member is the engine's identity record: just enough to issue the claims
// token. Profiles, roles and org policy live with the host system.
type Member struct {
	ID         string
	OrgID      string
	MemberCode string
	FullName   string
	PinHash    string
	CreatedAt  time.Time
}
