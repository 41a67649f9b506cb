package auth

import (
	"context"
)

type AuthService interface {
	// Login verifies an org-scoped member code + PIN and issues the access
	// token the timeclock endpoints trust.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Me echoes the authenticated identity back from the token claims.
	Me(ctx context.Context) (MeResponse, error)
}
