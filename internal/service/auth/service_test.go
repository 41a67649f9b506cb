package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/auth"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/member"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeMemberRepo struct {
	members map[string]member.Member // keyed by orgID|memberCode
}

func (r *fakeMemberRepo) GetByCode(_ context.Context, orgID string, memberCode string) (member.Member, error) {
	m, ok := r.members[orgID+"|"+memberCode]
	if !ok {
		return member.Member{}, member.ErrMemberNotFound
	}
	return m, nil
}

func newTestAuthService(t *testing.T, pin string) (auth.AuthService, member.Member) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)

	m := member.Member{
		ID:         "member-1",
		OrgID:      "org-1",
		MemberCode: "1234-5678",
		FullName:   "Ada Morris",
		PinHash:    string(hash),
	}
	repo := &fakeMemberRepo{members: map[string]member.Member{
		"org-1|1234-5678": m,
	}}

	return NewAuthService(repo, jwt.NewJWTService("test-secret-key", "15m")), m
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	svc, m := newTestAuthService(t, "4321")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		OrgID:      "org-1",
		MemberCode: "1234-5678",
		PIN:        "4321",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, m.ID, resp.MemberID)
	assert.Equal(t, m.OrgID, resp.OrgID)
	assert.Equal(t, "Ada Morris", resp.FullName)
}

func TestAuthService_Login_WrongPIN(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAuthService(t, "4321")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		OrgID:      "org-1",
		MemberCode: "1234-5678",
		PIN:        "9999",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownMember(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAuthService(t, "4321")

	// Unknown code yields the same error as a wrong PIN.
	_, err := svc.Login(context.Background(), auth.LoginRequest{
		OrgID:      "org-1",
		MemberCode: "0000-0000",
		PIN:        "4321",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAuthService(t, "4321")

	tests := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"missing org_id", auth.LoginRequest{MemberCode: "1234-5678", PIN: "4321"}},
		{"malformed member_code", auth.LoginRequest{OrgID: "org-1", MemberCode: "abcd", PIN: "4321"}},
		{"short pin", auth.LoginRequest{OrgID: "org-1", MemberCode: "1234-5678", PIN: "12"}},
		{"non numeric pin", auth.LoginRequest{OrgID: "org-1", MemberCode: "1234-5678", PIN: "pass"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	t.Parallel()
	svc, _ := newTestAuthService(t, "4321")

	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"member_id": "member-1",
		"org_id":    "org-1",
		"type":      "access",
	})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	resp, err := svc.Me(ctx)

	require.NoError(t, err)
	assert.Equal(t, "member-1", resp.MemberID)
	assert.Equal(t, "org-1", resp.OrgID)
}
