package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/auth"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/member"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	memberRepo member.MemberRepository
	jwtService jwt.Service
}

func NewAuthService(memberRepo member.MemberRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		memberRepo: memberRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	m, err := s.memberRepo.GetByCode(ctx, req.OrgID, req.MemberCode)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			// Do not leak whether the code exists.
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up member: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.PinHash), []byte(req.PIN)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(m.ID, m.OrgID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		MemberID:    m.ID,
		OrgID:       m.OrgID,
		FullName:    m.FullName,
	}, nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	memberID, ok := claims["member_id"].(string)
	if !ok || memberID == "" {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	orgID, ok := claims["org_id"].(string)
	if !ok || orgID == "" {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	return auth.MeResponse{MemberID: memberID, OrgID: orgID}, nil
}
