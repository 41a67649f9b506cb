package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/session"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/timeutil"
)

type SessionServiceImpl struct {
	tx    database.Transactor
	repo  session.SessionRepository
	rules session.Rules
	now   func() time.Time
}

func NewSessionService(tx database.Transactor, repo session.SessionRepository, rules session.Rules) session.SessionService {
	return &SessionServiceImpl{
		tx:    tx,
		repo:  repo,
		rules: rules,
		now:   time.Now,
	}
}

// identityFromContext pulls the member identity off the verified token.
func identityFromContext(ctx context.Context) (memberID string, orgID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	memberID, ok := claims["member_id"].(string)
	if !ok || memberID == "" {
		return "", "", fmt.Errorf("member_id claim is missing or invalid")
	}

	orgID, ok = claims["org_id"].(string)
	if !ok || orgID == "" {
		return "", "", fmt.Errorf("org_id claim is missing or invalid")
	}

	return memberID, orgID, nil
}

// ClockIn implements session.SessionService.
func (s *SessionServiceImpl) ClockIn(ctx context.Context, req session.ClockInRequest) (session.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.SessionResponse{}, err
	}

	memberID, orgID, err := identityFromContext(ctx)
	if err != nil {
		return session.SessionResponse{}, err
	}

	nowUTC := s.now().UTC()

	var created session.Session
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// Check-then-write: the partial unique index backstops this check
		// for racers that slip past it.
		_, err := s.repo.GetOpen(ctx, memberID, orgID)
		if err == nil {
			return session.ErrAlreadyClockedIn
		}
		if !errors.Is(err, session.ErrNoActiveSession) {
			return fmt.Errorf("failed to check for open session: %w", err)
		}

		created, err = s.repo.Create(ctx, session.Session{
			MemberID: memberID,
			OrgID:    orgID,
			TimeIn:   nowUTC,
			Notes:    req.Notes,
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return session.SessionResponse{}, err
	}

	return session.ToResponse(created), nil
}

// ClockOut implements session.SessionService. This is the terminal transition:
// it folds any still-open break window into break_seconds (unless the caller
// supplied an override, which wins outright) and derives the stored figures.
func (s *SessionServiceImpl) ClockOut(ctx context.Context, req session.ClockOutRequest) (session.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.SessionResponse{}, err
	}

	memberID, orgID, err := identityFromContext(ctx)
	if err != nil {
		return session.SessionResponse{}, err
	}

	nowUTC := s.now().UTC()

	var closed session.Session
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		open, err := s.repo.GetOpen(ctx, memberID, orgID)
		if err != nil {
			return err
		}

		breakSeconds := open.BreakSeconds
		if open.BreakStartedAt != nil {
			// Member forgot to end their break; credit it instead of
			// discarding it.
			breakSeconds += timeutil.SecondsBetween(*open.BreakStartedAt, nowUTC)
		}
		if req.BreakSecondsOverride != nil {
			breakSeconds = *req.BreakSecondsOverride
		}

		grossSeconds := timeutil.SecondsBetween(open.TimeIn, nowUTC)
		netSeconds := max(0, grossSeconds-breakSeconds)
		overBreakSeconds := max(0, breakSeconds-s.rules.BreakLimitSeconds)
		overtimeSeconds := max(0, netSeconds-s.rules.ExpectedDailySeconds)

		open.TimeOut = &nowUTC
		open.BreakSeconds = breakSeconds
		open.BreakStartedAt = nil
		open.NetDurationSeconds = &netSeconds
		open.OvertimeSeconds = &overtimeSeconds
		open.OverBreakSeconds = &overBreakSeconds
		if req.Notes != nil {
			open.Notes = req.Notes
		}

		closed, err = s.repo.Close(ctx, open)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return session.SessionResponse{}, err
	}

	return session.ToResponse(closed), nil
}

// GetActive implements session.SessionService.
func (s *SessionServiceImpl) GetActive(ctx context.Context) (session.StatusResponse, error) {
	memberID, orgID, err := identityFromContext(ctx)
	if err != nil {
		return session.StatusResponse{}, err
	}

	open, err := s.repo.GetOpen(ctx, memberID, orgID)
	if err != nil {
		if errors.Is(err, session.ErrNoActiveSession) {
			return session.StatusResponse{ClockedIn: false}, nil
		}
		return session.StatusResponse{}, fmt.Errorf("failed to get active session: %w", err)
	}

	resp := session.ToResponse(open)
	return session.StatusResponse{ClockedIn: true, Active: &resp}, nil
}

// ListHistory implements session.SessionService.
func (s *SessionServiceImpl) ListHistory(ctx context.Context, filter session.HistoryFilter) (session.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return session.ListSessionsResponse{}, err
	}

	memberID, orgID, err := identityFromContext(ctx)
	if err != nil {
		return session.ListSessionsResponse{}, err
	}

	sessions, total, err := s.repo.ListHistory(ctx, memberID, orgID, filter)
	if err != nil {
		return session.ListSessionsResponse{}, fmt.Errorf("failed to list history: %w", err)
	}

	responses := make([]session.SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		responses = append(responses, session.ToResponse(sess))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return session.ListSessionsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Sessions:   responses,
	}, nil
}
