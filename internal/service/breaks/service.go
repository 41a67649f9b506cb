package breaks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/breaks"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/session"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/timeutil"
)

type BreakServiceImpl struct {
	tx          database.Transactor
	sessionRepo session.SessionRepository
	quotaRepo   breaks.QuotaRepository
	rules       session.Rules
	now         func() time.Time
}

func NewBreakService(tx database.Transactor, sessionRepo session.SessionRepository, quotaRepo breaks.QuotaRepository, rules session.Rules) breaks.BreakService {
	return &BreakServiceImpl{
		tx:          tx,
		sessionRepo: sessionRepo,
		quotaRepo:   quotaRepo,
		rules:       rules,
		now:         time.Now,
	}
}

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

// StartBreak implements breaks.BreakService. The quota is consumed at break
// start, not at break completion, so a break cannot be undone by resuming
// quickly and starting another.
func (s *BreakServiceImpl) StartBreak(ctx context.Context) (breaks.StartBreakResponse, error) {
	memberID, orgID, err := identityFromContext(ctx)
	if err != nil {
		return breaks.StartBreakResponse{}, err
	}

	nowUTC := s.now().UTC()

	var resp breaks.StartBreakResponse
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		open, err := s.sessionRepo.GetOpen(ctx, memberID, orgID)
		if err != nil {
			return err
		}

		if open.OnBreak() {
			return breaks.ErrBreakAlreadyOpen
		}

		// Quota is scoped to the session's time_in date; sessions are not
		// split at midnight, so a late-night break stays attributed to the
		// day the session started.
		day := timeutil.DayKey(open.TimeIn)

		used, err := s.quotaRepo.IsUsed(ctx, memberID, orgID, day)
		if err != nil {
			return fmt.Errorf("failed to check break quota: %w", err)
		}
		if used {
			return breaks.ErrBreakAlreadyUsedToday
		}

		if err := s.quotaRepo.MarkUsed(ctx, memberID, orgID, day, nowUTC); err != nil {
			return err
		}

		if err := s.sessionRepo.SetBreakStart(ctx, open.ID, orgID, nowUTC); err != nil {
			return err
		}

		resp = breaks.StartBreakResponse{
			SessionID:    open.ID,
			StartedAt:    nowUTC.Format("2006-01-02 15:04:05"),
			BreakUsedDay: day,
			BreakSeconds: open.BreakSeconds,
			LimitSeconds: s.rules.BreakLimitSeconds,
			AlreadyOver:  breaks.IsOverLimit(open.BreakSeconds, s.rules.BreakLimitSeconds),
		}
		return nil
	})
	if err != nil {
		return breaks.StartBreakResponse{}, err
	}

	return resp, nil
}

// EndBreak implements breaks.BreakService.
func (s *BreakServiceImpl) EndBreak(ctx context.Context) (breaks.EndBreakResponse, error) {
	memberID, orgID, err := identityFromContext(ctx)
	if err != nil {
		return breaks.EndBreakResponse{}, err
	}

	nowUTC := s.now().UTC()

	var resp breaks.EndBreakResponse
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		open, err := s.sessionRepo.GetOpen(ctx, memberID, orgID)
		if err != nil {
			if errors.Is(err, session.ErrNoActiveSession) {
				// No session means no window exists by construction.
				return breaks.ErrNoBreakOpen
			}
			return err
		}

		if !open.OnBreak() {
			return breaks.ErrNoBreakOpen
		}

		elapsed := timeutil.SecondsBetween(*open.BreakStartedAt, nowUTC)

		updated, err := s.sessionRepo.AccumulateBreak(ctx, open.ID, orgID, elapsed)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				return breaks.ErrNoBreakOpen
			}
			return err
		}

		resp = breaks.EndBreakResponse{
			SessionID:         updated.ID,
			BreakSeconds:      elapsed,
			TotalBreakSeconds: updated.BreakSeconds,
			OverLimit:         breaks.IsOverLimit(updated.BreakSeconds, s.rules.BreakLimitSeconds),
		}
		return nil
	})
	if err != nil {
		return breaks.EndBreakResponse{}, err
	}

	return resp, nil
}
