package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/session"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/database"
)

const sessionColumns = `
	id, member_id, org_id, time_in, time_out,
	break_seconds, break_started_at,
	net_duration_seconds, overtime_seconds, over_break_seconds,
	notes, created_at, updated_at`

// Name of the partial unique index enforcing one open session per member.
const openSessionIndex = "uq_attendance_sessions_open"

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) session.SessionRepository {
	return &sessionRepository{db: db}
}

func scanSession(row pgx.Row) (session.Session, error) {
	var s session.Session
	err := row.Scan(
		&s.ID, &s.MemberID, &s.OrgID, &s.TimeIn, &s.TimeOut,
		&s.BreakSeconds, &s.BreakStartedAt,
		&s.NetDurationSeconds, &s.OvertimeSeconds, &s.OverBreakSeconds,
		&s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements session.SessionRepository.
func (r *sessionRepository) Create(ctx context.Context, s session.Session) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (member_id, org_id, time_in, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING` + sessionColumns + `
	`

	created, err := scanSession(q.QueryRow(ctx, query, s.MemberID, s.OrgID, s.TimeIn, s.Notes))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == openSessionIndex {
			return session.Session{}, session.ErrAlreadyClockedIn
		}
		return session.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return created, nil
}

// GetOpen implements session.SessionRepository.
func (r *sessionRepository) GetOpen(ctx context.Context, memberID string, orgID string) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + sessionColumns + `
		FROM attendance_sessions
		WHERE member_id = $1
		  AND org_id = $2
		  AND time_out IS NULL
		LIMIT 1
	`

	s, err := scanSession(q.QueryRow(ctx, query, memberID, orgID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.ErrNoActiveSession
		}
		return session.Session{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return s, nil
}

// GetByID implements session.SessionRepository.
func (r *sessionRepository) GetByID(ctx context.Context, id string, orgID string) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + sessionColumns + `
		FROM attendance_sessions
		WHERE id = $1 AND org_id = $2
	`

	s, err := scanSession(q.QueryRow(ctx, query, id, orgID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.ErrSessionNotFound
		}
		return session.Session{}, fmt.Errorf("failed to get session by ID: %w", err)
	}

	return s, nil
}

// Close implements session.SessionRepository. The WHERE clause keeps the
// transition atomic: only a still-open row can be closed, so a racing second
// clock-out loses and surfaces as ErrNoActiveSession.
func (r *sessionRepository) Close(ctx context.Context, s session.Session) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET time_out = $1,
		    break_seconds = $2,
		    break_started_at = NULL,
		    net_duration_seconds = $3,
		    overtime_seconds = $4,
		    over_break_seconds = $5,
		    notes = COALESCE($6, notes),
		    updated_at = NOW()
		WHERE id = $7
		  AND org_id = $8
		  AND time_out IS NULL
		RETURNING` + sessionColumns + `
	`

	closed, err := scanSession(q.QueryRow(ctx, query,
		s.TimeOut,
		s.BreakSeconds,
		s.NetDurationSeconds,
		s.OvertimeSeconds,
		s.OverBreakSeconds,
		s.Notes,
		s.ID,
		s.OrgID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.ErrNoActiveSession
		}
		return session.Session{}, fmt.Errorf("failed to close session: %w", err)
	}

	return closed, nil
}

// SetBreakStart implements session.SessionRepository.
func (r *sessionRepository) SetBreakStart(ctx context.Context, id string, orgID string, startedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET break_started_at = $1, updated_at = NOW()
		WHERE id = $2
		  AND org_id = $3
		  AND time_out IS NULL
		  AND break_started_at IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, startedAt, id, orgID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.ErrNoActiveSession
		}
		return fmt.Errorf("failed to set break start: %w", err)
	}

	return nil
}

// AccumulateBreak implements session.SessionRepository.
func (r *sessionRepository) AccumulateBreak(ctx context.Context, id string, orgID string, seconds int) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET break_seconds = break_seconds + $1,
		    break_started_at = NULL,
		    updated_at = NOW()
		WHERE id = $2
		  AND org_id = $3
		  AND time_out IS NULL
		  AND break_started_at IS NOT NULL
		RETURNING` + sessionColumns + `
	`

	s, err := scanSession(q.QueryRow(ctx, query, seconds, id, orgID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Session{}, session.ErrSessionNotFound
		}
		return session.Session{}, fmt.Errorf("failed to accumulate break: %w", err)
	}

	return s, nil
}

// ListHistory implements session.SessionRepository.
func (r *sessionRepository) ListHistory(ctx context.Context, memberID string, orgID string, filter session.HistoryFilter) ([]session.Session, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "member_id = $1 AND org_id = $2"
	args := []interface{}{memberID, orgID}
	argIdx := 3

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND time_in::date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND time_in::date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendance_sessions WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT`+sessionColumns+`
		FROM attendance_sessions
		WHERE %s
		ORDER BY time_in DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, total, nil
}
