package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftlog/timeclock-backend-go/internal/domain/breaks"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/database"
)

type breakQuotaRepository struct {
	db *database.DB
}

func NewBreakQuotaRepository(db *database.DB) breaks.QuotaRepository {
	return &breakQuotaRepository{db: db}
}

// IsUsed implements breaks.QuotaRepository.
func (r *breakQuotaRepository) IsUsed(ctx context.Context, memberID string, orgID string, day string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM break_days
			WHERE member_id = $1
			  AND org_id = $2
			  AND day = $3
		)
	`

	var used bool
	if err := q.QueryRow(ctx, query, memberID, orgID, day).Scan(&used); err != nil {
		return false, fmt.Errorf("failed to check break quota: %w", err)
	}

	return used, nil
}

// MarkUsed implements breaks.QuotaRepository. ON CONFLICT DO NOTHING plus the
// affected-row check makes concurrent quota grabs lose cleanly.
func (r *breakQuotaRepository) MarkUsed(ctx context.Context, memberID string, orgID string, day string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO break_days (member_id, org_id, day, used_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (member_id, org_id, day) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, memberID, orgID, day, at)
	if err != nil {
		return fmt.Errorf("failed to mark break quota used: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return breaks.ErrBreakAlreadyUsedToday
	}

	return nil
}
