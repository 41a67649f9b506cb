package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/member"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/database"
)

type memberRepository struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepository{db: db}
}

// GetByCode implements member.MemberRepository.
func (r *memberRepository) GetByCode(ctx context.Context, orgID string, memberCode string) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, org_id, member_code, full_name, pin_hash, created_at
		FROM members
		WHERE org_id = $1 AND member_code = $2
	`

	var m member.Member
	err := q.QueryRow(ctx, query, orgID, memberCode).Scan(
		&m.ID, &m.OrgID, &m.MemberCode, &m.FullName, &m.PinHash, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return member.Member{}, member.ErrMemberNotFound
		}
		return member.Member{}, fmt.Errorf("failed to get member by code: %w", err)
	}

	return m, nil
}
