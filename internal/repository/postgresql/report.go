package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftlog/timeclock-backend-go/internal/domain/report"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// Summary implements report.ReportRepository. Only closed sessions count:
// an open session's figures are not authoritative until clock-out.
func (r *reportRepository) Summary(ctx context.Context, memberID string, orgID string, filter report.SummaryFilter) (report.Summary, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "member_id = $1 AND org_id = $2 AND time_out IS NOT NULL"
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

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(EXTRACT(EPOCH FROM (time_out - time_in))::bigint), 0),
			COALESCE(SUM(break_seconds), 0),
			COALESCE(SUM(net_duration_seconds), 0),
			COALESCE(SUM(overtime_seconds), 0),
			COALESCE(SUM(over_break_seconds), 0)
		FROM attendance_sessions
		WHERE ` + baseWhere

	var s report.Summary
	err := q.QueryRow(ctx, query, args...).Scan(
		&s.Sessions,
		&s.GrossSeconds,
		&s.BreakSeconds,
		&s.NetSeconds,
		&s.OvertimeSeconds,
		&s.OverBreakSeconds,
	)
	if err != nil {
		return report.Summary{}, fmt.Errorf("failed to aggregate summary: %w", err)
	}

	return s, nil
}
