package report

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/report"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/timeutil"
)

type ReportServiceImpl struct {
	repo report.ReportRepository
}

func NewReportService(repo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{repo: repo}
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

// Summary implements report.ReportService.
func (s *ReportServiceImpl) Summary(ctx context.Context, filter report.SummaryFilter) (report.SummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.SummaryResponse{}, err
	}

	memberID, orgID, err := identityFromContext(ctx)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	summary, err := s.repo.Summary(ctx, memberID, orgID, filter)
	if err != nil {
		return report.SummaryResponse{}, fmt.Errorf("failed to get summary: %w", err)
	}

	return report.SummaryResponse{
		Sessions:         summary.Sessions,
		GrossSeconds:     summary.GrossSeconds,
		BreakSeconds:     summary.BreakSeconds,
		NetSeconds:       summary.NetSeconds,
		NetDuration:      timeutil.FormatSeconds(int(summary.NetSeconds)),
		OvertimeSeconds:  summary.OvertimeSeconds,
		OverBreakSeconds: summary.OverBreakSeconds,
	}, nil
}
