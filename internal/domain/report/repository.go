package report

import (
	"context"
)

// ReportRepository aggregates closed attendance sessions.
type ReportRepository interface {
	Summary(ctx context.Context, memberID string, orgID string, filter SummaryFilter) (Summary, error)
}
