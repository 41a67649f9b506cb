package report

import (
	"context"
)

// ReportService exposes range totals for the dashboard's KPI tables.
type ReportService interface {
	Summary(ctx context.Context, filter SummaryFilter) (SummaryResponse, error)
}
