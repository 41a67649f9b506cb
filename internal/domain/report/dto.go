package report

import (
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/validator"
)

type SummaryFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Summary aggregates closed sessions over a date range. Open sessions are
// excluded: their figures are not authoritative until clock-out.
type Summary struct {
	Sessions         int64
	GrossSeconds     int64
	BreakSeconds     int64
	NetSeconds       int64
	OvertimeSeconds  int64
	OverBreakSeconds int64
}

type SummaryResponse struct {
	Sessions         int64  `json:"sessions"`
	GrossSeconds     int64  `json:"gross_seconds"`
	BreakSeconds     int64  `json:"break_seconds"`
	NetSeconds       int64  `json:"net_seconds"`
	NetDuration      string `json:"net_duration"`
	OvertimeSeconds  int64  `json:"overtime_seconds"`
	OverBreakSeconds int64  `json:"over_break_seconds"`
}
