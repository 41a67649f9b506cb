package session

import (
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/timeutil"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// SESSION LEDGER DTOs
// ========================================

type ClockInRequest struct {
	Notes *string `json:"notes,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	// BreakSecondsOverride lets a client that tracked an in-progress break
	// locally finalize it atomically with clock-out. When present it replaces
	// the ledger's accumulated break figure entirely.
	BreakSecondsOverride *int    `json:"break_seconds_override,omitempty"`
	Notes                *string `json:"notes,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BreakSecondsOverride != nil && *r.BreakSecondsOverride < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_seconds_override",
			Message: "break_seconds_override must not be negative",
		})
	}

	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionResponse struct {
	ID                 string  `json:"id"`
	MemberID           string  `json:"member_id"`
	OrgID              string  `json:"org_id"`
	Date               string  `json:"date"`
	TimeIn             string  `json:"time_in"`
	TimeOut            *string `json:"time_out,omitempty"`
	BreakSeconds       int     `json:"break_seconds"`
	OnBreak            bool    `json:"on_break"`
	BreakStartedAt     *string `json:"break_started_at,omitempty"`
	NetDurationSeconds *int    `json:"net_duration_seconds,omitempty"`
	NetDuration        *string `json:"net_duration,omitempty"`
	OvertimeSeconds    *int    `json:"overtime_seconds,omitempty"`
	OverBreakSeconds   *int    `json:"over_break_seconds,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

type HistoryFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	var start, end *string
	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		} else {
			start = f.StartDate
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else {
			end = f.EndDate
		}
	}
	if start != nil && end != nil && *end < *start {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListSessionsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Showing    string            `json:"showing"`
	Sessions   []SessionResponse `json:"sessions"`
}

// StatusResponse wraps GetActive: Active is nil when the member is clocked out.
type StatusResponse struct {
	ClockedIn bool             `json:"clocked_in"`
	Active    *SessionResponse `json:"active,omitempty"`
}

// ToResponse maps a Session entity to its API shape.
func ToResponse(s Session) SessionResponse {
	const layout = "2006-01-02 15:04:05"

	resp := SessionResponse{
		ID:           s.ID,
		MemberID:     s.MemberID,
		OrgID:        s.OrgID,
		Date:         timeutil.DayKey(s.TimeIn),
		TimeIn:       s.TimeIn.Format(layout),
		BreakSeconds: s.BreakSeconds,
		OnBreak:      s.OnBreak(),
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt.Format(layout),
		UpdatedAt:    s.UpdatedAt.Format(layout),
	}

	if s.TimeOut != nil {
		out := s.TimeOut.Format(layout)
		resp.TimeOut = &out
	}
	if s.BreakStartedAt != nil {
		started := s.BreakStartedAt.Format(layout)
		resp.BreakStartedAt = &started
	}
	resp.NetDurationSeconds = s.NetDurationSeconds
	if s.NetDurationSeconds != nil {
		formatted := timeutil.FormatSeconds(*s.NetDurationSeconds)
		resp.NetDuration = &formatted
	}
	resp.OvertimeSeconds = s.OvertimeSeconds
	resp.OverBreakSeconds = s.OverBreakSeconds

	return resp
}
