package session

import (
	"time"
)

// Session is one continuous clock-in-to-clock-out work period. A row with a
// NULL time_out is the member's active session; once closed it is permanent
// history and is never reopened or updated.
type Session struct {
	ID                 string
	MemberID           string
	OrgID              string
	TimeIn             time.Time
	TimeOut            *time.Time
	BreakSeconds       int
	BreakStartedAt     *time.Time
	NetDurationSeconds *int
	OvertimeSeconds    *int
	OverBreakSeconds   *int
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Open reports whether the session is still running.
func (s Session) Open() bool {
	return s.TimeOut == nil
}

// OnBreak reports whether the session has an open break window.
func (s Session) OnBreak() bool {
	return s.BreakStartedAt != nil
}

// Rules are the fixed accounting thresholds applied at clock-out.
type Rules struct {
	BreakLimitSeconds    int
	ExpectedDailySeconds int
}
