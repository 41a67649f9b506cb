package breaks

// ========================================
// BREAK ACCOUNTING DTOs
// ========================================

// StartBreakResponse reports the newly opened break window. The daily quota
// is consumed the moment the window opens, not when it ends.
type StartBreakResponse struct {
	SessionID    string `json:"session_id"`
	StartedAt    string `json:"started_at"`
	BreakUsedDay string `json:"break_used_day"`
	BreakSeconds int    `json:"break_seconds"`
	LimitSeconds int    `json:"limit_seconds"`
	AlreadyOver  bool   `json:"already_over"`
}

// EndBreakResponse returns the just-ended window's elapsed seconds alongside
// the session's accumulated total for display.
type EndBreakResponse struct {
	SessionID         string `json:"session_id"`
	BreakSeconds      int    `json:"break_seconds"`
	TotalBreakSeconds int    `json:"total_break_seconds"`
	OverLimit         bool   `json:"over_limit"`
}
