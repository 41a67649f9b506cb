package response

import (
	"errors"
	"net/http"

	"github.com/shiftlog/timeclock-backend-go/internal/domain/auth"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/breaks"
	"github.com/shiftlog/timeclock-backend-go/internal/domain/session"
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Every conflict here is a
// client-state error: the record is untouched and the caller should re-fetch
// status rather than retry.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Session ledger errors
	case errors.Is(err, session.ErrAlreadyClockedIn):
		Conflict(w, "ALREADY_CLOCKED_IN", err.Error())
	case errors.Is(err, session.ErrNoActiveSession):
		Conflict(w, "NO_ACTIVE_SESSION", err.Error())
	case errors.Is(err, session.ErrSessionNotFound):
		NotFound(w, "Session not found")

	// Break accounting errors
	case errors.Is(err, breaks.ErrBreakAlreadyUsedToday):
		Conflict(w, "BREAK_ALREADY_USED_TODAY", err.Error())
	case errors.Is(err, breaks.ErrBreakAlreadyOpen):
		Conflict(w, "BREAK_ALREADY_OPEN", err.Error())
	case errors.Is(err, breaks.ErrNoBreakOpen):
		Conflict(w, "NO_BREAK_OPEN", err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
