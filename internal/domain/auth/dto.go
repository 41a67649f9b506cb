package auth

import (
	"github.com/shiftlog/timeclock-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	OrgID      string `json:"org_id"`
	MemberCode string `json:"member_code"`
	PIN        string `json:"pin"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OrgID) {
		errs = append(errs, validator.ValidationError{
			Field:   "org_id",
			Message: "org_id is required",
		})
	}

	if validator.IsEmpty(r.MemberCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_code",
			Message: "member_code is required",
		})
	} else if !validator.IsValidMemberCode(r.MemberCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "member_code",
			Message: "member_code must match NNNN-NNNN",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4-8 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	MemberID    string `json:"member_id"`
	OrgID       string `json:"org_id"`
	FullName    string `json:"full_name"`
}

type MeResponse struct {
	MemberID string `json:"member_id"`
	OrgID    string `json:"org_id"`
}
