package breaks

import "errors"

// Break accounting errors
var (
	ErrBreakAlreadyUsedToday = errors.New("break already used today")
	ErrBreakAlreadyOpen      = errors.New("a break is already in progress")
	ErrNoBreakOpen           = errors.New("no break is in progress")
)
