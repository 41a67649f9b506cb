package session

import "errors"

// Session ledger errors. All of these are client-state conflicts: they are
// reported verbatim and retrying without fixing the state repeats them.
var (
	ErrAlreadyClockedIn = errors.New("you are already clocked in")
	ErrNoActiveSession  = errors.New("you are not clocked in")
	ErrSessionNotFound  = errors.New("session not found")
)
