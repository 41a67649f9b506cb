package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid member code or pin")
	ErrInvalidToken       = errors.New("invalid token")
)
