package session

import "errors"

var (
	ErrMissingSession = errors.New("missing session id")
	ErrSessionInvalid = errors.New("session not found or expired")
)
