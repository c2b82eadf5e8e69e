package apperrors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidTransition = errors.New("invalid task transition")
	ErrCapacityExceeded  = errors.New("storage capacity exceeded")
	ErrExternalCall      = errors.New("external call failed")
	ErrNoSession         = errors.New("no active session")
)
