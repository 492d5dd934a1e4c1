package models

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrRegistrationClosed = errors.New("registration is closed")
	ErrQuizInactive       = errors.New("quiz is not active")
	ErrAlreadyCompleted   = errors.New("quiz already completed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrCodeSpaceExhausted = errors.New("could not generate a unique code")
)

// ValidationError reports malformed input, with one detail line per
// violated rule so team registrations can name the offending member.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}

func NewValidationError(message string, details ...string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}
