package usecase

import (
	"fmt"
)

// The reservation workflow distinguishes four failure kinds so callers
// can render each one differently. All of them implement error and are
// matched with errors.As at the handler boundary.

// ValidationError reports bad or missing input. No state was changed.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d invalid fields)", e.Message, len(e.Fields))
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// CapacityError reports a fully booked date. No state was changed.
type CapacityError struct {
	DateKey string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("no rooms left for %s", e.DateKey)
}

// PersistenceError reports a failed write. No partial state remains, so
// the whole workflow is safe to retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NotificationError reports partial success: the reservation was
// committed but the confirmation email was not delivered. The
// reservation identifier stays retrievable.
type NotificationError struct {
	ReservationID string
	Err           error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("reservation %s saved, confirmation email failed: %v", e.ReservationID, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
