package toast

import (
	"errors"

	"github.com/dmitrymomot/toastkit/pkg/validator"
)

var (
	// ErrQueueClosed is returned by enqueue operations after Close.
	ErrQueueClosed = errors.New("toast: queue is closed")

	// ErrDuplicateID is returned when a confirmation id is registered twice with a Broker.
	ErrDuplicateID = errors.New("toast: confirmation id already pending")
)

// IsValidationError reports whether err is an alert or confirmation validation failure.
func IsValidationError(err error) bool {
	return validator.IsValidationError(err)
}
