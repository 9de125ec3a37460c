package curve

import (
	"github.com/sgostarter/i/commerr"
)

// ValidationError reports input that FitQuad cannot fit.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func (e *ValidationError) Unwrap() error {
	return commerr.ErrInvalidArgument
}

func newValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
