package review

import (
	"errors"
	"fmt"
)

// Transition failures. Match with errors.Is; ErrMissingApprovalType is also an ErrValidation.
var (
	ErrValidation           = errors.New("validation failed")
	ErrMissingApprovalType  = fmt.Errorf("%w: approval type is required to approve a submission", ErrValidation)
	ErrIncompleteSubmission = errors.New("submission is incomplete")
	ErrConcurrencyConflict  = errors.New("submission was modified by another reviewer")
	ErrIntegrity            = errors.New("submission data integrity failure")
)

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
