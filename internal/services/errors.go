package services

import "fmt"

// TransitionError signals that an entity is not in the status a state
// transition requires. The API reports these as 403, matching the platform's
// convention of treating state-precondition failures as permission errors.
type TransitionError struct {
	Message string
}

func (e *TransitionError) Error() string {
	return e.Message
}

// NewTransitionError builds a TransitionError with a formatted message
func NewTransitionError(format string, args ...interface{}) *TransitionError {
	return &TransitionError{Message: fmt.Sprintf(format, args...)}
}

// AllocationError signals an invalid allocation instruction: non-positive
// amount, unknown schedule, or an amount that would overpay a schedule.
// Reported as 400.
type AllocationError struct {
	Message string
}

func (e *AllocationError) Error() string {
	return e.Message
}

// NewAllocationError builds an AllocationError with a formatted message
func NewAllocationError(format string, args ...interface{}) *AllocationError {
	return &AllocationError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError signals a business-rule violation in a request that passed
// structural validation, like quoting a retired pack. Reported as 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
