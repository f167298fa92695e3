package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrBalanceViolation indicates a register whose sections do not balance within tolerance.
var ErrBalanceViolation = errors.New("balance violation")

// ErrMissingRate indicates that no duty rate covers the requested category and date.
var ErrMissingRate = errors.New("no duty rate in effect")

// ErrPrecondition indicates that an operation was attempted before its precondition was met.
var ErrPrecondition = errors.New("precondition not met")

// ErrStateTransition indicates an attempt to mutate an entry in a terminal state.
var ErrStateTransition = errors.New("invalid state transition")

// ErrForbidden indicates that the caller's role does not allow the operation.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the itemized list returned when an entry is rejected.
// It matches ErrValidation via errors.Is.
type ValidationErrors []FieldError

// Add appends a field error.
func (v *ValidationErrors) Add(field, format string, args ...any) {
	*v = append(*v, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Err returns nil when the list is empty, so callers can `return errs.Err()`.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Unwrap() error {
	return ErrValidation
}

// BalanceError reports how far a register is out of balance.
type BalanceError struct {
	Difference string
	Tolerance  string
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("%s: difference %s BL exceeds tolerance %s BL", ErrBalanceViolation.Error(), e.Difference, e.Tolerance)
}

func (e *BalanceError) Unwrap() error {
	return ErrBalanceViolation
}

// NewPreconditionError names the precondition that was not met.
func NewPreconditionError(message string) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, message)
}

// NewStateTransitionError names the rejected transition.
func NewStateTransitionError(message string) error {
	return fmt.Errorf("%w: %s", ErrStateTransition, message)
}

// HTTPStatus maps an error from any layer to the status a handler should return.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrBalanceViolation):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrPrecondition), errors.Is(err, ErrStateTransition), errors.Is(err, ErrMissingRate):
		return http.StatusUnprocessableEntity
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
