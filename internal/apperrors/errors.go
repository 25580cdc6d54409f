package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientBalance indicates that a withdrawal is not permitted by the account's balance.
// No state has been changed when it is returned.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrCashSectionOverflow indicates that a deposit would exceed a cash section's capacity
// or overflow its banknote counter. Deposits are all-or-nothing, so nothing was applied.
var ErrCashSectionOverflow = errors.New("cash section overflow")

// ErrConfiguration indicates a dispenser set up without exactly one cash section per
// catalog denomination, or a malformed seed. Fatal at startup.
var ErrConfiguration = errors.New("configuration error")

// ErrInvariantViolation indicates a bug: the dispenser attempted an impossible state
// transition (e.g. issuing more banknotes than a section holds). Never user-facing.
var ErrInvariantViolation = errors.New("invariant violation")

// AppError wraps infrastructure failures with the HTTP status they should surface as.
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

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
