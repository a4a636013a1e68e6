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

// ErrForbidden indicates that the acting user is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// Ledger-specific errors. These are the failure modes of the payment ledger
// and the stay lifecycle; handlers map them to HTTP statuses.
var (
	// ErrInvalidAmount indicates a non-positive payment or adjustment amount.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrMissingReason indicates a cancel/edit without justification text.
	ErrMissingReason = errors.New("reason is required")

	// ErrNotCancelable indicates the target payment cannot be reversed
	// (its amount is not positive, or it is itself a reversal).
	ErrNotCancelable = errors.New("payment cannot be cancelled")

	// ErrNotEditable indicates the target payment cannot be adjusted,
	// under the same guard as ErrNotCancelable.
	ErrNotEditable = errors.New("payment cannot be edited")

	// ErrNoActiveStay indicates the referenced stay is not open.
	ErrNoActiveStay = errors.New("stay is not open")

	// ErrStayClosed indicates an attempt to close an already-closed stay.
	ErrStayClosed = errors.New("stay is already closed")

	// ErrRoomOccupied indicates the room already has an open stay.
	ErrRoomOccupied = errors.New("room is currently occupied")
)

// AppError wraps a lower-level error with an HTTP-ish status code and a message.
// Repositories use it to report persistence failures without leaking driver errors.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewBadRequestError creates a 400 AppError that matches errors.Is(err, ErrValidation).
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
