package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates an operation attempted outside its legal state transition.
var ErrInvalidState = errors.New("invalid state transition")

// ErrInsufficientStock indicates an outflow larger than the item's ledger balance.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrConcurrencyConflict indicates a lost race for a lock that survived the bounded retries.
var ErrConcurrencyConflict = errors.New("concurrency conflict, please retry")

// ErrTaggingNotRequired indicates an asset tag request for an item whose category is not tracked.
var ErrTaggingNotRequired = errors.New("tagging not required for item")

// ErrSequenceCorrupted indicates the persisted last code of a sequence scope could not be parsed.
var ErrSequenceCorrupted = errors.New("sequence counter corrupted")

// AppError carries an HTTP-ish code and a safe message alongside the underlying cause.
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

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError returns an AppError that matches ErrConcurrencyConflict.
func NewConflictError(message string, cause error) *AppError {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Err: errors.Join(ErrConcurrencyConflict, cause)}
}

// StateError describes a refused state-machine transition.
type StateError struct {
	Entity  string
	ID      string
	Action  string
	Current string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s %s %s: current status is %s", e.Action, e.Entity, e.ID, e.Current)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

// InsufficientStockError reports the requested outflow and what the ledger holds.
type InsufficientStockError struct {
	ItemID    string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: requested %d, available %d", e.ItemID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// HTTPStatus maps an error onto the status code handlers respond with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrTaggingNotRequired):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrConcurrencyConflict):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
