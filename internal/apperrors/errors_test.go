package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "not found", err: apperrors.NewNotFoundError("item 1"), want: http.StatusNotFound},
		{name: "wrapped validation", err: fmt.Errorf("%w: bad delta", apperrors.ErrValidation), want: http.StatusBadRequest},
		{name: "tagging not required", err: apperrors.ErrTaggingNotRequired, want: http.StatusBadRequest},
		{name: "duplicate", err: fmt.Errorf("%w: property number", apperrors.ErrDuplicate), want: http.StatusConflict},
		{name: "state", err: &apperrors.StateError{Entity: "adjustment", ID: "a", Action: "approve", Current: "APPROVED"}, want: http.StatusConflict},
		{name: "insufficient", err: &apperrors.InsufficientStockError{ItemID: "i", Requested: 5, Available: 1}, want: http.StatusUnprocessableEntity},
		{name: "conflict", err: apperrors.NewConflictError("busy", errors.New("40001")), want: http.StatusServiceUnavailable},
		{name: "corrupted sequence", err: apperrors.ErrSequenceCorrupted, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.HTTPStatus(tt.err))
		})
	}
}

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	state := &apperrors.StateError{Entity: "physical count", ID: "c1", Action: "verify", Current: "VERIFIED"}
	assert.ErrorIs(t, state, apperrors.ErrInvalidState)
	assert.Contains(t, state.Error(), "current status is VERIFIED")

	stock := &apperrors.InsufficientStockError{ItemID: "i1", Requested: 9, Available: 4}
	assert.ErrorIs(t, fmt.Errorf("append failed: %w", stock), apperrors.ErrInsufficientStock)

	conflict := apperrors.NewConflictError("sequence busy", errors.New("40P01"))
	assert.ErrorIs(t, conflict, apperrors.ErrConcurrencyConflict)
}
