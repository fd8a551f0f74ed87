package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovement_Validate(t *testing.T) {
	base := domain.Movement{ItemID: "item-1", ProcessedBy: "user-1"}
	with := func(typ domain.TransactionType, in, out int64) domain.Movement {
		m := base
		m.Type, m.QuantityIn, m.QuantityOut = typ, in, out
		return m
	}

	tests := []struct {
		name    string
		m       domain.Movement
		wantErr bool
	}{
		{"receipt", with(domain.Receipt, 5, 0), false},
		{"receipt without quantity", with(domain.Receipt, 0, 0), true},
		{"receipt with outflow", with(domain.Receipt, 5, 1), true},
		{"issue", with(domain.Issue, 0, 3), false},
		{"issue with inflow", with(domain.Issue, 1, 3), true},
		{"donation", with(domain.Donation, 2, 0), false},
		{"adjustment in", with(domain.Adjustment, 2, 0), false},
		{"adjustment out", with(domain.Adjustment, 0, 2), false},
		{"adjustment both", with(domain.Adjustment, 1, 1), true},
		{"adjustment neither", with(domain.Adjustment, 0, 0), true},
		{"negative quantity", with(domain.Receipt, -1, 0), true},
		{"unknown type", with(domain.TransactionType("TRANSFER"), 1, 0), true},
		{"missing actor", domain.Movement{ItemID: "item-1", Type: domain.Receipt, QuantityIn: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	negativeCost := with(domain.Receipt, 1, 0)
	negativeCost.UnitCost = decimal.NewFromInt(-1)
	assert.ErrorIs(t, negativeCost.Validate(), apperrors.ErrValidation)
}

func TestNextStockCard(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	receipt := domain.Movement{ItemID: "item-1", Type: domain.Receipt, QuantityIn: 100, UnitCost: decimal.NewFromInt(5), ProcessedBy: "u"}

	first, err := domain.NextStockCard(nil, receipt, "e1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.EntryNo)
	assert.Equal(t, int64(100), first.Balance)
	assert.Equal(t, now, first.CreatedAt)
	assert.Equal(t, now, first.TransactionDate, "transaction date defaults to creation time")

	issue := domain.Movement{ItemID: "item-1", Type: domain.Issue, QuantityOut: 30, ProcessedBy: "u"}
	// a clock that did not move still yields a strictly later entry
	second, err := domain.NextStockCard(&first, issue, "e2", now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.EntryNo)
	assert.Equal(t, int64(70), second.Balance)
	assert.True(t, second.CreatedAt.After(first.CreatedAt))

	_, err = domain.NextStockCard(&second, domain.Movement{ItemID: "item-1", Type: domain.Issue, QuantityOut: 71, ProcessedBy: "u"}, "e3", now)
	var insufficient *apperrors.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, int64(70), insufficient.Available)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
}

func TestVerifyChain(t *testing.T) {
	t0 := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	healthy := []domain.StockCard{
		{EntryID: "a", EntryNo: 1, QuantityIn: 10, Balance: 10, CreatedAt: t0},
		{EntryID: "b", EntryNo: 2, QuantityOut: 4, Balance: 6, CreatedAt: t0.Add(time.Second)},
		{EntryID: "c", EntryNo: 3, QuantityIn: 1, Balance: 7, CreatedAt: t0.Add(2 * time.Second)},
	}
	assert.Empty(t, domain.VerifyChain(healthy))
	assert.Empty(t, domain.VerifyChain(nil))

	broken := append([]domain.StockCard(nil), healthy...)
	broken[1].Balance = 5
	violations := domain.VerifyChain(broken)
	require.NotEmpty(t, violations)
	assert.Equal(t, "b", violations[0].EntryID)
	assert.Equal(t, int64(6), violations[0].Expected)
	assert.Equal(t, int64(5), violations[0].Stored)

	reordered := append([]domain.StockCard(nil), healthy...)
	reordered[2].CreatedAt = t0
	assert.NotEmpty(t, domain.VerifyChain(reordered))

	gap := append([]domain.StockCard(nil), healthy...)
	gap[2].EntryNo = 4
	assert.NotEmpty(t, domain.VerifyChain(gap))
}
