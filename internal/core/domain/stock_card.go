package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a stock movement.
type TransactionType string

const (
	Receipt    TransactionType = "RECEIPT"
	Issue      TransactionType = "ISSUE"
	Donation   TransactionType = "DONATION"
	Adjustment TransactionType = "ADJUSTMENT"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case Receipt, Issue, Donation, Adjustment:
		return true
	}
	return false
}

// StockCard is one immutable ledger entry. Balance is the item's balance after
// this entry and is written once, at append time.
type StockCard struct {
	EntryID         string          `json:"entryID"`
	ItemID          string          `json:"itemID"`
	EntryNo         int64           `json:"entryNo"`
	TransactionDate time.Time       `json:"transactionDate"`
	TransactionType TransactionType `json:"transactionType"`
	QuantityIn      int64           `json:"quantityIn"`
	QuantityOut     int64           `json:"quantityOut"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	Balance         int64           `json:"balance"`
	ReferenceNumber string          `json:"referenceNumber"`
	ProcessedBy     string          `json:"processedBy"`
	Remarks         string          `json:"remarks"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Movement is a request to append one entry to an item's stock card.
type Movement struct {
	ItemID          string
	Type            TransactionType
	QuantityIn      int64
	QuantityOut     int64
	UnitCost        decimal.Decimal
	TransactionDate time.Time
	ReferenceNumber string
	Remarks         string
	ProcessedBy     string
}

// Validate checks the shape of the movement independent of any balance.
func (m Movement) Validate() error {
	if m.ItemID == "" {
		return fmt.Errorf("%w: item id is required", apperrors.ErrValidation)
	}
	if m.ProcessedBy == "" {
		return fmt.Errorf("%w: acting user is required", apperrors.ErrValidation)
	}
	if !m.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, m.Type)
	}
	if m.QuantityIn < 0 || m.QuantityOut < 0 {
		return fmt.Errorf("%w: quantities must not be negative", apperrors.ErrValidation)
	}
	if m.UnitCost.IsNegative() {
		return fmt.Errorf("%w: unit cost must not be negative", apperrors.ErrValidation)
	}

	switch m.Type {
	case Receipt, Donation:
		if m.QuantityIn <= 0 || m.QuantityOut != 0 {
			return fmt.Errorf("%w: %s requires a positive quantity in and no quantity out", apperrors.ErrValidation, m.Type)
		}
	case Issue:
		if m.QuantityOut <= 0 || m.QuantityIn != 0 {
			return fmt.Errorf("%w: ISSUE requires a positive quantity out and no quantity in", apperrors.ErrValidation)
		}
	case Adjustment:
		if (m.QuantityIn == 0) == (m.QuantityOut == 0) {
			return fmt.Errorf("%w: ADJUSTMENT requires exactly one of quantity in or quantity out", apperrors.ErrValidation)
		}
	}
	return nil
}

// BalanceOf returns the balance recorded on the latest entry, or 0 when the
// item has no entries yet.
func BalanceOf(latest *StockCard) int64 {
	if latest == nil {
		return 0
	}
	return latest.Balance
}

// NextStockCard builds the entry that follows latest. It enforces that the
// balance never goes negative and that entry numbers and creation times are
// strictly increasing per item.
func NextStockCard(latest *StockCard, m Movement, entryID string, now time.Time) (StockCard, error) {
	if err := m.Validate(); err != nil {
		return StockCard{}, err
	}

	current := BalanceOf(latest)
	if m.QuantityOut > current {
		return StockCard{}, &apperrors.InsufficientStockError{ItemID: m.ItemID, Requested: m.QuantityOut, Available: current}
	}

	entryNo := int64(1)
	createdAt := now.UTC().Truncate(time.Microsecond)
	if latest != nil {
		entryNo = latest.EntryNo + 1
		if !createdAt.After(latest.CreatedAt) {
			createdAt = latest.CreatedAt.Add(time.Microsecond)
		}
	}

	txnDate := m.TransactionDate
	if txnDate.IsZero() {
		txnDate = createdAt
	}

	return StockCard{
		EntryID:         entryID,
		ItemID:          m.ItemID,
		EntryNo:         entryNo,
		TransactionDate: txnDate,
		TransactionType: m.Type,
		QuantityIn:      m.QuantityIn,
		QuantityOut:     m.QuantityOut,
		UnitCost:        m.UnitCost,
		Balance:         current + m.QuantityIn - m.QuantityOut,
		ReferenceNumber: m.ReferenceNumber,
		ProcessedBy:     m.ProcessedBy,
		Remarks:         m.Remarks,
		CreatedAt:       createdAt,
	}, nil
}

// ChainViolation describes an entry whose stored balance or order disagrees
// with its predecessor.
type ChainViolation struct {
	EntryID  string `json:"entryID"`
	EntryNo  int64  `json:"entryNo"`
	Expected int64  `json:"expected"`
	Stored   int64  `json:"stored"`
	Reason   string `json:"reason"`
}

// VerifyChain walks entries in entry-number order and reports every break of
// balance[n] = balance[n-1] + in[n] - out[n].
func VerifyChain(entries []StockCard) []ChainViolation {
	var violations []ChainViolation
	var prev *StockCard
	for i := range entries {
		e := entries[i]
		expectedNo := int64(1)
		if prev != nil {
			expectedNo = prev.EntryNo + 1
		}
		if e.EntryNo != expectedNo {
			violations = append(violations, ChainViolation{
				EntryID: e.EntryID, EntryNo: e.EntryNo, Expected: expectedNo, Stored: e.EntryNo,
				Reason: "entry number out of sequence",
			})
		}
		if prev != nil && !e.CreatedAt.After(prev.CreatedAt) {
			violations = append(violations, ChainViolation{
				EntryID: e.EntryID, EntryNo: e.EntryNo,
				Reason: "creation time not after previous entry",
			})
		}
		expected := BalanceOf(prev) + e.QuantityIn - e.QuantityOut
		if e.Balance != expected {
			violations = append(violations, ChainViolation{
				EntryID: e.EntryID, EntryNo: e.EntryNo, Expected: expected, Stored: e.Balance,
				Reason: "balance does not follow from previous entry",
			})
		}
		if e.Balance < 0 {
			violations = append(violations, ChainViolation{
				EntryID: e.EntryID, EntryNo: e.EntryNo, Stored: e.Balance,
				Reason: "negative balance",
			})
		}
		prev = &entries[i]
	}
	return violations
}
