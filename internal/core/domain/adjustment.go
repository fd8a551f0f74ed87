package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
)

// AdjustmentType classifies the intent of an adjustment.
type AdjustmentType string

const (
	AdjustIncrease   AdjustmentType = "INCREASE"
	AdjustDecrease   AdjustmentType = "DECREASE"
	AdjustCorrection AdjustmentType = "CORRECTION"
)

// IsValid reports whether t is a known adjustment type.
func (t AdjustmentType) IsValid() bool {
	switch t {
	case AdjustIncrease, AdjustDecrease, AdjustCorrection:
		return true
	}
	return false
}

// AdjustmentStatus is the state of an adjustment case. Approved and Rejected are terminal.
type AdjustmentStatus string

const (
	AdjustmentPending  AdjustmentStatus = "PENDING"
	AdjustmentApproved AdjustmentStatus = "APPROVED"
	AdjustmentRejected AdjustmentStatus = "REJECTED"
)

// IsValid reports whether s is a known status.
func (s AdjustmentStatus) IsValid() bool {
	switch s {
	case AdjustmentPending, AdjustmentApproved, AdjustmentRejected:
		return true
	}
	return false
}

// AdjustmentCase is a proposed correction to an item's balance. BalanceBefore
// and BalanceAfter are what the preparer saw at proposal time; approval applies
// Delta to whatever the ledger holds then.
type AdjustmentCase struct {
	AdjustmentID     string           `json:"adjustmentID"`
	AdjustmentNumber string           `json:"adjustmentNumber"`
	ItemID           string           `json:"itemID"`
	AdjustmentType   AdjustmentType   `json:"adjustmentType"`
	Delta            int64            `json:"delta"`
	Reason           string           `json:"reason"`
	BalanceBefore    int64            `json:"balanceBefore"`
	BalanceAfter     int64            `json:"balanceAfter"`
	Status           AdjustmentStatus `json:"status"`
	PreparedBy       string           `json:"preparedBy"`
	ApprovedBy       *string          `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time       `json:"approvedAt,omitempty"`
	RejectedBy       *string          `json:"rejectedBy,omitempty"`
	RejectedAt       *time.Time       `json:"rejectedAt,omitempty"`
	RejectionReason  *string          `json:"rejectionReason,omitempty"`
	LedgerEntryID    *string          `json:"ledgerEntryID,omitempty"`
	SourceCountID    *string          `json:"sourceCountID,omitempty"`
	AuditFields
}

// ValidateAdjustmentDelta checks that the delta's sign agrees with the type.
func ValidateAdjustmentDelta(t AdjustmentType, delta int64) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: unknown adjustment type %q", apperrors.ErrValidation, t)
	}
	switch {
	case delta == 0:
		return fmt.Errorf("%w: adjustment delta must not be zero", apperrors.ErrValidation)
	case t == AdjustIncrease && delta < 0:
		return fmt.Errorf("%w: INCREASE requires a positive delta", apperrors.ErrValidation)
	case t == AdjustDecrease && delta > 0:
		return fmt.Errorf("%w: DECREASE requires a negative delta", apperrors.ErrValidation)
	}
	return nil
}

// AdjustmentTypeForDelta picks Increase or Decrease from the sign of delta.
func AdjustmentTypeForDelta(delta int64) AdjustmentType {
	if delta < 0 {
		return AdjustDecrease
	}
	return AdjustIncrease
}

// Snapshot records the balance the preparer saw and the balance the delta would produce.
func (a *AdjustmentCase) Snapshot(balance int64) error {
	after := balance + a.Delta
	if after < 0 {
		return &apperrors.InsufficientStockError{ItemID: a.ItemID, Requested: -a.Delta, Available: balance}
	}
	a.BalanceBefore = balance
	a.BalanceAfter = after
	return nil
}

func (a *AdjustmentCase) requirePending(action string) error {
	if a.Status != AdjustmentPending {
		return &apperrors.StateError{Entity: "adjustment", ID: a.AdjustmentID, Action: action, Current: string(a.Status)}
	}
	return nil
}

// CanModify reports an error unless the case may still be edited or deleted.
func (a *AdjustmentCase) CanModify(action string) error {
	return a.requirePending(action)
}

// Approve transitions Pending -> Approved and links the ledger entry it produced.
func (a *AdjustmentCase) Approve(approverID, ledgerEntryID string, now time.Time) error {
	if err := a.requirePending("approve"); err != nil {
		return err
	}
	a.Status = AdjustmentApproved
	a.ApprovedBy = &approverID
	a.ApprovedAt = &now
	a.LedgerEntryID = &ledgerEntryID
	a.Touch(approverID, now)
	return nil
}

// Reject transitions Pending -> Rejected. The ledger is untouched.
func (a *AdjustmentCase) Reject(actorID, reason string, now time.Time) error {
	if err := a.requirePending("reject"); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}
	a.Status = AdjustmentRejected
	a.RejectedBy = &actorID
	a.RejectedAt = &now
	a.RejectionReason = &reason
	a.Touch(actorID, now)
	return nil
}

// LedgerMovement splits the delta into the quantities of an Adjustment entry.
func (a *AdjustmentCase) LedgerMovement(approverID string, now time.Time) Movement {
	m := Movement{
		ItemID:          a.ItemID,
		Type:            Adjustment,
		TransactionDate: now,
		ReferenceNumber: a.AdjustmentNumber,
		Remarks:         a.Reason,
		ProcessedBy:     approverID,
	}
	if a.Delta > 0 {
		m.QuantityIn = a.Delta
	} else {
		m.QuantityOut = -a.Delta
	}
	return m
}
