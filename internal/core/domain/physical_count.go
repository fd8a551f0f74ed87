package domain

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
)

// VarianceType classifies the sign of a count variance.
type VarianceType string

const (
	Shortage VarianceType = "SHORTAGE"
	Overage  VarianceType = "OVERAGE"
	Match    VarianceType = "MATCH"
)

// ClassifyVariance returns Shortage for negative, Overage for positive and Match for zero.
func ClassifyVariance(variance int64) VarianceType {
	switch {
	case variance < 0:
		return Shortage
	case variance > 0:
		return Overage
	default:
		return Match
	}
}

// CountStatus is the state of a physical count. Verified is terminal.
type CountStatus string

const (
	CountSubmitted CountStatus = "SUBMITTED"
	CountVerified  CountStatus = "VERIFIED"
)

// PhysicalCount is a manual count compared against the ledger balance captured
// when the count was submitted.
type PhysicalCount struct {
	CountID        string       `json:"countID"`
	CountNumber    string       `json:"countNumber"`
	ItemID         string       `json:"itemID"`
	CountDate      time.Time    `json:"countDate"`
	SystemQuantity int64        `json:"systemQuantity"`
	ActualQuantity int64        `json:"actualQuantity"`
	Variance       int64        `json:"variance"`
	VarianceType   VarianceType `json:"varianceType"`
	CountedBy      string       `json:"countedBy"`
	VerifiedBy     *string      `json:"verifiedBy,omitempty"`
	VerifiedAt     *time.Time   `json:"verifiedAt,omitempty"`
	Status         CountStatus  `json:"status"`
	Remarks        string       `json:"remarks"`
	AuditFields
}

// Reconcile stores the system and actual quantities and derives the variance.
func (c *PhysicalCount) Reconcile(systemQuantity, actualQuantity int64) {
	c.SystemQuantity = systemQuantity
	c.ActualQuantity = actualQuantity
	c.Variance = actualQuantity - systemQuantity
	c.VarianceType = ClassifyVariance(c.Variance)
}

// Verify transitions Submitted -> Verified. The system quantity is not re-read.
func (c *PhysicalCount) Verify(verifierID string, now time.Time) error {
	if c.Status != CountSubmitted {
		return &apperrors.StateError{Entity: "physical count", ID: c.CountID, Action: "verify", Current: string(c.Status)}
	}
	c.Status = CountVerified
	c.VerifiedBy = &verifierID
	c.VerifiedAt = &now
	c.Touch(verifierID, now)
	return nil
}
