package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
)

// ProposeAdjustmentRequest defines the data needed to propose an adjustment.
type ProposeAdjustmentRequest struct {
	ItemID         string                `json:"itemID" binding:"required,uuid"`
	AdjustmentType domain.AdjustmentType `json:"adjustmentType" binding:"required,oneof=INCREASE DECREASE CORRECTION"`
	Delta          int64                 `json:"delta" binding:"required"`
	Reason         string                `json:"reason" binding:"required"`
}

// UpdateAdjustmentRequest defines the fields of a pending adjustment that may change.
type UpdateAdjustmentRequest struct {
	AdjustmentType *domain.AdjustmentType `json:"adjustmentType" binding:"omitempty,oneof=INCREASE DECREASE CORRECTION"`
	Delta          *int64                 `json:"delta"`
	Reason         *string                `json:"reason"`
}

// RejectAdjustmentRequest carries the mandatory rejection reason.
type RejectAdjustmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListAdjustmentsParams defines query parameters for listing adjustments.
type ListAdjustmentsParams struct {
	ItemID string `form:"itemID" binding:"omitempty,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Limit  int    `form:"limit,default=20" binding:"min=0,max=200"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// AdjustmentResponse defines the data returned for an adjustment case.
type AdjustmentResponse struct {
	AdjustmentID     string                  `json:"adjustmentID"`
	AdjustmentNumber string                  `json:"adjustmentNumber"`
	ItemID           string                  `json:"itemID"`
	AdjustmentType   domain.AdjustmentType   `json:"adjustmentType"`
	Delta            int64                   `json:"delta"`
	Reason           string                  `json:"reason"`
	BalanceBefore    int64                   `json:"balanceBefore"`
	BalanceAfter     int64                   `json:"balanceAfter"`
	Status           domain.AdjustmentStatus `json:"status"`
	PreparedBy       string                  `json:"preparedBy"`
	ApprovedBy       *string                 `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time              `json:"approvedAt,omitempty"`
	RejectedBy       *string                 `json:"rejectedBy,omitempty"`
	RejectedAt       *time.Time              `json:"rejectedAt,omitempty"`
	RejectionReason  *string                 `json:"rejectionReason,omitempty"`
	LedgerEntryID    *string                 `json:"ledgerEntryID,omitempty"`
	SourceCountID    *string                 `json:"sourceCountID,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
	LastUpdatedAt    time.Time               `json:"lastUpdatedAt"`
}

// ListAdjustmentsResponse wraps a page of adjustments.
type ListAdjustmentsResponse struct {
	Adjustments []AdjustmentResponse `json:"adjustments"`
}

// ToAdjustmentResponse converts a domain.AdjustmentCase to AdjustmentResponse DTO
func ToAdjustmentResponse(a *domain.AdjustmentCase) AdjustmentResponse {
	return AdjustmentResponse{
		AdjustmentID:     a.AdjustmentID,
		AdjustmentNumber: a.AdjustmentNumber,
		ItemID:           a.ItemID,
		AdjustmentType:   a.AdjustmentType,
		Delta:            a.Delta,
		Reason:           a.Reason,
		BalanceBefore:    a.BalanceBefore,
		BalanceAfter:     a.BalanceAfter,
		Status:           a.Status,
		PreparedBy:       a.PreparedBy,
		ApprovedBy:       a.ApprovedBy,
		ApprovedAt:       a.ApprovedAt,
		RejectedBy:       a.RejectedBy,
		RejectedAt:       a.RejectedAt,
		RejectionReason:  a.RejectionReason,
		LedgerEntryID:    a.LedgerEntryID,
		SourceCountID:    a.SourceCountID,
		CreatedAt:        a.CreatedAt,
		LastUpdatedAt:    a.LastUpdatedAt,
	}
}

// ToListAdjustmentsResponse converts a slice of domain.AdjustmentCase to a ListAdjustmentsResponse
func ToListAdjustmentsResponse(cases []domain.AdjustmentCase) ListAdjustmentsResponse {
	res := make([]AdjustmentResponse, len(cases))
	for i := range cases {
		res[i] = ToAdjustmentResponse(&cases[i])
	}
	return ListAdjustmentsResponse{Adjustments: res}
}
