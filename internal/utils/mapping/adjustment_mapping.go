package mapping

import (
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/models"
)

// ToModelAdjustment converts a domain AdjustmentCase to a model Adjustment
func ToModelAdjustment(d domain.AdjustmentCase) models.Adjustment {
	return models.Adjustment{
		AdjustmentID:     d.AdjustmentID,
		AdjustmentNumber: d.AdjustmentNumber,
		ItemID:           d.ItemID,
		AdjustmentType:   string(d.AdjustmentType),
		Delta:            d.Delta,
		Reason:           d.Reason,
		BalanceBefore:    d.BalanceBefore,
		BalanceAfter:     d.BalanceAfter,
		Status:           string(d.Status),
		PreparedBy:       d.PreparedBy,
		ApprovedBy:       d.ApprovedBy,
		ApprovedAt:       d.ApprovedAt,
		RejectedBy:       d.RejectedBy,
		RejectedAt:       d.RejectedAt,
		RejectionReason:  d.RejectionReason,
		LedgerEntryID:    d.LedgerEntryID,
		SourceCountID:    d.SourceCountID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdjustment converts a model Adjustment to a domain AdjustmentCase
func ToDomainAdjustment(m models.Adjustment) domain.AdjustmentCase {
	return domain.AdjustmentCase{
		AdjustmentID:     m.AdjustmentID,
		AdjustmentNumber: m.AdjustmentNumber,
		ItemID:           m.ItemID,
		AdjustmentType:   domain.AdjustmentType(m.AdjustmentType),
		Delta:            m.Delta,
		Reason:           m.Reason,
		BalanceBefore:    m.BalanceBefore,
		BalanceAfter:     m.BalanceAfter,
		Status:           domain.AdjustmentStatus(m.Status),
		PreparedBy:       m.PreparedBy,
		ApprovedBy:       m.ApprovedBy,
		ApprovedAt:       m.ApprovedAt,
		RejectedBy:       m.RejectedBy,
		RejectedAt:       m.RejectedAt,
		RejectionReason:  m.RejectionReason,
		LedgerEntryID:    m.LedgerEntryID,
		SourceCountID:    m.SourceCountID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
