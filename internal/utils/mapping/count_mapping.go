package mapping

import (
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/models"
)

// ToModelCount converts a domain PhysicalCount to a model PhysicalCount
func ToModelCount(d domain.PhysicalCount) models.PhysicalCount {
	return models.PhysicalCount{
		CountID:        d.CountID,
		CountNumber:    d.CountNumber,
		ItemID:         d.ItemID,
		CountDate:      d.CountDate,
		SystemQuantity: d.SystemQuantity,
		ActualQuantity: d.ActualQuantity,
		Variance:       d.Variance,
		VarianceType:   string(d.VarianceType),
		CountedBy:      d.CountedBy,
		VerifiedBy:     d.VerifiedBy,
		VerifiedAt:     d.VerifiedAt,
		Status:         string(d.Status),
		Remarks:        d.Remarks,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCount converts a model PhysicalCount to a domain PhysicalCount
func ToDomainCount(m models.PhysicalCount) domain.PhysicalCount {
	return domain.PhysicalCount{
		CountID:        m.CountID,
		CountNumber:    m.CountNumber,
		ItemID:         m.ItemID,
		CountDate:      m.CountDate,
		SystemQuantity: m.SystemQuantity,
		ActualQuantity: m.ActualQuantity,
		Variance:       m.Variance,
		VarianceType:   domain.VarianceType(m.VarianceType),
		CountedBy:      m.CountedBy,
		VerifiedBy:     m.VerifiedBy,
		VerifiedAt:     m.VerifiedAt,
		Status:         domain.CountStatus(m.Status),
		Remarks:        m.Remarks,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
