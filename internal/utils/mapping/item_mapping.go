package mapping

import (
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/models"
)

// ToModelItem converts a domain InventoryItem to a model InventoryItem
func ToModelItem(d domain.InventoryItem) models.InventoryItem {
	var usefulLife *int32
	if d.UsefulLifeYears != nil {
		v := int32(*d.UsefulLifeYears)
		usefulLife = &v
	}
	return models.InventoryItem{
		ItemID:             d.ItemID,
		ItemCode:           d.ItemCode,
		PropertyNumber:     d.PropertyNumber,
		SerialNumber:       d.SerialNumber,
		Name:               d.Name,
		Description:        d.Description,
		Category:           d.Category,
		UnitOfMeasure:      d.UnitOfMeasure,
		UnitCost:           d.UnitCost,
		BrandModel:         d.BrandModel,
		QuantityAtCreation: d.QuantityAtCreation,
		Condition:          string(d.Condition),
		Status:             string(d.Status),
		FundSource:         d.FundSource,
		Supplier:           d.Supplier,
		AcquisitionDate:    d.AcquisitionDate,
		DeliveryReference:  d.DeliveryReference,
		UsefulLifeYears:    usefulLife,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model InventoryItem to a domain InventoryItem
func ToDomainItem(m models.InventoryItem) domain.InventoryItem {
	var usefulLife *int
	if m.UsefulLifeYears != nil {
		v := int(*m.UsefulLifeYears)
		usefulLife = &v
	}
	return domain.InventoryItem{
		ItemID:             m.ItemID,
		ItemCode:           m.ItemCode,
		PropertyNumber:     m.PropertyNumber,
		SerialNumber:       m.SerialNumber,
		Name:               m.Name,
		Description:        m.Description,
		Category:           m.Category,
		UnitOfMeasure:      m.UnitOfMeasure,
		UnitCost:           m.UnitCost,
		BrandModel:         m.BrandModel,
		QuantityAtCreation: m.QuantityAtCreation,
		Condition:          domain.ItemCondition(m.Condition),
		Status:             domain.ItemStatus(m.Status),
		FundSource:         m.FundSource,
		Supplier:           m.Supplier,
		AcquisitionDate:    m.AcquisitionDate,
		DeliveryReference:  m.DeliveryReference,
		UsefulLifeYears:    usefulLife,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
