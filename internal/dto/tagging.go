package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaterializeDeliveryRequest is one received delivery line to turn into an inventory record.
type MaterializeDeliveryRequest struct {
	Description     string          `json:"description" binding:"required"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	BrandModel      string          `json:"brandModel"`
	UnitOfMeasure   string          `json:"unitOfMeasure"`
	Quantity        int64           `json:"quantity" binding:"required,min=1"`
	FundSource      string          `json:"fundSource"`
	Supplier        string          `json:"supplier"`
	DeliveryDate    time.Time       `json:"deliveryDate" binding:"required"`
	ReferenceNumber string          `json:"referenceNumber" binding:"required,max=64"`
}

// ToDeliveryLine converts the request into the line the tagging service materializes.
func (r MaterializeDeliveryRequest) ToDeliveryLine() domain.DeliveryLine {
	return domain.DeliveryLine{
		Description:     r.Description,
		UnitPrice:       r.UnitPrice,
		BrandModel:      r.BrandModel,
		UnitOfMeasure:   r.UnitOfMeasure,
		Quantity:        r.Quantity,
		FundSource:      r.FundSource,
		Supplier:        r.Supplier,
		DeliveryDate:    r.DeliveryDate,
		ReferenceNumber: r.ReferenceNumber,
	}
}

// AssignTagRequest carries optional serial and property numbers for an item.
type AssignTagRequest struct {
	SerialNumber   *string `json:"serialNumber" binding:"omitempty,max=128"`
	PropertyNumber *string `json:"propertyNumber" binding:"omitempty,propertynumber"`
}

// ClassifyRequest carries a line item description.
type ClassifyRequest struct {
	Description string `json:"description" binding:"required"`
}

// ClassifyResponse reports the derived category.
type ClassifyResponse struct {
	Category        string `json:"category"`
	RequiresTagging bool   `json:"requiresTagging"`
}
