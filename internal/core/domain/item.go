package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemCondition is the physical condition of an inventory item.
type ItemCondition string

const (
	ConditionServiceable   ItemCondition = "SERVICEABLE"
	ConditionUnserviceable ItemCondition = "UNSERVICEABLE"
	ConditionForRepair     ItemCondition = "FOR_REPAIR"
	ConditionCondemned     ItemCondition = "CONDEMNED"
)

// IsValid reports whether c is a known condition.
func (c ItemCondition) IsValid() bool {
	switch c {
	case ConditionServiceable, ConditionUnserviceable, ConditionForRepair, ConditionCondemned:
		return true
	}
	return false
}

// ItemStatus is the lifecycle status of an inventory item record.
type ItemStatus string

const (
	ItemActive   ItemStatus = "ACTIVE"
	ItemDisposed ItemStatus = "DISPOSED"
	ItemLost     ItemStatus = "LOST"
)

// IsValid reports whether s is a known status.
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemActive, ItemDisposed, ItemLost:
		return true
	}
	return false
}

// InventoryItem is a catalog record. It never holds the authoritative balance;
// the stock ledger does.
type InventoryItem struct {
	ItemID             string          `json:"itemID"`
	ItemCode           string          `json:"itemCode"`
	PropertyNumber     *string         `json:"propertyNumber,omitempty"`
	SerialNumber       *string         `json:"serialNumber,omitempty"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	UnitOfMeasure      string          `json:"unitOfMeasure"`
	UnitCost           decimal.Decimal `json:"unitCost"`
	BrandModel         string          `json:"brandModel"`
	QuantityAtCreation int64           `json:"quantityAtCreation"`
	Condition          ItemCondition   `json:"condition"`
	Status             ItemStatus      `json:"status"`
	FundSource         string          `json:"fundSource"`
	Supplier           string          `json:"supplier"`
	AcquisitionDate    time.Time       `json:"acquisitionDate"`
	DeliveryReference  string          `json:"deliveryReference"`
	UsefulLifeYears    *int            `json:"usefulLifeYears,omitempty"`
	AuditFields
}

// RequiresTagging reports whether the item's category is tracked as a durable asset.
func (i InventoryItem) RequiresTagging() bool {
	return RequiresTagging(i.Category)
}

// HasPropertyNumber reports whether a property number has been assigned.
func (i InventoryItem) HasPropertyNumber() bool {
	return i.PropertyNumber != nil && *i.PropertyNumber != ""
}

// DeliveryLine is one received line supplied by the receiving collaborator.
type DeliveryLine struct {
	Description     string
	UnitPrice       decimal.Decimal
	BrandModel      string
	UnitOfMeasure   string
	Quantity        int64
	FundSource      string
	Supplier        string
	DeliveryDate    time.Time
	ReferenceNumber string
}
