package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is the row shape of inventory_items.
type InventoryItem struct {
	ItemID             string          `db:"item_id"`
	ItemCode           string          `db:"item_code"`
	PropertyNumber     *string         `db:"property_number"` // Nullable, unique when set
	SerialNumber       *string         `db:"serial_number"`   // Nullable
	Name               string          `db:"name"`
	Description        string          `db:"description"`
	Category           string          `db:"category"`
	UnitOfMeasure      string          `db:"unit_of_measure"`
	UnitCost           decimal.Decimal `db:"unit_cost"`
	BrandModel         string          `db:"brand_model"`
	QuantityAtCreation int64           `db:"quantity_at_creation"`
	Condition          string          `db:"condition"`
	Status             string          `db:"status"`
	FundSource         string          `db:"fund_source"`
	Supplier           string          `db:"supplier"`
	AcquisitionDate    time.Time       `db:"acquisition_date"`
	DeliveryReference  string          `db:"delivery_reference"`
	UsefulLifeYears    *int32          `db:"useful_life_years"` // Nullable
	AuditFields
}
