package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateItemRequest defines the data needed to enter an item directly into the catalog.
type CreateItemRequest struct {
	Name            string               `json:"name" binding:"required"`
	Description     string               `json:"description"`
	Category        string               `json:"category"` // Optional: classified from description when empty
	UnitOfMeasure   string               `json:"unitOfMeasure" binding:"required"`
	UnitCost        decimal.Decimal      `json:"unitCost"`
	BrandModel      string               `json:"brandModel"`
	Condition       domain.ItemCondition `json:"condition" binding:"omitempty,oneof=SERVICEABLE UNSERVICEABLE FOR_REPAIR CONDEMNED"`
	FundSource      string               `json:"fundSource"`
	Supplier        string               `json:"supplier"`
	AcquisitionDate *time.Time           `json:"acquisitionDate"`
	SerialNumber    *string              `json:"serialNumber"`
}

// UpdateItemRequest defines the catalog attributes that may be edited.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateItemRequest struct {
	Name          *string               `json:"name"`
	Description   *string               `json:"description"`
	UnitOfMeasure *string               `json:"unitOfMeasure"`
	UnitCost      *decimal.Decimal      `json:"unitCost"`
	BrandModel    *string               `json:"brandModel"`
	Condition     *domain.ItemCondition `json:"condition" binding:"omitempty,oneof=SERVICEABLE UNSERVICEABLE FOR_REPAIR CONDEMNED"`
	Status        *domain.ItemStatus    `json:"status" binding:"omitempty,oneof=ACTIVE DISPOSED LOST"`
	FundSource    *string               `json:"fundSource"`
	Supplier      *string               `json:"supplier"`
}

// ListItemsParams defines query parameters for listing items.
type ListItemsParams struct {
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=ACTIVE DISPOSED LOST"`
	Search   string `form:"q"`
	Limit    int    `form:"limit,default=20" binding:"min=0,max=200"`
	Offset   int    `form:"offset,default=0" binding:"min=0"`
}

// ItemResponse defines the data returned for an inventory item.
type ItemResponse struct {
	ItemID             string               `json:"itemID"`
	ItemCode           string               `json:"itemCode"`
	PropertyNumber     *string              `json:"propertyNumber,omitempty"`
	SerialNumber       *string              `json:"serialNumber,omitempty"`
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	Category           string               `json:"category"`
	RequiresTagging    bool                 `json:"requiresTagging"`
	UnitOfMeasure      string               `json:"unitOfMeasure"`
	UnitCost           decimal.Decimal      `json:"unitCost"`
	BrandModel         string               `json:"brandModel"`
	QuantityAtCreation int64                `json:"quantityAtCreation"`
	Condition          domain.ItemCondition `json:"condition"`
	Status             domain.ItemStatus    `json:"status"`
	FundSource         string               `json:"fundSource"`
	Supplier           string               `json:"supplier"`
	AcquisitionDate    time.Time            `json:"acquisitionDate"`
	DeliveryReference  string               `json:"deliveryReference,omitempty"`
	UsefulLifeYears    *int                 `json:"usefulLifeYears,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	CreatedBy          string               `json:"createdBy"`
	LastUpdatedAt      time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy      string               `json:"lastUpdatedBy"`
}

// ListItemsResponse wraps a page of items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain.InventoryItem to ItemResponse DTO
func ToItemResponse(item *domain.InventoryItem) ItemResponse {
	return ItemResponse{
		ItemID:             item.ItemID,
		ItemCode:           item.ItemCode,
		PropertyNumber:     item.PropertyNumber,
		SerialNumber:       item.SerialNumber,
		Name:               item.Name,
		Description:        item.Description,
		Category:           item.Category,
		RequiresTagging:    item.RequiresTagging(),
		UnitOfMeasure:      item.UnitOfMeasure,
		UnitCost:           item.UnitCost,
		BrandModel:         item.BrandModel,
		QuantityAtCreation: item.QuantityAtCreation,
		Condition:          item.Condition,
		Status:             item.Status,
		FundSource:         item.FundSource,
		Supplier:           item.Supplier,
		AcquisitionDate:    item.AcquisitionDate,
		DeliveryReference:  item.DeliveryReference,
		UsefulLifeYears:    item.UsefulLifeYears,
		CreatedAt:          item.CreatedAt,
		CreatedBy:          item.CreatedBy,
		LastUpdatedAt:      item.LastUpdatedAt,
		LastUpdatedBy:      item.LastUpdatedBy,
	}
}

// ToListItemsResponse converts a slice of domain.InventoryItem to a ListItemsResponse
func ToListItemsResponse(items []domain.InventoryItem) ListItemsResponse {
	res := make([]ItemResponse, len(items))
	for i := range items {
		res[i] = ToItemResponse(&items[i])
	}
	return ListItemsResponse{Items: res}
}
