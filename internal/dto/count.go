package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
)

// SubmitCountRequest defines the data captured by a physical count.
type SubmitCountRequest struct {
	ItemID         string     `json:"itemID" binding:"required,uuid"`
	ActualQuantity *int64     `json:"actualQuantity" binding:"required,min=0"`
	CountDate      *time.Time `json:"countDate"`
	Remarks        string     `json:"remarks"`
}

// ListCountsParams defines query parameters for listing physical counts.
type ListCountsParams struct {
	ItemID string `form:"itemID" binding:"omitempty,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=SUBMITTED VERIFIED"`
	Limit  int    `form:"limit,default=20" binding:"min=0,max=200"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// CountResponse defines the data returned for a physical count.
type CountResponse struct {
	CountID        string              `json:"countID"`
	CountNumber    string              `json:"countNumber"`
	ItemID         string              `json:"itemID"`
	CountDate      time.Time           `json:"countDate"`
	SystemQuantity int64               `json:"systemQuantity"`
	ActualQuantity int64               `json:"actualQuantity"`
	Variance       int64               `json:"variance"`
	VarianceType   domain.VarianceType `json:"varianceType"`
	CountedBy      string              `json:"countedBy"`
	VerifiedBy     *string             `json:"verifiedBy,omitempty"`
	VerifiedAt     *time.Time          `json:"verifiedAt,omitempty"`
	Status         domain.CountStatus  `json:"status"`
	Remarks        string              `json:"remarks"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// ListCountsResponse wraps a page of counts.
type ListCountsResponse struct {
	Counts []CountResponse `json:"counts"`
}

// ToCountResponse converts a domain.PhysicalCount to CountResponse DTO
func ToCountResponse(c *domain.PhysicalCount) CountResponse {
	return CountResponse{
		CountID:        c.CountID,
		CountNumber:    c.CountNumber,
		ItemID:         c.ItemID,
		CountDate:      c.CountDate,
		SystemQuantity: c.SystemQuantity,
		ActualQuantity: c.ActualQuantity,
		Variance:       c.Variance,
		VarianceType:   c.VarianceType,
		CountedBy:      c.CountedBy,
		VerifiedBy:     c.VerifiedBy,
		VerifiedAt:     c.VerifiedAt,
		Status:         c.Status,
		Remarks:        c.Remarks,
		CreatedAt:      c.CreatedAt,
	}
}

// ToListCountsResponse converts a slice of domain.PhysicalCount to a ListCountsResponse
func ToListCountsResponse(counts []domain.PhysicalCount) ListCountsResponse {
	res := make([]CountResponse, len(counts))
	for i := range counts {
		res[i] = ToCountResponse(&counts[i])
	}
	return ListCountsResponse{Counts: res}
}
