package dto

import (
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordMovementRequest defines one stock movement against an item.
type RecordMovementRequest struct {
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=RECEIPT ISSUE DONATION"`
	QuantityIn      int64                  `json:"quantityIn" binding:"min=0"`
	QuantityOut     int64                  `json:"quantityOut" binding:"min=0"`
	UnitCost        decimal.Decimal        `json:"unitCost"`
	TransactionDate *time.Time             `json:"transactionDate"`
	ReferenceNumber string                 `json:"referenceNumber" binding:"max=64"`
	Remarks         string                 `json:"remarks"`
}

// StockCardResponse defines the data returned for one ledger entry.
type StockCardResponse struct {
	EntryID         string                 `json:"entryID"`
	ItemID          string                 `json:"itemID"`
	EntryNo         int64                  `json:"entryNo"`
	TransactionDate time.Time              `json:"transactionDate"`
	TransactionType domain.TransactionType `json:"transactionType"`
	QuantityIn      int64                  `json:"quantityIn"`
	QuantityOut     int64                  `json:"quantityOut"`
	UnitCost        decimal.Decimal        `json:"unitCost"`
	Balance         int64                  `json:"balance"`
	ReferenceNumber string                 `json:"referenceNumber"`
	ProcessedBy     string                 `json:"processedBy"`
	Remarks         string                 `json:"remarks"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	ItemID  string     `json:"itemID"`
	Balance int64      `json:"balance"`
	AsOf    *time.Time `json:"asOf,omitempty"`
}

// BalanceParams defines query parameters for a balance query.
type BalanceParams struct {
	AsOf *time.Time `form:"asOf" time_format:"2006-01-02T15:04:05Z07:00"`
}

// ListStockCardParams defines query parameters for listing ledger entries.
type ListStockCardParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=0,max=200"`
	NextToken *string `form:"nextToken"`
}

// ListStockCardResponse wraps a page of entries.
type ListStockCardResponse struct {
	Entries   []StockCardResponse `json:"entries"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ToStockCardResponse converts a domain.StockCard to StockCardResponse DTO
func ToStockCardResponse(e *domain.StockCard) StockCardResponse {
	return StockCardResponse{
		EntryID:         e.EntryID,
		ItemID:          e.ItemID,
		EntryNo:         e.EntryNo,
		TransactionDate: e.TransactionDate,
		TransactionType: e.TransactionType,
		QuantityIn:      e.QuantityIn,
		QuantityOut:     e.QuantityOut,
		UnitCost:        e.UnitCost,
		Balance:         e.Balance,
		ReferenceNumber: e.ReferenceNumber,
		ProcessedBy:     e.ProcessedBy,
		Remarks:         e.Remarks,
		CreatedAt:       e.CreatedAt,
	}
}

// ToStockCardResponses converts a slice of domain.StockCard to []StockCardResponse.
func ToStockCardResponses(entries []domain.StockCard) []StockCardResponse {
	res := make([]StockCardResponse, len(entries))
	for i := range entries {
		res[i] = ToStockCardResponse(&entries[i])
	}
	return res
}
