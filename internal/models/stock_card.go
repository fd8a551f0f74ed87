package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockCard is the row shape of stock_cards. Rows are append-only.
type StockCard struct {
	EntryID         string          `db:"entry_id"`
	ItemID          string          `db:"item_id"`
	EntryNo         int64           `db:"entry_no"`
	TransactionDate time.Time       `db:"transaction_date"`
	TransactionType string          `db:"transaction_type"`
	QuantityIn      int64           `db:"quantity_in"`
	QuantityOut     int64           `db:"quantity_out"`
	UnitCost        decimal.Decimal `db:"unit_cost"`
	Balance         int64           `db:"balance"`
	ReferenceNumber string          `db:"reference_number"`
	ProcessedBy     string          `db:"processed_by"`
	Remarks         string          `db:"remarks"`
	CreatedAt       time.Time       `db:"created_at"`
}
