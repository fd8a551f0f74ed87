package models

import "time"

// Adjustment is the row shape of adjustments.
type Adjustment struct {
	AdjustmentID     string     `db:"adjustment_id"`
	AdjustmentNumber string     `db:"adjustment_number"`
	ItemID           string     `db:"item_id"`
	AdjustmentType   string     `db:"adjustment_type"`
	Delta            int64      `db:"delta"`
	Reason           string     `db:"reason"`
	BalanceBefore    int64      `db:"balance_before"`
	BalanceAfter     int64      `db:"balance_after"`
	Status           string     `db:"status"`
	PreparedBy       string     `db:"prepared_by"`
	ApprovedBy       *string    `db:"approved_by"`
	ApprovedAt       *time.Time `db:"approved_at"`
	RejectedBy       *string    `db:"rejected_by"`
	RejectedAt       *time.Time `db:"rejected_at"`
	RejectionReason  *string    `db:"rejection_reason"`
	LedgerEntryID    *string    `db:"ledger_entry_id"`
	SourceCountID    *string    `db:"source_count_id"`
	AuditFields
}
