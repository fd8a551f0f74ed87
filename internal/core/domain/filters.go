package domain

// ItemFilter narrows catalog listings.
type ItemFilter struct {
	Category string
	Status   ItemStatus
	Search   string
	Limit    int
	Offset   int
}

// AdjustmentFilter narrows adjustment listings.
type AdjustmentFilter struct {
	ItemID string
	Status AdjustmentStatus
	Limit  int
	Offset int
}

// CountFilter narrows physical count listings.
type CountFilter struct {
	ItemID string
	Status CountStatus
	Limit  int
	Offset int
}

// LedgerAudit is the result of verifying one item's stock card.
type LedgerAudit struct {
	ItemID     string           `json:"itemID"`
	Entries    int              `json:"entries"`
	Balance    int64            `json:"balance"`
	Violations []ChainViolation `json:"violations"`
}

// Healthy reports whether the chain had no violations.
func (a LedgerAudit) Healthy() bool {
	return len(a.Violations) == 0
}
