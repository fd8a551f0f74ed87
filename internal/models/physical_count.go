package models

import "time"

// PhysicalCount is the row shape of physical_counts.
type PhysicalCount struct {
	CountID        string     `db:"count_id"`
	CountNumber    string     `db:"count_number"`
	ItemID         string     `db:"item_id"`
	CountDate      time.Time  `db:"count_date"`
	SystemQuantity int64      `db:"system_quantity"`
	ActualQuantity int64      `db:"actual_quantity"`
	Variance       int64      `db:"variance"`
	VarianceType   string     `db:"variance_type"`
	CountedBy      string     `db:"counted_by"`
	VerifiedBy     *string    `db:"verified_by"`
	VerifiedAt     *time.Time `db:"verified_at"`
	Status         string     `db:"status"`
	Remarks        string     `db:"remarks"`
	AuditFields
}
