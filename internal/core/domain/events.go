package domain

import "time"

// EventType names a committed change other systems may want to audit.
type EventType string

const (
	EventStockMovementRecorded EventType = "stock.movement_recorded"
	EventAdjustmentProposed    EventType = "adjustment.proposed"
	EventAdjustmentApproved    EventType = "adjustment.approved"
	EventAdjustmentRejected    EventType = "adjustment.rejected"
	EventAdjustmentDeleted     EventType = "adjustment.deleted"
	EventCountSubmitted        EventType = "count.submitted"
	EventCountVerified         EventType = "count.verified"
	EventItemMaterialized      EventType = "item.materialized"
	EventAssetTagged           EventType = "item.tagged"
	EventSequenceIssued        EventType = "sequence.issued"
)

// LedgerEvent is emitted after the unit of work that produced it commits.
type LedgerEvent struct {
	Type       EventType         `json:"type"`
	ActorID    string            `json:"actorID"`
	ItemID     string            `json:"itemID,omitempty"`
	EntityID   string            `json:"entityID"`
	Reference  string            `json:"reference,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}
