package domain

import "time"

// Inventory event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// InventoryEvent records a single product mutation for the audit trail.
type InventoryEvent struct {
	ProductID string
	Action    string
	ActorID   string
	Timestamp time.Time
}
