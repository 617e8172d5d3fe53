package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// AuditRepository persists inventory events to the audit collection.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.InventoryEvent) error
}

// InventoryRecorder processes a single inventory event off the queue.
type InventoryRecorder interface {
	Record(ctx context.Context, event domain.InventoryEvent) error
}
