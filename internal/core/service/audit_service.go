package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/api/metrics"
	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an InventoryRecorder that persists events to the
// audit collection.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.InventoryRecorder {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, event domain.InventoryEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record inventory event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues(event.Action).Inc()
	s.log.Debug().
		Str("product_id", event.ProductID).
		Str("action", event.Action).
		Str("actor_id", event.ActorID).
		Msg("inventory event recorded")

	return nil
}
