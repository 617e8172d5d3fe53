package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/api/metrics"
	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ProductCache abstracts the read-through cache (Redis). A cache failure is
// never fatal: the service falls back to the repository.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, bool, error)
	Set(ctx context.Context, p *domain.Product) error
	Invalidate(ctx context.Context, id string) error
}

// EventSink receives inventory events for asynchronous audit persistence.
type EventSink interface {
	Enqueue(event domain.InventoryEvent)
}

// ProductService implements the catalog use cases: paginated listing and
// admin-gated CRUD with an audit trail on every mutation.
type ProductService struct {
	repo  ports.ProductRepository
	cache ProductCache
	sink  EventSink
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ProductCache, sink EventSink, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, sink: sink, log: log}
}

// List returns one page of products. Page defaults to 1, limit to 10, and
// limit is capped at 100 so a caller cannot request an unbounded page.
func (s *ProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	page := in.Page
	if page < 1 {
		page = defaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	products, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ProductPage{
		Products:    products,
		TotalPages:  totalPages,
		CurrentPage: page,
		TotalItems:  total,
		Limit:       limit,
	}, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if cached, hit, err := s.cache.Get(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("product_id", id).Msg("cache read failed, falling back to store")
	} else if hit {
		metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, product); err != nil {
		s.log.Warn().Err(err).Str("product_id", id).Msg("cache write failed")
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	category := in.Category
	if category == "" {
		category = domain.CategoryOther
	}

	product := &domain.Product{
		Name:        in.Name,
		Price:       in.Price,
		Category:    category,
		Quantity:    in.Quantity,
		Description: in.Description,
	}

	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.emit(created.ID, domain.ActionCreated, in.ActorID)
	s.log.Info().Str("product_id", created.ID).Str("category", created.Category).Msg("product created")

	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	updated, err := s.repo.UpdateByID(ctx, id, in.Patch)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("product_id", id).Msg("cache invalidation failed")
	}

	metrics.ProductsUpdatedTotal.Inc()
	s.emit(id, domain.ActionUpdated, in.ActorID)
	s.log.Info().Str("product_id", id).Msg("product updated")

	return updated, nil
}

// Delete removes the product and returns it as it existed before deletion.
func (s *ProductService) Delete(ctx context.Context, id, actorID string) (*domain.Product, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("product_id", id).Msg("cache invalidation failed")
	}

	metrics.ProductsDeletedTotal.Inc()
	s.emit(id, domain.ActionDeleted, actorID)
	s.log.Info().Str("product_id", id).Msg("product deleted")

	return deleted, nil
}

func (s *ProductService) emit(productID, action, actorID string) {
	s.sink.Enqueue(domain.InventoryEvent{
		ProductID: productID,
		Action:    action,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
}
