package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// ProductPatch is a partial update: nil fields are left unchanged.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Category    *string
	Quantity    *int
	Description *string
}

// ProductRepository defines persistence operations for products.
// Every method taking an id returns domain.ErrInvalidProductID when the id
// is not well formed for the store's identifier scheme, before any lookup,
// and domain.ErrProductNotFound when no record matches.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns one page of products plus the unpaginated total count.
	List(ctx context.Context, page, limit int) ([]*domain.Product, int64, error)
	// UpdateByID applies the patch and returns the full updated record.
	UpdateByID(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	// DeleteByID removes the record and returns it as it existed before deletion.
	DeleteByID(ctx context.Context, id string) (*domain.Product, error)
}
