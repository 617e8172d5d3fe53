package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new product. Category and
// Quantity are optional; the service applies the defaults ("Other", 0).
type CreateProductInput struct {
	Name        string
	Price       float64
	Category    string
	Quantity    int
	Description string
	// ActorID identifies the admin performing the mutation (audit trail).
	ActorID string
}

// UpdateProductInput is a partial update plus the acting admin.
type UpdateProductInput struct {
	Patch   ProductPatch
	ActorID string
}

// ListProductsInput carries pagination parameters. Zero values mean
// "use the defaults" (page 1, limit 10).
type ListProductsInput struct {
	Page  int
	Limit int
}

// ProductPage is one page of the catalog with pagination metadata.
type ProductPage struct {
	Products    []*domain.Product
	TotalPages  int
	CurrentPage int
	TotalItems  int64
	Limit       int
}

// ProductService defines the catalog use cases.
type ProductService interface {
	List(ctx context.Context, in ListProductsInput) (*ProductPage, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id, actorID string) (*domain.Product, error)
}
