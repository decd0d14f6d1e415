package repository

import (
	"context"
	"errors"

	"voltstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// List queries return active products only; soft-deleted rows stay in the
// table but are filtered out.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAllActive retrieves every active product.
	FindAllActive(ctx context.Context) ([]*entity.Product, error)

	// FindByCategoryActive retrieves the active products of a category.
	FindByCategoryActive(ctx context.Context, category string) ([]*entity.Product, error)

	// FindByBrandActive retrieves the active products of a brand.
	FindByBrandActive(ctx context.Context, brand string) ([]*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Save writes back every field of an existing product, including the
	// Active flag used for soft deletes.
	Save(ctx context.Context, product *entity.Product) error
}
