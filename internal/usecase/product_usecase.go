package usecase

import (
	"context"

	"voltstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput defines the fields of a product create or full update.
type ProductInput struct {
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	ImageURL      string          `json:"imageUrl"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	Category      string          `json:"category" validate:"required"`
	Brand         string          `json:"brand" validate:"required"`
	Active        *bool           `json:"active"`
}

// ProductUsecase defines catalog operations. Delete is a soft delete: the row
// stays but drops out of every listing.
type ProductUsecase interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	ListByBrand(ctx context.Context, brand string) ([]*entity.Product, error)
	Create(ctx context.Context, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
