package usecase

import (
	"context"

	"voltstore/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderItemInput is one line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	UserID uuid.UUID        `json:"userId" validate:"required"`
	Items  []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

// OrderUsecase defines order operations. Placing an order captures each
// product's current price so later catalog changes do not affect it.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
