package repository

import (
	"context"
	"errors"

	"voltstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order, including its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves every order placed by the given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByStatus retrieves every order currently in the given status.
	FindByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error)

	// Create persists a new order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// Save writes back an existing order, typically after a status change.
	Save(ctx context.Context, order *entity.Order) error
}
