// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a purchase made by a user. TotalAmount is the sum of
// quantity * price-at-purchase over all items and is fixed when the
// order is placed.
type Order struct {
	ID          uuid.UUID       // The unique identifier for the order.
	UserID      uuid.UUID       // The user who placed the order.
	Items       []*OrderItem    // The line items of the order. Never empty.
	OrderDate   time.Time       // When the order was placed.
	TotalAmount decimal.Decimal // Sum of all line totals at purchase time.
	Status      OrderStatus     // Current lifecycle state.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is a single line of an order. PriceAtPurchase captures the
// product price at the moment the order was placed, so later catalog price
// changes do not rewrite order history.
type OrderItem struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	ProductID       uuid.UUID
	Quantity        int
	PriceAtPurchase decimal.Decimal
}

// LineTotal returns quantity * price-at-purchase for this item.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
