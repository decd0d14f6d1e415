// Package response defines the JSON bodies returned by the HTTP API and the
// mappers that build them from domain entities.
package response

import (
	"time"

	"voltstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every failed request.
type Error struct {
	Error string `json:"error"`
}

// User is a user record with the credential material stripped.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Roles    []string  `json:"roles"`
}

// Auth is the body returned by registration and login.
type Auth struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Product is a catalog entry.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageUrl"`
	StockQuantity int             `json:"stockQuantity"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	Active        bool            `json:"active"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"productId"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
}

// Order is a placed order with its line items.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Items       []OrderItem     `json:"items"`
	OrderDate   time.Time       `json:"orderDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
}

// FromUser maps a user entity to its response body. The password hash never
// leaves the server.
func FromUser(user *entity.User) User {
	return User{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.Roles.ToStrings(),
	}
}

// FromAuth maps an auth result to its response body.
func FromAuth(token string, user *entity.User) Auth {
	return Auth{
		Token: token,
		User:  FromUser(user),
	}
}

// FromProduct maps a product entity to its response body.
func FromProduct(product *entity.Product) Product {
	return Product{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		ImageURL:      product.ImageURL,
		StockQuantity: product.StockQuantity,
		Category:      product.Category,
		Brand:         product.Brand,
		Active:        product.Active,
	}
}

// FromProducts maps a product list to its response body.
func FromProducts(products []*entity.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromProduct(product))
	}

	return out
}

// FromOrder maps an order entity to its response body.
func FromOrder(order *entity.Order) Order {
	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{
			ID:              item.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	return Order{
		ID:          order.ID,
		UserID:      order.UserID,
		Items:       items,
		OrderDate:   order.OrderDate,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
	}
}

// FromOrders maps an order list to its response body.
func FromOrders(orders []*entity.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromOrder(order))
	}

	return out
}
