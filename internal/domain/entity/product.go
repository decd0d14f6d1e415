// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Products are never hard-deleted; removing one
// from the catalog clears the Active flag so existing orders keep their
// references.
type Product struct {
	ID            uuid.UUID       // The unique identifier for the product.
	Name          string          // Display name of the product.
	Description   string          // Free-form product description.
	Price         decimal.Decimal // Unit price. Decimal to avoid float rounding on money.
	ImageURL      string          // Optional URL of the product image.
	StockQuantity int             // Units currently in stock.
	Category      string          // Catalog category, e.g. "laptops".
	Brand         string          // Manufacturer brand, e.g. "Acme".
	Active        bool            // False once the product is soft-deleted.
	CreatedAt     time.Time       // Timestamp of when this product was created.
	UpdatedAt     time.Time       // Timestamp of the last modification.
}
