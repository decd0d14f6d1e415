package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Rows are never deleted; the
// active flag implements soft delete so order items keep valid references.
type ProductModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL      string          `gorm:"type:varchar(512)"`
	StockQuantity int             `gorm:"not null;default:0"`
	Category      string          `gorm:"type:varchar(100);index"`
	Brand         string          `gorm:"type:varchar(100);index"`
	Active        bool            `gorm:"not null;default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
