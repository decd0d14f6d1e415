// Package model holds the GORM persistence models. They mirror database
// tables and are mapped to and from the pure domain entities by the
// repositories; nothing outside the persistence layer touches them.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. The unique constraints on username and
// email are the final guard against concurrent duplicate registrations.
type UserModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Username     string                      `gorm:"type:varchar(100);unique;not null"`
	Email        string                      `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string                      `gorm:"type:varchar(255);not null"`
	Roles        datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
