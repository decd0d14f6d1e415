// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record of the store. Username and email are each
// globally unique; the database enforces both constraints.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Login identifier. Immutable after registration.
	Email        string    // The user's contact email, also unique.
	PasswordHash string    // The bcrypt hash of the password. The plaintext is never stored.
	Roles        Roles     // The user's role set. Non-empty after registration.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	return u.Roles.Contains(role)
}
