// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the identity collaborator. The workflow layer only reads its ID, email and role.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier and default notification address.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash of the password.
	Role         Role      // Either RoleBusiness or RoleAdmin.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may act on the administrative side.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
