// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Role is a single flat permission level;
// registering as an owner upgrades an existing user account in place.
type User struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email      string    // The user's primary contact email, used as a login identifier.
	Name       string    // The user's display name.
	Role       Role      // The account's permission level.
	Banned     bool      // Banned users keep their data but fail every mutating capability check.
	IsVerified bool      // Whether the user's email has been verified.
	CreatedAt  time.Time // Timestamp of when this account was created.
	UpdatedAt  time.Time // Timestamp of the last modification to this user's data.
}
