package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies the credential provider of an authentication record.
type ProviderType string

const (
	// ProviderTypeEmail indicates email and password credentials.
	ProviderTypeEmail ProviderType = "email"
)

// Authentication links a user account to a set of credentials.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // The identifier at the provider; the email address for email auth.
	PasswordHash   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken is a persisted, revocable session token.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the opaque token; the raw value is never stored.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the refresh token has passed its expiry.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
