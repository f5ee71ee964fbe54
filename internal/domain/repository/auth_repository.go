package repository

import (
	"context"
	"errors"
	"time"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for credential persistence.
var (
	// ErrAuthNotFound is returned when no authentication record matches.
	ErrAuthNotFound = errors.New("authentication not found")
	// ErrRefreshTokenNotFound is returned when a refresh token is unknown or revoked.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// AuthRepository defines operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves an authentication record by provider and provider user ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new authentication record.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}

// RefreshTokenRepository defines operations for persisted session tokens.
type RefreshTokenRepository interface {
	// Create persists a new refresh token.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a refresh token by its hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash revokes a single refresh token.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes tokens that expired before the given time and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)

	// CountActiveByUser returns the number of unexpired tokens for a user.
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteOldestByUser removes the user's oldest tokens, keeping at most `keep`.
	DeleteOldestByUser(ctx context.Context, userID uuid.UUID, keep int) error
}
