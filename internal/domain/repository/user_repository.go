// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// List retrieves a page of users ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error)

	// SetBanned toggles the banned flag on a user account.
	SetBanned(ctx context.Context, id uuid.UUID, banned bool) error

	// AddFavorite records a favorite relation between a user and a business.
	// Adding an existing favorite is a no-op.
	AddFavorite(ctx context.Context, userID, businessID uuid.UUID) error

	// RemoveFavorite removes a favorite relation if present.
	RemoveFavorite(ctx context.Context, userID, businessID uuid.UUID) error

	// FindFavorites retrieves the businesses a user has favorited, newest first.
	FindFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Business, error)

	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}
