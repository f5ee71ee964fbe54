// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business is not found.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrDuplicateSlug is returned when a slug is already taken.
	ErrDuplicateSlug = errors.New("business slug already exists")
)

// BusinessFilter narrows List queries. Zero values mean "no constraint".
type BusinessFilter struct {
	// Statuses restricts results to the given moderation states. Public
	// listing queries pass exactly {approved}.
	Statuses []entity.BusinessStatus

	CategorySlug string
	City         string
	// Query matches name and description case-insensitively.
	Query    string
	OwnerID  uuid.UUID
	Featured *bool

	// Sort is one of "rating", "newest", "name". Empty defaults to "newest".
	Sort string

	Offset int
	Limit  int
}

// StatusCounts holds per-status business totals for dashboards.
type StatusCounts map[entity.BusinessStatus]int64

// BusinessRepository defines the interface for business-related database operations.
type BusinessRepository interface {
	// Create persists a new business listing.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindBySlug retrieves a business by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Business, error)

	// SlugExists reports whether a slug is already taken.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// List retrieves a filtered page of businesses together with the total
	// match count before paging.
	List(ctx context.Context, filter BusinessFilter) ([]*entity.Business, int64, error)

	// Update modifies a business's content fields.
	Update(ctx context.Context, business *entity.Business) error

	// UpdateStatus performs a guarded state transition: the row is updated
	// only while its current status equals `from`. It returns the number of
	// rows changed so callers can distinguish a lost race (0 on an existing
	// row) from a missing row.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BusinessStatus, rejectionReason string) (int64, error)

	// Delete soft-deletes a business.
	Delete(ctx context.Context, id uuid.UUID) error

	// RecalculateRating refreshes the cached averageRating/reviewCount
	// columns from the review table. It must be called inside the same
	// transaction as the review mutation it follows.
	RecalculateRating(ctx context.Context, businessID uuid.UUID) error

	// IncrementViewCount adds delta page views to a business.
	IncrementViewCount(ctx context.Context, id uuid.UUID, delta int64) error

	// CountByCategory returns the number of businesses referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// CountByStatus returns per-status totals, optionally scoped to one owner
	// (pass uuid.Nil for the whole platform).
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (StatusCounts, error)
}
