// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryInUse is returned when deleting a category that still has businesses.
	ErrCategoryInUse = errors.New("category still referenced by businesses")
	// ErrDuplicateCategorySlug is returned when a category slug is already taken.
	ErrDuplicateCategorySlug = errors.New("category slug already exists")
)

// CategoryRepository defines the interface for category-related database operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindBySlug retrieves a category by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// ListAll retrieves every category ordered by the display sort key.
	ListAll(ctx context.Context) ([]*entity.Category, error)

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. Implementations must check the dependent
	// business count and the delete in the same transaction, returning
	// ErrCategoryInUse when the count is non-zero.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of categories.
	Count(ctx context.Context) (int64, error)
}
