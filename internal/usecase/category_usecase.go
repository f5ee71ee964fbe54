package usecase

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/domain/policy"

	"github.com/google/uuid"
)

// CategoryInput carries the admin-supplied fields of a category.
type CategoryInput struct {
	Name        string `validate:"required,min=2,max=50"`
	Description string
	Icon        string
	Color       string
	Order       int
}

// CategoryUsecase defines category management use cases. Reads are public;
// writes are admin only.
type CategoryUsecase interface {
	// Create inserts a new category with a slug derived from its name.
	Create(ctx context.Context, caller policy.Caller, input *CategoryInput) (*entity.Category, error)

	// Update modifies an existing category. The slug is not recomputed.
	Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *CategoryInput) (*entity.Category, error)

	// Delete removes a category; fails with a conflict while businesses
	// still reference it.
	Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error

	// List retrieves every category ordered by the display sort key.
	List(ctx context.Context) ([]*entity.Category, error)

	// GetBySlug retrieves one category.
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
}
