package impl

import (
	"context"
	"log/slog"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/policy"
	"directory/internal/domain/repository"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	TxManager    repository.TransactionManager
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		txManager:    params.TxManager,
		logger:       params.Logger,
	}
}

// Create inserts a new category with a slug derived from its name.
func (srv *categoryService) Create(ctx context.Context, caller policy.Caller, input *usecase.CategoryInput) (*entity.Category, error) {
	if !policy.CanManageCategories(caller) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot manage categories")
	}

	category := &entity.Category{
		ID:          uuid.New(),
		Slug:        slug.Make(input.Name),
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		Order:       input.Order,
	}

	if _, err := srv.categoryRepo.FindBySlug(ctx, category.Slug); err == nil {
		return nil, domainerrors.ErrCategorySlugTaken.WrapMessage("slug already exists")
	} else if !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, errors.Wrap(err, "failed to check category slug")
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// Update modifies an existing category. The slug stays stable so saved
// links keep working.
func (srv *categoryService) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	if !policy.CanManageCategories(caller) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot manage categories")
	}

	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category missing on update")
		}

		return nil, errors.Wrap(err, "failed to load category for update")
	}

	category.Name = input.Name
	category.Description = input.Description
	category.Icon = input.Icon
	category.Color = input.Color
	category.Order = input.Order

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

// Delete removes an unused category. The reference check and the delete
// run in one transaction so a business cannot slip in between them.
func (srv *categoryService) Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if !policy.CanManageCategories(caller) {
		return domainerrors.ErrForbidden.WrapMessage("caller cannot manage categories")
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewCategoryRepository().Delete(ctx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return domainerrors.ErrCategoryNotFound.WrapMessage("category missing on delete")
		case errors.Is(err, repository.ErrCategoryInUse):
			return domainerrors.ErrCategoryInUse.WrapMessage("businesses still reference category")
		default:
			return errors.Wrap(err, "failed to delete category")
		}
	}

	return nil
}

// List retrieves every category ordered by the display sort key.
func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetBySlug retrieves one category.
func (srv *categoryService) GetBySlug(ctx context.Context, categorySlug string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("category missing on get")
		}

		return nil, errors.Wrap(err, "failed to load category")
	}

	return category, nil
}
