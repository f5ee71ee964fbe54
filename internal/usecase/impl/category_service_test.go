package impl

import (
	"context"
	"testing"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	mockRepo "directory/internal/mocks/repository"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	txManager    *mockRepo.MockTransactionManager
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewCategoryService(CategoryServiceParams{
		CategoryRepo: categoryRepo,
		TxManager:    txManager,
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		txManager:    txManager,
	}
}

func TestCategoryService_Create_DerivesSlugFromName(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	input := &usecase.CategoryInput{Name: "Coffee & Tea", Icon: "cup", Order: 3}

	fx.categoryRepo.EXPECT().
		FindBySlug(ctx, "coffee-tea").
		Return(nil, repository.ErrCategoryNotFound)

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := fx.service.Create(ctx, adminCaller(), input)

	require.NoError(t, err)
	assert.Equal(t, "coffee-tea", category.Slug)
	assert.Equal(t, "Coffee & Tea", category.Name)
	assert.Equal(t, 3, category.Order)
}

func TestCategoryService_Create_SlugTaken(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	input := &usecase.CategoryInput{Name: "Coffee & Tea"}

	fx.categoryRepo.EXPECT().
		FindBySlug(ctx, "coffee-tea").
		Return(&entity.Category{ID: uuid.New(), Slug: "coffee-tea"}, nil)

	category, err := fx.service.Create(ctx, adminCaller(), input)

	assert.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategorySlugTaken))
}

func TestCategoryService_Create_NonAdminForbidden(t *testing.T) {
	fx := createTestCategoryService(t)

	category, err := fx.service.Create(context.Background(), ownerCaller(uuid.New()), &usecase.CategoryInput{Name: "Bars"})

	assert.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCategoryService_Update_KeepsSlugStable(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := &usecase.CategoryInput{Name: "Specialty Coffee", Order: 1}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Slug: "coffee-tea", Name: "Coffee & Tea"}, nil)

	fx.categoryRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			assert.Equal(t, "coffee-tea", category.Slug)
			assert.Equal(t, "Specialty Coffee", category.Name)
		}).
		Return(nil)

	category, err := fx.service.Update(ctx, adminCaller(), categoryID, input)

	require.NoError(t, err)
	assert.Equal(t, "coffee-tea", category.Slug)
	assert.Equal(t, "Specialty Coffee", category.Name)
}

func TestCategoryService_Delete_RunsInTransaction(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().NewCategoryRepository().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().Delete(ctx, categoryID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Delete(ctx, adminCaller(), categoryID)

	assert.NoError(t, err)
}

func TestCategoryService_Delete_StillReferenced(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().NewCategoryRepository().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().Delete(ctx, categoryID).Return(repository.ErrCategoryInUse)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrCategoryInUse)

	err := fx.service.Delete(ctx, adminCaller(), categoryID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryInUse))
}

func TestCategoryService_Delete_Missing(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().NewCategoryRepository().Return(mockCategoryRepo)
			mockCategoryRepo.EXPECT().Delete(ctx, categoryID).Return(repository.ErrCategoryNotFound)

			_ = fn(mockFactory)
		}).
		Return(repository.ErrCategoryNotFound)

	err := fx.service.Delete(ctx, adminCaller(), categoryID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestCategoryService_List_Success(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	categories := []*entity.Category{
		{ID: uuid.New(), Slug: "restaurants", Order: 1},
		{ID: uuid.New(), Slug: "coffee-tea", Order: 2},
	}

	fx.categoryRepo.EXPECT().ListAll(ctx).Return(categories, nil)

	listed, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestCategoryService_GetBySlug_Missing(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		FindBySlug(ctx, "ghost").
		Return(nil, repository.ErrCategoryNotFound)

	category, err := fx.service.GetBySlug(ctx, "ghost")

	assert.Error(t, err)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}
