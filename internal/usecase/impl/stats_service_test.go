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
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service      usecase.StatsUsecase
	businessRepo *mockRepo.MockBusinessRepository
	reviewRepo   *mockRepo.MockReviewRepository
	userRepo     *mockRepo.MockUserRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewStatsService(StatsServiceParams{
		BusinessRepo: businessRepo,
		ReviewRepo:   reviewRepo,
		UserRepo:     userRepo,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return statsServiceFixtures{
		service:      service,
		businessRepo: businessRepo,
		reviewRepo:   reviewRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

func TestStatsService_OwnerStats_RoundsAverageRating(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	caller := ownerCaller(ownerID)

	fx.businessRepo.EXPECT().
		CountByStatus(ctx, ownerID).
		Return(repository.StatusCounts{
			entity.BusinessStatusApproved: 2,
			entity.BusinessStatusPending:  1,
		}, nil)

	fx.reviewRepo.EXPECT().
		OwnerStats(ctx, ownerID).
		Return(&repository.OwnerStats{
			TotalReviews:      12,
			AverageRating:     4.267,
			AwaitingResponse:  3,
			ReactionsReceived: 40,
		}, nil)

	stats, err := fx.service.OwnerStats(ctx, caller)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Businesses["approved"])
	assert.Equal(t, int64(1), stats.Businesses["pending"])
	assert.Equal(t, int64(12), stats.TotalReviews)
	assert.InDelta(t, 4.3, stats.AverageRating, 0.001)
	assert.Equal(t, int64(3), stats.AwaitingResponse)
}

func TestStatsService_OwnerStats_NonOwnerForbidden(t *testing.T) {
	fx := createTestStatsService(t)

	stats, err := fx.service.OwnerStats(context.Background(), userCaller(uuid.New()))

	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestStatsService_AdminStats_AggregatesPlatformWide(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	caller := adminCaller()

	fx.businessRepo.EXPECT().
		CountByStatus(ctx, uuid.Nil).
		Return(repository.StatusCounts{
			entity.BusinessStatusApproved: 40,
			entity.BusinessStatusPending:  5,
			entity.BusinessStatusRejected: 2,
			entity.BusinessStatusInactive: 3,
		}, nil)

	fx.userRepo.EXPECT().Count(ctx).Return(int64(120), nil)
	fx.reviewRepo.EXPECT().Count(ctx).Return(int64(300), nil)
	fx.categoryRepo.EXPECT().Count(ctx).Return(int64(8), nil)

	stats, err := fx.service.AdminStats(ctx, caller)

	require.NoError(t, err)
	assert.Equal(t, int64(40), stats.Businesses["approved"])
	assert.Equal(t, int64(5), stats.Businesses["pending"])
	assert.Equal(t, int64(120), stats.Users)
	assert.Equal(t, int64(300), stats.Reviews)
	assert.Equal(t, int64(8), stats.Categories)
}

func TestStatsService_AdminStats_NonAdminForbidden(t *testing.T) {
	fx := createTestStatsService(t)

	stats, err := fx.service.AdminStats(context.Background(), ownerCaller(uuid.New()))

	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
