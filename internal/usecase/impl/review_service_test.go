package impl

import (
	"context"
	"testing"
	"time"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	mockRepo "directory/internal/mocks/repository"
	mockSvc "directory/internal/mocks/service"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service      usecase.ReviewUsecase
	txManager    *mockRepo.MockTransactionManager
	reviewRepo   *mockRepo.MockReviewRepository
	businessRepo *mockRepo.MockBusinessRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:    txManager,
		ReviewRepo:   reviewRepo,
		BusinessRepo: businessRepo,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:      service,
		txManager:    txManager,
		reviewRepo:   reviewRepo,
		businessRepo: businessRepo,
		publisher:    publisher,
	}
}

func newCreateReviewInput() *usecase.CreateReviewInput {
	return &usecase.CreateReviewInput{
		Rating:  5,
		Title:   "Best pho in town",
		Comment: "The broth is rich and the noodles are always fresh. Staff remembered our order on the second visit.",
	}
}

func TestReviewService_Create_RecalculatesRatingInTransaction(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	caller := userCaller(uuid.New())
	businessID := uuid.New()
	input := newCreateReviewInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)
			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)

			mockBusinessRepo.EXPECT().
				FindByID(ctx, businessID).
				Return(&entity.Business{
					ID:      businessID,
					OwnerID: uuid.New(),
					Status:  entity.BusinessStatusApproved,
				}, nil)

			mockReviewRepo.EXPECT().
				ExistsByBusinessAndUser(ctx, businessID, caller.UserID).
				Return(false, nil)

			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Return(nil)

			mockBusinessRepo.EXPECT().RecalculateRating(ctx, businessID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	review, err := fx.service.Create(ctx, caller, businessID, input)

	require.NoError(t, err)
	assert.Equal(t, businessID, review.BusinessID)
	assert.Equal(t, caller.UserID, review.UserID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_Update_RatingChangeTriggersRecalculation(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	caller := userCaller(uuid.New())
	reviewID := uuid.New()
	businessID := uuid.New()
	newRating := 2

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockFactory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)

			mockReviewRepo.EXPECT().
				FindByID(ctx, reviewID).
				Return(&entity.Review{
					ID:         reviewID,
					BusinessID: businessID,
					UserID:     caller.UserID,
					Rating:     5,
					Comment:    "The broth is rich and the noodles are always fresh.",
				}, nil)

			mockReviewRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Review")).
				Run(func(ctx context.Context, review *entity.Review) {
					assert.True(t, review.IsEdited)
					assert.Equal(t, newRating, review.Rating)
				}).
				Return(nil)

			mockBusinessRepo.EXPECT().RecalculateRating(ctx, businessID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	review, err := fx.service.Update(ctx, caller, reviewID, &usecase.UpdateReviewInput{Rating: &newRating})

	require.NoError(t, err)
	assert.Equal(t, newRating, review.Rating)
	assert.True(t, review.IsEdited)
}

func TestReviewService_Update_SameRatingSkipsRecalculation(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	caller := userCaller(uuid.New())
	reviewID := uuid.New()
	newComment := "Still great, though the wait has gotten longer on weekends."

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)

			mockReviewRepo.EXPECT().
				FindByID(ctx, reviewID).
				Return(&entity.Review{
					ID:         reviewID,
					BusinessID: uuid.New(),
					UserID:     caller.UserID,
					Rating:     4,
					Comment:    "The broth is rich and the noodles are always fresh.",
				}, nil)

			mockReviewRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Review")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	review, err := fx.service.Update(ctx, caller, reviewID, &usecase.UpdateReviewInput{Comment: &newComment})

	require.NoError(t, err)
	assert.Equal(t, newComment, review.Comment)
}

func TestReviewService_Delete_RecalculatesRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	caller := userCaller(uuid.New())
	reviewID := uuid.New()
	businessID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
			mockFactory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)

			mockReviewRepo.EXPECT().
				FindByID(ctx, reviewID).
				Return(&entity.Review{
					ID:         reviewID,
					BusinessID: businessID,
					UserID:     caller.UserID,
				}, nil)

			mockReviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)
			mockBusinessRepo.EXPECT().RecalculateRating(ctx, businessID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Delete(ctx, caller, reviewID)

	assert.NoError(t, err)
}

func TestReviewService_ListByBusiness_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	businessID := uuid.New()
	reviews := []*entity.Review{{ID: uuid.New(), BusinessID: businessID}}

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{ID: businessID, Status: entity.BusinessStatusApproved}, nil)

	fx.reviewRepo.EXPECT().
		FindByBusiness(ctx, businessID, 0, 20).
		Return(reviews, int64(1), nil)

	page, err := fx.service.ListByBusiness(ctx, businessID, 1, 20)

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
}

func TestReviewService_ResponseSlot_RoundTrip(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	caller := ownerCaller(ownerID)
	reviewID := uuid.New()
	businessID := uuid.New()

	business := &entity.Business{ID: businessID, OwnerID: ownerID, Status: entity.BusinessStatusApproved}
	review := &entity.Review{ID: reviewID, BusinessID: businessID, UserID: uuid.New()}

	// Fill the empty slot.
	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil).Once()
	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil).Once()
	fx.reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil).
		Once()

	responded, err := fx.service.Respond(ctx, caller, reviewID, "Thank you for the kind words!")
	require.NoError(t, err)
	assert.Equal(t, "Thank you for the kind words!", responded.OwnerResponse)
	require.NotNil(t, responded.OwnerResponseDate)

	// Overwrite it; the date moves forward.
	firstDate := *responded.OwnerResponseDate
	occupied := &entity.Review{
		ID:                reviewID,
		BusinessID:        businessID,
		UserID:            review.UserID,
		OwnerResponse:     responded.OwnerResponse,
		OwnerResponseDate: &firstDate,
	}
	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(occupied, nil).Once()
	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil).Once()
	fx.reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil).
		Once()

	updated, err := fx.service.UpdateResponse(ctx, caller, reviewID, "Thanks again, see you soon.")
	require.NoError(t, err)
	assert.Equal(t, "Thanks again, see you soon.", updated.OwnerResponse)
	assert.False(t, updated.OwnerResponseDate.Before(firstDate))

	// Clear the slot.
	secondDate := *updated.OwnerResponseDate
	cleared := &entity.Review{
		ID:                reviewID,
		BusinessID:        businessID,
		UserID:            review.UserID,
		OwnerResponse:     updated.OwnerResponse,
		OwnerResponseDate: &secondDate,
	}
	fx.reviewRepo.EXPECT().FindByID(ctx, reviewID).Return(cleared, nil).Once()
	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(business, nil).Once()
	fx.reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, r *entity.Review) {
			assert.Empty(t, r.OwnerResponse)
			assert.Nil(t, r.OwnerResponseDate)
		}).
		Return(nil).
		Once()

	emptied, err := fx.service.DeleteResponse(ctx, caller, reviewID)
	require.NoError(t, err)
	assert.False(t, emptied.HasOwnerResponse())
}

func TestReviewService_AddReaction_UpsertsByUser(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	caller := userCaller(uuid.New())
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID}, nil)

	fx.reviewRepo.EXPECT().
		UpsertReaction(ctx, mock.AnythingOfType("*entity.ReviewReaction")).
		Run(func(ctx context.Context, reaction *entity.ReviewReaction) {
			assert.Equal(t, reviewID, reaction.ReviewID)
			assert.Equal(t, caller.UserID, reaction.UserID)
			assert.Equal(t, entity.ReactionLike, reaction.Type)
		}).
		Return(nil)

	err := fx.service.AddReaction(ctx, caller, reviewID, entity.ReactionLike)

	assert.NoError(t, err)
}

func TestReviewService_RemoveReaction_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	caller := userCaller(uuid.New())
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().DeleteReaction(ctx, reviewID, caller.UserID).Return(nil)

	err := fx.service.RemoveReaction(ctx, caller, reviewID)

	assert.NoError(t, err)
}

func TestReviewService_ListAll_AdminOnly(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviews := []*entity.Review{
		{ID: uuid.New(), CreatedAt: time.Now()},
		{ID: uuid.New(), CreatedAt: time.Now().Add(-time.Hour)},
	}

	fx.reviewRepo.EXPECT().ListAll(ctx, 0, 20).Return(reviews, int64(2), nil)

	page, err := fx.service.ListAll(ctx, adminCaller(), 1, 20)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}
