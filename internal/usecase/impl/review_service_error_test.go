package impl

import (
	"context"
	"testing"
	"time"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	mockRepo "directory/internal/mocks/repository"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewService_Create_AnonymousForbidden(t *testing.T) {
	fx := createTestReviewService(t)

	review, err := fx.service.Create(context.Background(), anonymousCaller(), uuid.New(), newCreateReviewInput())

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_Create_BannedCallerForbidden(t *testing.T) {
	fx := createTestReviewService(t)

	caller := userCaller(uuid.New())
	caller.Banned = true

	review, err := fx.service.Create(context.Background(), caller, uuid.New(), newCreateReviewInput())

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	input := newCreateReviewInput()
	input.Rating = 6

	review, err := fx.service.Create(context.Background(), userCaller(uuid.New()), uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_Create_CommentTooShort(t *testing.T) {
	fx := createTestReviewService(t)

	input := newCreateReviewInput()
	input.Comment = "meh"

	review, err := fx.service.Create(context.Background(), userCaller(uuid.New()), uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_Create_BusinessNotApproved(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	caller := userCaller(uuid.New())
	businessID := uuid.New()

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
					Status:  entity.BusinessStatusPending,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrBusinessNotReviewable, "business is not approved"))

	review, err := fx.service.Create(ctx, caller, businessID, newCreateReviewInput())

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotReviewable))
}

func TestReviewService_Create_OwnerCannotReviewOwnBusiness(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	caller := ownerCaller(ownerID)
	businessID := uuid.New()

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
					OwnerID: ownerID,
					Status:  entity.BusinessStatusApproved,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrForbidden, "owner cannot review own business"))

	review, err := fx.service.Create(ctx, caller, businessID, newCreateReviewInput())

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_Create_DuplicateReview(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	caller := userCaller(uuid.New())
	businessID := uuid.New()

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
				Return(true, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrDuplicateReview, "user already reviewed business"))

	review, err := fx.service.Create(ctx, caller, businessID, newCreateReviewInput())

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateReview))
}

func TestReviewService_Update_NotAuthorForbidden(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	caller := userCaller(uuid.New())
	reviewID := uuid.New()
	newRating := 1

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(mockReviewRepo)

			mockReviewRepo.EXPECT().
				FindByID(ctx, reviewID).
				Return(&entity.Review{ID: reviewID, UserID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrForbidden, "caller cannot edit this review"))

	review, err := fx.service.Update(ctx, caller, reviewID, &usecase.UpdateReviewInput{Rating: &newRating})

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_Respond_SlotOccupied(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	reviewID := uuid.New()
	businessID := uuid.New()
	responseDate := time.Now()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{
			ID:                reviewID,
			BusinessID:        businessID,
			UserID:            uuid.New(),
			OwnerResponse:     "Already answered.",
			OwnerResponseDate: &responseDate,
		}, nil)

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{ID: businessID, OwnerID: ownerID, Status: entity.BusinessStatusApproved}, nil)

	review, err := fx.service.Respond(ctx, ownerCaller(ownerID), reviewID, "Second answer")

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrResponseAlreadyExists))
}

func TestReviewService_UpdateResponse_NothingToOverwrite(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	reviewID := uuid.New()
	businessID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, BusinessID: businessID, UserID: uuid.New()}, nil)

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{ID: businessID, OwnerID: ownerID, Status: entity.BusinessStatusApproved}, nil)

	review, err := fx.service.UpdateResponse(ctx, ownerCaller(ownerID), reviewID, "Edited answer")

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrResponseNotFound))
}

func TestReviewService_Respond_OtherOwnerForbidden(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	businessID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, BusinessID: businessID, UserID: uuid.New()}, nil)

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{ID: businessID, OwnerID: uuid.New(), Status: entity.BusinessStatusApproved}, nil)

	review, err := fx.service.Respond(ctx, ownerCaller(uuid.New()), reviewID, "Not my shop")

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestReviewService_Respond_EmptyText(t *testing.T) {
	fx := createTestReviewService(t)

	review, err := fx.service.Respond(context.Background(), ownerCaller(uuid.New()), uuid.New(), "  ")

	assert.Error(t, err)
	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_AddReaction_UnknownType(t *testing.T) {
	fx := createTestReviewService(t)

	err := fx.service.AddReaction(context.Background(), userCaller(uuid.New()), uuid.New(), entity.ReactionType("love"))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_ListAll_NonAdminForbidden(t *testing.T) {
	fx := createTestReviewService(t)

	page, err := fx.service.ListAll(context.Background(), ownerCaller(uuid.New()), 1, 20)

	assert.Error(t, err)
	assert.Nil(t, page)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
