package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/constants"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/policy"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	"directory/internal/usecase"
	"directory/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	txManager    repository.TransactionManager
	reviewRepo   repository.ReviewRepository
	businessRepo repository.BusinessRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ReviewRepo   repository.ReviewRepository
	BusinessRepo repository.BusinessRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:    params.TxManager,
		reviewRepo:   params.ReviewRepo,
		businessRepo: params.BusinessRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateReviewContent(rating int, comment string) error {
	if !entity.IsValidRating(rating) {
		return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
	}
	length := len(strings.TrimSpace(comment))
	if length < usecase.MinCommentLength || length > usecase.MaxCommentLength {
		return domainerrors.ErrValidationFailed.WrapMessage("comment length out of range")
	}

	return nil
}

// Create inserts a review and recomputes the business's aggregates in one
// transaction.
func (srv *reviewService) Create(ctx context.Context, caller policy.Caller, businessID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if caller.IsAnonymous() || caller.Banned {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot create reviews")
	}
	if err := validateReviewContent(input.Rating, input.Comment); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:         uuid.New(),
		BusinessID: businessID,
		UserID:     caller.UserID,
		Rating:     input.Rating,
		Title:      input.Title,
		Comment:    input.Comment,
		Images:     input.Images,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		businessRepo := factory.NewBusinessRepository()
		reviewRepo := factory.NewReviewRepository()

		business, err := businessRepo.FindByID(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound.WrapMessage("business missing on review create")
			}

			return errors.Wrap(err, "failed to load business for review")
		}

		// Only an approved listing accepts reviews, and owners may not
		// review their own business.
		if business.Status != entity.BusinessStatusApproved {
			return domainerrors.ErrBusinessNotReviewable.WrapMessage("business is not approved")
		}
		if business.OwnerID == caller.UserID {
			return domainerrors.ErrForbidden.WrapMessage("owner cannot review own business")
		}

		exists, err := reviewRepo.ExistsByBusinessAndUser(ctx, businessID, caller.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to check for existing review")
		}
		if exists {
			return domainerrors.ErrDuplicateReview.WrapMessage("user already reviewed business")
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview.WrapMessage("concurrent duplicate review")
			}

			return errors.Wrap(err, "failed to create review")
		}

		return businessRepo.RecalculateRating(ctx, businessID)
	})
	if err != nil {
		return nil, err
	}

	srv.publishReviewEvent(ctx, review)

	return review, nil
}

func (srv *reviewService) publishReviewEvent(ctx context.Context, review *entity.Review) {
	if srv.publisher == nil {
		return
	}

	event := &service.ModerationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  constants.EventReviewCreated,
		BusinessID: review.BusinessID.String(),
		ReviewID:   review.ID.String(),
	}
	if err := srv.publisher.PublishModerationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review event",
			slog.Any("reviewID", review.ID),
			slog.Any("error", err),
		)
	}
}

// Update patches the author's own review and recomputes aggregates when the
// rating changed.
func (srv *reviewService) Update(ctx context.Context, caller policy.Caller, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	var updated *entity.Review

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		reviewRepo := factory.NewReviewRepository()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound.WrapMessage("review missing on update")
			}

			return errors.Wrap(err, "failed to load review for update")
		}

		if !policy.CanEditReview(caller, review) {
			return domainerrors.ErrForbidden.WrapMessage("caller cannot edit this review")
		}

		ratingChanged := false
		if input.Rating != nil && *input.Rating != review.Rating {
			review.Rating = *input.Rating
			ratingChanged = true
		}
		if input.Title != nil {
			review.Title = *input.Title
		}
		if input.Comment != nil {
			review.Comment = *input.Comment
		}
		if input.Images != nil {
			review.Images = input.Images
		}

		if err := validateReviewContent(review.Rating, review.Comment); err != nil {
			return err
		}

		review.IsEdited = true
		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		if ratingChanged {
			if err := factory.NewBusinessRepository().RecalculateRating(ctx, review.BusinessID); err != nil {
				return errors.Wrap(err, "failed to recalculate rating")
			}
		}

		updated = review

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a review (author or admin) and recomputes aggregates.
func (srv *reviewService) Delete(ctx context.Context, caller policy.Caller, reviewID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		reviewRepo := factory.NewReviewRepository()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound.WrapMessage("review missing on delete")
			}

			return errors.Wrap(err, "failed to load review for delete")
		}

		if !policy.CanDeleteReview(caller, review) {
			return domainerrors.ErrForbidden.WrapMessage("caller cannot delete this review")
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		// Recompute from the surviving rows; with none left the aggregates
		// reset to zero.
		return factory.NewBusinessRepository().RecalculateRating(ctx, review.BusinessID)
	})
}

// ListByBusiness retrieves a public page of reviews, newest first.
func (srv *reviewService) ListByBusiness(ctx context.Context, businessID uuid.UUID, page, limit int) (*usecase.Page[*entity.Review], error) {
	if _, err := srv.businessRepo.FindByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business missing on review listing")
		}

		return nil, errors.Wrap(err, "failed to load business for review listing")
	}

	offset, page, limit := util.NormalizePaging(page, limit)
	reviews, total, err := srv.reviewRepo.FindByBusiness(ctx, businessID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return usecase.NewPage(reviews, page, limit, total), nil
}

// ListAll retrieves a page over every review for admin moderation.
func (srv *reviewService) ListAll(ctx context.Context, caller policy.Caller, page, limit int) (*usecase.Page[*entity.Review], error) {
	if !policy.CanModerateUsers(caller) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot list all reviews")
	}

	offset, page, limit := util.NormalizePaging(page, limit)
	reviews, total, err := srv.reviewRepo.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all reviews")
	}

	return usecase.NewPage(reviews, page, limit, total), nil
}

// Respond fills the review's empty owner response slot.
func (srv *reviewService) Respond(ctx context.Context, caller policy.Caller, reviewID uuid.UUID, text string) (*entity.Review, error) {
	return srv.mutateResponse(ctx, caller, reviewID, text, false)
}

// UpdateResponse overwrites an existing owner response and refreshes its date.
func (srv *reviewService) UpdateResponse(ctx context.Context, caller policy.Caller, reviewID uuid.UUID, text string) (*entity.Review, error) {
	return srv.mutateResponse(ctx, caller, reviewID, text, true)
}

// mutateResponse is the shared create/overwrite path for the owner response
// slot. Responses never touch rating aggregates.
func (srv *reviewService) mutateResponse(ctx context.Context, caller policy.Caller, reviewID uuid.UUID, text string, overwrite bool) (*entity.Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("response text must not be empty")
	}

	review, business, err := srv.loadReviewWithBusiness(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if !policy.CanRespondToReview(caller, business) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot respond to this review")
	}

	if overwrite {
		if !review.HasOwnerResponse() {
			return nil, domainerrors.ErrResponseNotFound.WrapMessage("no response to overwrite")
		}
	} else if review.HasOwnerResponse() {
		return nil, domainerrors.ErrResponseAlreadyExists.WrapMessage("response slot occupied")
	}

	now := time.Now()
	review.OwnerResponse = text
	review.OwnerResponseDate = &now

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to save owner response")
	}

	return review, nil
}

// DeleteResponse clears the owner response slot.
func (srv *reviewService) DeleteResponse(ctx context.Context, caller policy.Caller, reviewID uuid.UUID) (*entity.Review, error) {
	review, business, err := srv.loadReviewWithBusiness(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	if !policy.CanRespondToReview(caller, business) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot manage responses on this review")
	}
	if !review.HasOwnerResponse() {
		return nil, domainerrors.ErrResponseNotFound.WrapMessage("no response to delete")
	}

	review.OwnerResponse = ""
	review.OwnerResponseDate = nil

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to clear owner response")
	}

	return review, nil
}

func (srv *reviewService) loadReviewWithBusiness(ctx context.Context, reviewID uuid.UUID) (*entity.Review, *entity.Business, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, nil, domainerrors.ErrReviewNotFound.WrapMessage("review missing")
		}

		return nil, nil, errors.Wrap(err, "failed to load review")
	}

	business, err := srv.businessRepo.FindByID(ctx, review.BusinessID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load review's business")
	}

	return review, business, nil
}

// AddReaction records or replaces the caller's reaction on a review.
func (srv *reviewService) AddReaction(ctx context.Context, caller policy.Caller, reviewID uuid.UUID, reactionType entity.ReactionType) error {
	if caller.IsAnonymous() || caller.Banned {
		return domainerrors.ErrForbidden.WrapMessage("caller cannot react to reviews")
	}
	if !reactionType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown reaction type")
	}

	if _, err := srv.reviewRepo.FindByID(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound.WrapMessage("review missing on reaction")
		}

		return errors.Wrap(err, "failed to load review for reaction")
	}

	reaction := &entity.ReviewReaction{
		ID:       uuid.New(),
		ReviewID: reviewID,
		UserID:   caller.UserID,
		Type:     reactionType,
	}
	if err := srv.reviewRepo.UpsertReaction(ctx, reaction); err != nil {
		return errors.Wrap(err, "failed to save reaction")
	}

	return nil
}

// RemoveReaction removes the caller's reaction from a review.
func (srv *reviewService) RemoveReaction(ctx context.Context, caller policy.Caller, reviewID uuid.UUID) error {
	if caller.IsAnonymous() {
		return domainerrors.ErrForbidden.WrapMessage("anonymous caller cannot remove reactions")
	}

	if err := srv.reviewRepo.DeleteReaction(ctx, reviewID, caller.UserID); err != nil {
		return errors.Wrap(err, "failed to remove reaction")
	}

	return nil
}
