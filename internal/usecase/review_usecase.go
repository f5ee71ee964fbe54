package usecase

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/domain/policy"

	"github.com/google/uuid"
)

// Comment length bounds for a review.
const (
	MinCommentLength = 10
	MaxCommentLength = 1000
)

// CreateReviewInput carries a new review's fields.
type CreateReviewInput struct {
	Rating  int `validate:"required,min=1,max=5"`
	Title   string
	Comment string `validate:"required,min=10,max=1000"`
	Images  []string
}

// UpdateReviewInput is a partial patch; nil fields are left untouched.
type UpdateReviewInput struct {
	Rating  *int
	Title   *string
	Comment *string
	Images  []string
}

// ReviewUsecase defines review lifecycle, reactions and the owner response workflow.
type ReviewUsecase interface {
	// Create inserts a review against an APPROVED business and recomputes
	// the business's rating aggregates in the same transaction.
	Create(ctx context.Context, caller policy.Caller, businessID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// Update patches the author's own review, marking it edited, and
	// recomputes aggregates when the rating changed.
	Update(ctx context.Context, caller policy.Caller, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// Delete removes a review (author or admin) and recomputes aggregates.
	Delete(ctx context.Context, caller policy.Caller, reviewID uuid.UUID) error

	// ListByBusiness retrieves a public page of reviews, newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID, page, limit int) (*Page[*entity.Review], error)

	// ListAll retrieves a page over every review for admin moderation.
	ListAll(ctx context.Context, caller policy.Caller, page, limit int) (*Page[*entity.Review], error)

	// Respond fills the review's empty owner response slot.
	Respond(ctx context.Context, caller policy.Caller, reviewID uuid.UUID, text string) (*entity.Review, error)

	// UpdateResponse overwrites an existing owner response and refreshes its date.
	UpdateResponse(ctx context.Context, caller policy.Caller, reviewID uuid.UUID, text string) (*entity.Review, error)

	// DeleteResponse clears the owner response slot.
	DeleteResponse(ctx context.Context, caller policy.Caller, reviewID uuid.UUID) (*entity.Review, error)

	// AddReaction records or replaces the caller's reaction on a review.
	AddReaction(ctx context.Context, caller policy.Caller, reviewID uuid.UUID, reactionType entity.ReactionType) error

	// RemoveReaction removes the caller's reaction from a review.
	RemoveReaction(ctx context.Context, caller policy.Caller, reviewID uuid.UUID) error
}
