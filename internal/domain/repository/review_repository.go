// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when a user already reviewed the business.
	ErrDuplicateReview = errors.New("review already exists for this user and business")
)

// OwnerStats aggregates review figures across all businesses of one owner.
type OwnerStats struct {
	TotalReviews      int64
	AverageRating     float64
	AwaitingResponse  int64
	ReactionsReceived int64
}

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByBusiness retrieves a page of reviews for a business, newest
	// first, along with the total count.
	FindByBusiness(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]*entity.Review, int64, error)

	// ExistsByBusinessAndUser reports whether the user already reviewed the business.
	ExistsByBusinessAndUser(ctx context.Context, businessID, userID uuid.UUID) (bool, error)

	// Update modifies a review's mutable fields (rating, title, comment,
	// images, edit flag, owner response slot).
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListAll retrieves a page over every review for admin moderation,
	// newest first, along with the total count.
	ListAll(ctx context.Context, offset, limit int) ([]*entity.Review, int64, error)

	// UpsertReaction records or overwrites a user's reaction to a review.
	UpsertReaction(ctx context.Context, reaction *entity.ReviewReaction) error

	// DeleteReaction removes a user's reaction from a review if present.
	DeleteReaction(ctx context.Context, reviewID, userID uuid.UUID) error

	// Count returns the total number of reviews on the platform.
	Count(ctx context.Context) (int64, error)

	// OwnerStats aggregates review figures across the owner's businesses.
	OwnerStats(ctx context.Context, ownerID uuid.UUID) (*OwnerStats, error)
}
