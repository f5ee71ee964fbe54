package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of a business. BusinessID and UserID are
// immutable after creation; the owner response is a single optional slot,
// not a thread.
type Review struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	UserID     uuid.UUID

	Rating  int // Integer in [MinRating, MaxRating].
	Title   string
	Comment string
	Images  []string

	// The owning business's single response. OwnerResponseDate is set iff
	// OwnerResponse is present.
	OwnerResponse     string
	OwnerResponseDate *time.Time

	IsEdited   bool
	IsVerified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasOwnerResponse reports whether the response slot is occupied.
func (r *Review) HasOwnerResponse() bool {
	return r.OwnerResponse != ""
}

// IsValidRating reports whether a rating value is within the allowed range.
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// ReactionType is a lightweight reader reaction on a review. Reactions do
// not contribute to the business's aggregate rating.
type ReactionType string

const (
	// ReactionLike marks the review as helpful.
	ReactionLike ReactionType = "like"
	// ReactionDislike marks the review as unhelpful.
	ReactionDislike ReactionType = "dislike"
)

// IsValid checks if the ReactionType is a valid value.
func (t ReactionType) IsValid() bool {
	return t == ReactionLike || t == ReactionDislike
}

// ReviewReaction records a single user's reaction to a review. A user has
// at most one reaction per review; changing type overwrites the old one.
type ReviewReaction struct {
	ID        uuid.UUID
	ReviewID  uuid.UUID
	UserID    uuid.UUID
	Type      ReactionType
	CreatedAt time.Time
}
