package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel mirrors the 'reviews' table. The (business_id, user_id) pair
// is unique among live rows so a user holds at most one active review per
// business; soft-deleting a review frees the slot.
type ReviewModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_business_user,where:deleted_at IS NULL"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_business_user,where:deleted_at IS NULL"`

	Rating  int      `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Title   string   `gorm:"type:varchar(255)"`
	Comment string   `gorm:"type:text;not null"`
	Images  []string `gorm:"type:jsonb;serializer:json"`

	OwnerResponse     string `gorm:"type:text"`
	OwnerResponseDate *time.Time

	IsEdited   bool `gorm:"not null;default:false"`
	IsVerified bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Reactions []ReviewReactionModel `gorm:"foreignKey:ReviewID"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReviewReactionModel mirrors the 'review_reactions' table. The
// (review_id, user_id) pair is unique so a new reaction replaces the old one.
type ReviewReactionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ReviewID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_review_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reactions_review_user"`
	Type      string    `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewReactionModel) TableName() string {
	return "review_reactions"
}
