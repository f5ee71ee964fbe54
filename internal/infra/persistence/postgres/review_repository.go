package postgres

import (
	"context"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByBusiness retrieves a page of reviews for a business, newest first.
func (repo *reviewRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID, offset, limit int) ([]*entity.Review, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("business_id = ?", businessID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewModels []*model.ReviewModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews by business")
	}

	return toReviewDomainSlice(reviewModels), total, nil
}

// ExistsByBusinessAndUser reports whether the user already reviewed the business.
func (repo *reviewRepository) ExistsByBusinessAndUser(ctx context.Context, businessID, userID uuid.UUID) (bool, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("business_id = ? AND user_id = ?", businessID, userID).
		Count(&total).Error; err != nil {
		return false, errors.Wrap(err, "failed to check review existence")
	}

	return total > 0, nil
}

// Update modifies a review's mutable fields. The owner response columns are
// written unconditionally so clearing a response persists NULLs.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Updates(map[string]any{
			"rating":              reviewM.Rating,
			"title":               reviewM.Title,
			"comment":             reviewM.Comment,
			"images":              reviewM.Images,
			"is_edited":           reviewM.IsEdited,
			"owner_response":      reviewM.OwnerResponse,
			"owner_response_date": reviewM.OwnerResponseDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// Delete soft-deletes a review, freeing the (business_id, user_id) slot
// for a future review by the same user.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// ListAll retrieves a page over every review for moderation, newest first.
func (repo *reviewRepository) ListAll(ctx context.Context, offset, limit int) ([]*entity.Review, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewModels []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	return toReviewDomainSlice(reviewModels), total, nil
}

// UpsertReaction records or overwrites a user's reaction to a review.
func (repo *reviewRepository) UpsertReaction(ctx context.Context, reaction *entity.ReviewReaction) error {
	reactionM := &model.ReviewReactionModel{
		ID:       reaction.ID,
		ReviewID: reaction.ReviewID,
		UserID:   reaction.UserID,
		Type:     string(reaction.Type),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type"}),
		}).
		Create(reactionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReviewNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert reaction")
	}

	return nil
}

// DeleteReaction removes a user's reaction from a review if present.
func (repo *reviewRepository) DeleteReaction(ctx context.Context, reviewID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&model.ReviewReactionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete reaction")
	}

	return nil
}

// Count returns the total number of reviews on the platform.
func (repo *reviewRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count reviews")
	}

	return total, nil
}

// OwnerStats aggregates review figures across the owner's businesses.
func (repo *reviewRepository) OwnerStats(ctx context.Context, ownerID uuid.UUID) (*repository.OwnerStats, error) {
	var stats repository.OwnerStats

	row := repo.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(r.id)                                                   AS total_reviews,
			COALESCE(AVG(r.rating), 0)                                    AS average_rating,
			COUNT(r.id) FILTER (WHERE r.owner_response = '')              AS awaiting_response,
			COALESCE((SELECT COUNT(*) FROM review_reactions rr
				JOIN reviews r2 ON r2.id = rr.review_id
				JOIN businesses b2 ON b2.id = r2.business_id
				WHERE b2.owner_id = ? AND r2.deleted_at IS NULL), 0)      AS reactions_received
		FROM reviews r
		JOIN businesses b ON b.id = r.business_id
		WHERE b.owner_id = ? AND r.deleted_at IS NULL`,
		ownerID, ownerID).Row()
	if err := row.Scan(&stats.TotalReviews, &stats.AverageRating, &stats.AwaitingResponse, &stats.ReactionsReceived); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate owner review stats")
	}

	return &stats, nil
}

func toReviewDomainSlice(reviewModels []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews
}

// toReviewDomain maps the persistence model back to a pure domain entity.
func toReviewDomain(reviewM *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:                reviewM.ID,
		BusinessID:        reviewM.BusinessID,
		UserID:            reviewM.UserID,
		Rating:            reviewM.Rating,
		Title:             reviewM.Title,
		Comment:           reviewM.Comment,
		Images:            reviewM.Images,
		OwnerResponse:     reviewM.OwnerResponse,
		OwnerResponseDate: reviewM.OwnerResponseDate,
		IsEdited:          reviewM.IsEdited,
		IsVerified:        reviewM.IsVerified,
		CreatedAt:         reviewM.CreatedAt,
		UpdatedAt:         reviewM.UpdatedAt,
	}
}

// fromReviewDomain maps a pure domain entity to the persistence model.
func fromReviewDomain(review *entity.Review) *model.ReviewModel {
	return &model.ReviewModel{
		ID:                review.ID,
		BusinessID:        review.BusinessID,
		UserID:            review.UserID,
		Rating:            review.Rating,
		Title:             review.Title,
		Comment:           review.Comment,
		Images:            review.Images,
		OwnerResponse:     review.OwnerResponse,
		OwnerResponseDate: review.OwnerResponseDate,
		IsEdited:          review.IsEdited,
		IsVerified:        review.IsVerified,
	}
}
