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
)

// businessRepository implements the repository.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// Create persists a new business listing.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindBySlug retrieves a business by its unique slug.
func (repo *businessRepository) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by slug")
	}

	return toBusinessDomain(&businessM), nil
}

// SlugExists reports whether a slug is already taken.
func (repo *businessRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("slug = ?", slug).
		Count(&total).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slug existence")
	}

	return total > 0, nil
}

// List retrieves a filtered page of businesses together with the total match count.
func (repo *businessRepository) List(ctx context.Context, filter repository.BusinessFilter) ([]*entity.Business, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BusinessModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, status.String())
		}
		query = query.Where("businesses.status IN ?", statuses)
	}
	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = businesses.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.City != "" {
		query = query.Where("businesses.city ILIKE ?", filter.City)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("businesses.name ILIKE ? OR businesses.description ILIKE ?", pattern, pattern)
	}
	if filter.OwnerID != uuid.Nil {
		query = query.Where("businesses.owner_id = ?", filter.OwnerID)
	}
	if filter.Featured != nil {
		query = query.Where("businesses.is_featured = ?", *filter.Featured)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count businesses")
	}

	switch filter.Sort {
	case "rating":
		query = query.Order("businesses.average_rating DESC, businesses.review_count DESC")
	case "name":
		query = query.Order("businesses.name ASC")
	default:
		query = query.Order("businesses.created_at DESC")
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var businessModels []*model.BusinessModel
	if err := query.Find(&businessModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, total, nil
}

// Update modifies a business's content fields. Moderation status and
// aggregates are untouched; they have dedicated statements.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Updates(map[string]any{
			"name":          businessM.Name,
			"description":   businessM.Description,
			"category_id":   businessM.CategoryID,
			"address":       businessM.Address,
			"city":          businessM.City,
			"state":         businessM.State,
			"latitude":      businessM.Latitude,
			"longitude":     businessM.Longitude,
			"phone":         businessM.Phone,
			"email":         businessM.Email,
			"website":       businessM.Website,
			"opening_hours": businessM.OpeningHours,
			"logo":          businessM.Logo,
			"images":        businessM.Images,
			"is_verified":   businessM.IsVerified,
			"is_featured":   businessM.IsFeatured,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// UpdateStatus performs a guarded state transition. The WHERE clause pins
// the current status, so of two concurrent decisions only one can match.
func (repo *businessRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BusinessStatus, rejectionReason string) (int64, error) {
	updates := map[string]any{
		"status":           to.String(),
		"rejection_reason": rejectionReason,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(updates)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update business status")
	}

	return result.RowsAffected, nil
}

// Delete soft-deletes a business. GORM turns this into an UPDATE that
// stamps deleted_at, and the default scope hides the row from every
// subsequent query.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.BusinessModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// RecalculateRating refreshes the cached aggregates from the reviews table.
// COALESCE resets both columns to zero when the last review disappears.
func (repo *businessRepository) RecalculateRating(ctx context.Context, businessID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Exec(`
		UPDATE businesses SET
			average_rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE business_id = ? AND deleted_at IS NULL), 0),
			review_count   = COALESCE((SELECT COUNT(*) FROM reviews WHERE business_id = ? AND deleted_at IS NULL), 0)
		WHERE id = ?`,
		businessID, businessID, businessID).Error; err != nil {
		return errors.Wrap(err, "failed to recalculate rating")
	}

	return nil
}

// IncrementViewCount adds delta page views to a business.
func (repo *businessRepository) IncrementViewCount(ctx context.Context, id uuid.UUID, delta int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + ?", delta)).Error; err != nil {
		return errors.Wrap(err, "failed to increment view count")
	}

	return nil
}

// CountByCategory returns the number of businesses referencing a category.
func (repo *businessRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("category_id = ?", categoryID).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count businesses by category")
	}

	return total, nil
}

// CountByStatus returns per-status totals, optionally scoped to one owner.
func (repo *businessRepository) CountByStatus(ctx context.Context, ownerID uuid.UUID) (repository.StatusCounts, error) {
	type statusCount struct {
		Status string
		Total  int64
	}

	query := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Select("status, COUNT(*) AS total").
		Group("status")
	if ownerID != uuid.Nil {
		query = query.Where("owner_id = ?", ownerID)
	}

	var rows []statusCount
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count businesses by status")
	}

	counts := make(repository.StatusCounts, len(rows))
	for _, row := range rows {
		counts[entity.BusinessStatus(row.Status)] = row.Total
	}

	return counts, nil
}

// toBusinessDomain maps the persistence model back to a pure domain entity.
func toBusinessDomain(businessM *model.BusinessModel) *entity.Business {
	var hours entity.OpeningHours
	if businessM.OpeningHours != nil {
		hours = make(entity.OpeningHours, len(businessM.OpeningHours))
		for day, window := range businessM.OpeningHours {
			hours[day] = entity.DayHours{
				Open:   window.Open,
				Close:  window.Close,
				Closed: window.Closed,
			}
		}
	}

	return &entity.Business{
		ID:              businessM.ID,
		Slug:            businessM.Slug,
		Name:            businessM.Name,
		Description:     businessM.Description,
		CategoryID:      businessM.CategoryID,
		OwnerID:         businessM.OwnerID,
		Address:         businessM.Address,
		City:            businessM.City,
		State:           businessM.State,
		Latitude:        businessM.Latitude,
		Longitude:       businessM.Longitude,
		Phone:           businessM.Phone,
		Email:           businessM.Email,
		Website:         businessM.Website,
		OpeningHours:    hours,
		Logo:            businessM.Logo,
		Images:          businessM.Images,
		Status:          entity.BusinessStatus(businessM.Status),
		RejectionReason: businessM.RejectionReason,
		IsVerified:      businessM.IsVerified,
		IsFeatured:      businessM.IsFeatured,
		AverageRating:   businessM.AverageRating,
		ReviewCount:     businessM.ReviewCount,
		ViewCount:       businessM.ViewCount,
		CreatedAt:       businessM.CreatedAt,
		UpdatedAt:       businessM.UpdatedAt,
	}
}

// fromBusinessDomain maps a pure domain entity to the persistence model.
func fromBusinessDomain(business *entity.Business) *model.BusinessModel {
	var hours map[string]model.DayHoursJSON
	if business.OpeningHours != nil {
		hours = make(map[string]model.DayHoursJSON, len(business.OpeningHours))
		for day, window := range business.OpeningHours {
			hours[day] = model.DayHoursJSON{
				Open:   window.Open,
				Close:  window.Close,
				Closed: window.Closed,
			}
		}
	}

	return &model.BusinessModel{
		ID:              business.ID,
		Slug:            business.Slug,
		Name:            business.Name,
		Description:     business.Description,
		CategoryID:      business.CategoryID,
		OwnerID:         business.OwnerID,
		Address:         business.Address,
		City:            business.City,
		State:           business.State,
		Latitude:        business.Latitude,
		Longitude:       business.Longitude,
		Phone:           business.Phone,
		Email:           business.Email,
		Website:         business.Website,
		OpeningHours:    hours,
		Logo:            business.Logo,
		Images:          business.Images,
		Status:          business.Status.String(),
		RejectionReason: business.RejectionReason,
		IsVerified:      business.IsVerified,
		IsFeatured:      business.IsFeatured,
		AverageRating:   business.AverageRating,
		ReviewCount:     business.ReviewCount,
		ViewCount:       business.ViewCount,
	}
}
