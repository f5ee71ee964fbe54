package usecase

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/domain/policy"

	"github.com/google/uuid"
)

// CreateBusinessInput carries the owner-supplied fields of a new listing.
// Validation bounds follow the platform's submission form.
type CreateBusinessInput struct {
	Name        string `validate:"required,min=3,max=100"`
	Description string `validate:"required,min=100,max=5000"`
	CategoryID  uuid.UUID
	Address     string `validate:"required,min=5,max=255"`
	City        string `validate:"required"`
	State       string `validate:"required"`
	Latitude    float64
	Longitude   float64
	Phone       string `validate:"required,min=10,max=20"`
	Email       string `validate:"omitempty,email"`
	Website     string `validate:"omitempty,url"`

	OpeningHours entity.OpeningHours
	Logo         string
	Images       []string
}

// UpdateBusinessInput is a partial patch; nil fields are left untouched.
type UpdateBusinessInput struct {
	Name        *string
	Description *string
	CategoryID  *uuid.UUID
	Address     *string
	City        *string
	State       *string
	Latitude    *float64
	Longitude   *float64
	Phone       *string
	Email       *string
	Website     *string

	OpeningHours entity.OpeningHours
	Logo         *string
	Images       []string
}

// ListBusinessesInput narrows and pages the public directory listing.
type ListBusinessesInput struct {
	CategorySlug string
	City         string
	Query        string
	Featured     *bool
	// Status is honored only for admin callers; everyone else sees APPROVED.
	Status string
	// Sort is one of "rating", "newest", "name".
	Sort  string
	Page  int
	Limit int
}

// NearbyBusinessesInput searches approved listings around a coordinate.
type NearbyBusinessesInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

// NearbyBusiness bundles a listing with its distance from the query point.
type NearbyBusiness struct {
	Business   *entity.Business `json:"business"`
	DistanceKm float64          `json:"distanceKm"`
}

// BusinessUsecase defines listing lifecycle and moderation use cases.
type BusinessUsecase interface {
	// Create validates and inserts a new listing in PENDING status.
	Create(ctx context.Context, caller policy.Caller, input *CreateBusinessInput) (*entity.Business, error)

	// Update patches a listing's content fields. Listings in REJECTED
	// status are locked and cannot be edited.
	Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *UpdateBusinessInput) (*entity.Business, error)

	// Delete soft-deletes a listing. Admin only.
	Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error

	// Approve transitions PENDING → APPROVED. Any other current status is a conflict.
	Approve(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Business, error)

	// Reject transitions PENDING → REJECTED with a mandatory non-empty reason.
	Reject(ctx context.Context, caller policy.Caller, id uuid.UUID, reason string) (*entity.Business, error)

	// Deactivate transitions APPROVED → INACTIVE.
	Deactivate(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Business, error)

	// List retrieves a filtered page of listings. Non-admin callers only
	// ever see APPROVED businesses.
	List(ctx context.Context, caller policy.Caller, input *ListBusinessesInput) (*Page[*entity.Business], error)

	// ListNearby retrieves approved listings within a radius of a point,
	// closest first.
	ListNearby(ctx context.Context, input *NearbyBusinessesInput) ([]*NearbyBusiness, error)

	// ListPending retrieves the admin moderation queue.
	ListPending(ctx context.Context, caller policy.Caller, page, limit int) (*Page[*entity.Business], error)

	// ListOwned retrieves the caller's own listings in any status.
	ListOwned(ctx context.Context, caller policy.Caller, page, limit int) (*Page[*entity.Business], error)

	// GetByID retrieves one listing, counting a public page view.
	GetByID(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Business, error)

	// GetBySlug retrieves one listing by slug, counting a public page view.
	GetBySlug(ctx context.Context, caller policy.Caller, slug string) (*entity.Business, error)

	// QRCode renders the PNG QR code for a listing's public page.
	QRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
