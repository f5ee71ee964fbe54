// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"directory/config"
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
	"github.com/gosimple/slug"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// slugAttempts bounds how many suffixed candidates are tried before giving up.
const slugAttempts = 10

type businessService struct {
	businessRepo repository.BusinessRepository
	categoryRepo repository.CategoryRepository
	qrcodeSvc    service.QRCodeService
	publisher    service.EventPublisher
	notifier     service.NotificationService
	viewCounter  service.ViewCounter
	config       *config.Config
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	CategoryRepo repository.CategoryRepository
	QRCodeSvc    service.QRCodeService
	Publisher    service.EventPublisher
	Notifier     service.NotificationService `optional:"true"`
	ViewCounter  service.ViewCounter         `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		categoryRepo: params.CategoryRepo,
		qrcodeSvc:    params.QRCodeSvc,
		publisher:    params.Publisher,
		notifier:     params.Notifier,
		viewCounter:  params.ViewCounter,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates and inserts a new listing in PENDING status.
func (srv *businessService) Create(ctx context.Context, caller policy.Caller, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	if !policy.CanCreateBusiness(caller) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot create businesses")
	}

	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("unknown category for new business")
		}

		return nil, errors.Wrap(err, "failed to verify category")
	}

	businessSlug, err := srv.uniqueSlug(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	business := &entity.Business{
		ID:           uuid.New(),
		Slug:         businessSlug,
		Name:         input.Name,
		Description:  input.Description,
		CategoryID:   input.CategoryID,
		OwnerID:      caller.UserID,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Phone:        input.Phone,
		Email:        input.Email,
		Website:      input.Website,
		OpeningHours: input.OpeningHours,
		Logo:         input.Logo,
		Images:       input.Images,
		Status:       entity.BusinessStatusPending,
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrBusinessSlugTaken.WrapMessage("slug collided on insert")
		}

		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business submitted for moderation",
		slog.Any("businessID", business.ID),
		slog.Any("ownerID", caller.UserID),
	)

	return business, nil
}

// uniqueSlug derives a slug from the name, appending a numeric suffix until free.
func (srv *businessService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)

	candidate := base
	for i := 2; i <= slugAttempts+1; i++ {
		taken, err := srv.businessRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug availability")
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return "", domainerrors.ErrBusinessSlugTaken.WrapMessage("no free slug candidate for " + base)
}

// Update patches a listing's content fields.
func (srv *businessService) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business missing on update")
		}

		return nil, errors.Wrap(err, "failed to load business for update")
	}

	if !policy.CanEditBusiness(caller, business) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot edit this business")
	}

	// A rejected listing is locked; there is no re-submit flow.
	if business.Status == entity.BusinessStatusRejected {
		return nil, domainerrors.ErrBusinessLocked.WrapMessage("attempted edit on rejected business")
	}

	if err := srv.applyBusinessPatch(ctx, business, input); err != nil {
		return nil, err
	}

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	return business, nil
}

func (srv *businessService) applyBusinessPatch(ctx context.Context, business *entity.Business, input *usecase.UpdateBusinessInput) error {
	if input.Name != nil {
		if len(strings.TrimSpace(*input.Name)) < 3 {
			return domainerrors.ErrValidationFailed.WrapMessage("business name too short")
		}
		business.Name = *input.Name
	}
	if input.Description != nil {
		if len(strings.TrimSpace(*input.Description)) < 100 {
			return domainerrors.ErrValidationFailed.WrapMessage("business description too short")
		}
		business.Description = *input.Description
	}
	if input.CategoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("unknown category on update")
			}

			return errors.Wrap(err, "failed to verify category")
		}
		business.CategoryID = *input.CategoryID
	}
	if input.Address != nil {
		if len(strings.TrimSpace(*input.Address)) < 5 {
			return domainerrors.ErrValidationFailed.WrapMessage("address too short")
		}
		business.Address = *input.Address
	}
	if input.City != nil {
		business.City = *input.City
	}
	if input.State != nil {
		business.State = *input.State
	}
	if input.Latitude != nil || input.Longitude != nil {
		// Coordinates only move as a pair.
		if input.Latitude == nil || input.Longitude == nil {
			return domainerrors.ErrValidationFailed.WrapMessage("latitude and longitude must be updated together")
		}
		if err := validateCoordinates(*input.Latitude, *input.Longitude); err != nil {
			return err
		}
		business.Latitude = *input.Latitude
		business.Longitude = *input.Longitude
	}
	if input.Phone != nil {
		if len(strings.TrimSpace(*input.Phone)) < 10 {
			return domainerrors.ErrValidationFailed.WrapMessage("phone number too short")
		}
		business.Phone = *input.Phone
	}
	if input.Email != nil {
		business.Email = *input.Email
	}
	if input.Website != nil {
		business.Website = *input.Website
	}
	if input.OpeningHours != nil {
		business.OpeningHours = input.OpeningHours
	}
	if input.Logo != nil {
		business.Logo = *input.Logo
	}
	if input.Images != nil {
		business.Images = input.Images
	}

	return nil
}

func validateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return domainerrors.ErrValidationFailed.WrapMessage("coordinates out of range")
	}

	return nil
}

// Delete soft-deletes a listing. Admin only.
func (srv *businessService) Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if !policy.CanDeleteBusiness(caller) {
		return domainerrors.ErrForbidden.WrapMessage("caller cannot delete businesses")
	}

	if err := srv.businessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("business missing on delete")
		}

		return errors.Wrap(err, "failed to delete business")
	}

	return nil
}

// Approve transitions PENDING → APPROVED.
func (srv *businessService) Approve(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Business, error) {
	return srv.moderate(ctx, caller, id, entity.BusinessStatusApproved, "")
}

// Reject transitions PENDING → REJECTED with a mandatory reason.
func (srv *businessService) Reject(ctx context.Context, caller policy.Caller, id uuid.UUID, reason string) (*entity.Business, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rejection reason must not be empty")
	}

	return srv.moderate(ctx, caller, id, entity.BusinessStatusRejected, reason)
}

// moderate performs a guarded PENDING → decision transition and emits the
// moderation event. The status update is a single conditional statement, so
// two concurrent decisions cannot both succeed.
func (srv *businessService) moderate(ctx context.Context, caller policy.Caller, id uuid.UUID, decision entity.BusinessStatus, reason string) (*entity.Business, error) {
	if !policy.CanModerateBusiness(caller) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot moderate businesses")
	}

	affected, err := srv.businessRepo.UpdateStatus(ctx, id, entity.BusinessStatusPending, decision, reason)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update business status")
	}

	if affected == 0 {
		// Distinguish a missing row from a listing that already left PENDING.
		if _, findErr := srv.businessRepo.FindByID(ctx, id); findErr != nil {
			if errors.Is(findErr, repository.ErrBusinessNotFound) {
				return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business missing on moderation")
			}

			return nil, errors.Wrap(findErr, "failed to load business after status update")
		}

		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage("business is not pending")
	}

	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload business after moderation")
	}

	srv.publishModerationEvent(ctx, business, reason)
	srv.notifyOwner(ctx, business, reason)

	srv.log(ctx).Info("Business moderated",
		slog.Any("businessID", business.ID),
		slog.String("decision", decision.String()),
	)

	return business, nil
}

// Deactivate transitions APPROVED → INACTIVE.
func (srv *businessService) Deactivate(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business missing on deactivate")
		}

		return nil, errors.Wrap(err, "failed to load business for deactivation")
	}

	if !policy.CanDeactivateBusiness(caller, business) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot deactivate this business")
	}

	affected, err := srv.businessRepo.UpdateStatus(ctx, id, entity.BusinessStatusApproved, entity.BusinessStatusInactive, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to deactivate business")
	}
	if affected == 0 {
		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage("business is not approved")
	}

	business.Status = entity.BusinessStatusInactive

	return business, nil
}

func (srv *businessService) publishModerationEvent(ctx context.Context, business *entity.Business, reason string) {
	if srv.publisher == nil {
		return
	}

	eventType := constants.EventBusinessApproved
	if business.Status == entity.BusinessStatusRejected {
		eventType = constants.EventBusinessRejected
	}

	event := &service.ModerationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		BusinessID: business.ID.String(),
		OwnerID:    business.OwnerID.String(),
		Reason:     reason,
	}

	// Event delivery is best effort; the transition itself already committed.
	if err := srv.publisher.PublishModerationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish moderation event",
			slog.Any("businessID", business.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *businessService) notifyOwner(ctx context.Context, business *entity.Business, reason string) {
	if srv.notifier == nil {
		return
	}

	notification := &service.OwnerNotification{
		Title: "商家審核結果",
		Body:  "您的商家「" + business.Name + "」已通過審核",
		Data: map[string]string{
			"business_id": business.ID.String(),
			"status":      business.Status.String(),
		},
	}
	if business.Status == entity.BusinessStatusRejected {
		notification.Body = "您的商家「" + business.Name + "」未通過審核：" + reason
	}

	if err := srv.notifier.SendToTopic(ctx, ownerTopic(business.OwnerID), notification); err != nil {
		srv.log(ctx).Warn("Failed to push moderation notification",
			slog.Any("businessID", business.ID),
			slog.Any("error", err),
		)
	}
}

// ownerTopic is the FCM topic owners subscribe to from their dashboard.
func ownerTopic(ownerID uuid.UUID) string {
	return "owner-" + ownerID.String()
}

// List retrieves a filtered page of listings.
func (srv *businessService) List(ctx context.Context, caller policy.Caller, input *usecase.ListBusinessesInput) (*usecase.Page[*entity.Business], error) {
	offset, page, limit := util.NormalizePaging(input.Page, input.Limit)

	filter := repository.BusinessFilter{
		Statuses:     []entity.BusinessStatus{entity.BusinessStatusApproved},
		CategorySlug: input.CategorySlug,
		City:         input.City,
		Query:        input.Query,
		Featured:     input.Featured,
		Sort:         input.Sort,
		Offset:       offset,
		Limit:        limit,
	}

	// Only moderators may look beyond the public directory.
	if input.Status != "" && policy.CanModerateBusiness(caller) {
		status := entity.BusinessStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown status filter")
		}
		filter.Statuses = []entity.BusinessStatus{status}
	}

	businesses, total, err := srv.businessRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return usecase.NewPage(businesses, page, limit, total), nil
}

// nearbyCandidateLimit caps how many approved rows are scanned for a
// nearby query before distance filtering.
const nearbyCandidateLimit = 500

// ListNearby retrieves approved listings within a radius of a point, closest first.
func (srv *businessService) ListNearby(ctx context.Context, input *usecase.NearbyBusinessesInput) ([]*usecase.NearbyBusiness, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = srv.config.Directory.DefaultNearbyRadiusKm
	}
	if radiusKm > srv.config.Directory.MaxNearbyRadiusKm {
		radiusKm = srv.config.Directory.MaxNearbyRadiusKm
	}

	businesses, _, err := srv.businessRepo.List(ctx, repository.BusinessFilter{
		Statuses: []entity.BusinessStatus{entity.BusinessStatusApproved},
		Limit:    nearbyCandidateLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load businesses for nearby query")
	}

	origin := orb.Point{input.Longitude, input.Latitude}
	results := make([]*usecase.NearbyBusiness, 0, len(businesses))
	for _, business := range businesses {
		distanceKm := geo.Distance(origin, orb.Point{business.Longitude, business.Latitude}) / 1000
		if distanceKm > radiusKm {
			continue
		}
		results = append(results, &usecase.NearbyBusiness{
			Business:   business,
			DistanceKm: distanceKm,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	limit := input.Limit
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// ListPending retrieves the admin moderation queue.
func (srv *businessService) ListPending(ctx context.Context, caller policy.Caller, page, limit int) (*usecase.Page[*entity.Business], error) {
	if !policy.CanModerateBusiness(caller) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot view the moderation queue")
	}

	offset, page, limit := util.NormalizePaging(page, limit)
	businesses, total, err := srv.businessRepo.List(ctx, repository.BusinessFilter{
		Statuses: []entity.BusinessStatus{entity.BusinessStatusPending},
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending businesses")
	}

	return usecase.NewPage(businesses, page, limit, total), nil
}

// ListOwned retrieves the caller's own listings in any status.
func (srv *businessService) ListOwned(ctx context.Context, caller policy.Caller, page, limit int) (*usecase.Page[*entity.Business], error) {
	if caller.IsAnonymous() {
		return nil, domainerrors.ErrForbidden.WrapMessage("anonymous caller cannot list owned businesses")
	}

	offset, page, limit := util.NormalizePaging(page, limit)
	businesses, total, err := srv.businessRepo.List(ctx, repository.BusinessFilter{
		OwnerID: caller.UserID,
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned businesses")
	}

	return usecase.NewPage(businesses, page, limit, total), nil
}

// GetByID retrieves one listing, counting a public page view.
func (srv *businessService) GetByID(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business missing on get")
		}

		return nil, errors.Wrap(err, "failed to load business")
	}

	return srv.finishGet(ctx, caller, business)
}

// GetBySlug retrieves one listing by slug, counting a public page view.
func (srv *businessService) GetBySlug(ctx context.Context, caller policy.Caller, businessSlug string) (*entity.Business, error) {
	business, err := srv.businessRepo.FindBySlug(ctx, businessSlug)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business missing on get by slug")
		}

		return nil, errors.Wrap(err, "failed to load business by slug")
	}

	return srv.finishGet(ctx, caller, business)
}

// finishGet hides non-visible listings from unauthorized callers and counts
// the view for public ones.
func (srv *businessService) finishGet(ctx context.Context, caller policy.Caller, business *entity.Business) (*entity.Business, error) {
	if !policy.CanSeeBusiness(caller, business) {
		// Hidden listings are indistinguishable from missing ones.
		return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business not visible to caller")
	}

	if business.IsPubliclyVisible() {
		srv.countView(ctx, business.ID)
	}

	return business, nil
}

func (srv *businessService) countView(ctx context.Context, businessID uuid.UUID) {
	if srv.viewCounter != nil {
		if err := srv.viewCounter.Hit(ctx, businessID); err != nil {
			srv.log(ctx).Warn("Failed to record view hit", slog.Any("businessID", businessID), slog.Any("error", err))
		}

		return
	}

	if err := srv.businessRepo.IncrementViewCount(ctx, businessID, 1); err != nil {
		srv.log(ctx).Warn("Failed to increment view count", slog.Any("businessID", businessID), slog.Any("error", err))
	}
}

// QRCode renders the PNG QR code for a listing's public page.
func (srv *businessService) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business missing on QR generation")
		}

		return nil, errors.Wrap(err, "failed to load business for QR generation")
	}

	if !business.IsPubliclyVisible() {
		return nil, domainerrors.ErrBusinessNotFound.WrapMessage("QR requested for non-public business")
	}

	qrCode, err := srv.qrcodeSvc.GenerateBusinessQR(business.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate business QR")
	}

	return qrCode, nil
}
