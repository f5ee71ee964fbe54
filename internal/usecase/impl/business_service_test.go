package impl

import (
	"context"
	"testing"

	"directory/internal/domain/entity"
	"directory/internal/domain/repository"
	mockRepo "directory/internal/mocks/repository"
	mockSvc "directory/internal/mocks/service"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	businessRepo *mockRepo.MockBusinessRepository
	categoryRepo *mockRepo.MockCategoryRepository
	qrcodeSvc    *mockSvc.MockQRCodeService
	publisher    *mockSvc.MockEventPublisher
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewBusinessService(BusinessServiceParams{
		BusinessRepo: businessRepo,
		CategoryRepo: categoryRepo,
		QRCodeSvc:    qrcodeSvc,
		Publisher:    publisher,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	})

	return businessServiceFixtures{
		service:      service,
		businessRepo: businessRepo,
		categoryRepo: categoryRepo,
		qrcodeSvc:    qrcodeSvc,
		publisher:    publisher,
	}
}

func newCreateBusinessInput(categoryID uuid.UUID) *usecase.CreateBusinessInput {
	return &usecase.CreateBusinessInput{
		Name:        "Great Pho House",
		Description: "A family-run Vietnamese kitchen serving slow-simmered pho, fresh spring rolls and strong iced coffee in the heart of the old town since 1998.",
		CategoryID:  categoryID,
		Address:     "12 Noodle Street",
		City:        "Taipei",
		State:       "TW",
		Latitude:    25.0330,
		Longitude:   121.5654,
		Phone:       "+886212345678",
	}
}

func TestBusinessService_Create_StartsPending(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	caller := ownerCaller(uuid.New())
	categoryID := uuid.New()
	input := newCreateBusinessInput(categoryID)

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Slug: "restaurants"}, nil)

	fx.businessRepo.EXPECT().SlugExists(ctx, "great-pho-house").Return(false, nil)
	fx.businessRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Business")).
		Return(nil)

	business, err := fx.service.Create(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusPending, business.Status)
	assert.Equal(t, "great-pho-house", business.Slug)
	assert.Equal(t, caller.UserID, business.OwnerID)
}

func TestBusinessService_Create_SlugCollisionGetsSuffix(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	caller := ownerCaller(uuid.New())
	categoryID := uuid.New()
	input := newCreateBusinessInput(categoryID)

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)

	fx.businessRepo.EXPECT().SlugExists(ctx, "great-pho-house").Return(true, nil)
	fx.businessRepo.EXPECT().SlugExists(ctx, "great-pho-house-2").Return(false, nil)
	fx.businessRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Business")).
		Return(nil)

	business, err := fx.service.Create(ctx, caller, input)

	require.NoError(t, err)
	assert.Equal(t, "great-pho-house-2", business.Slug)
}

func TestBusinessService_Approve_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	caller := adminCaller()
	businessID := uuid.New()
	ownerID := uuid.New()

	fx.businessRepo.EXPECT().
		UpdateStatus(ctx, businessID, entity.BusinessStatusPending, entity.BusinessStatusApproved, "").
		Return(int64(1), nil)

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:      businessID,
			OwnerID: ownerID,
			Name:    "Great Pho House",
			Status:  entity.BusinessStatusApproved,
		}, nil)

	fx.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	business, err := fx.service.Approve(ctx, caller, businessID)

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusApproved, business.Status)
}

func TestBusinessService_Reject_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	caller := adminCaller()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		UpdateStatus(ctx, businessID, entity.BusinessStatusPending, entity.BusinessStatusRejected, "incomplete address").
		Return(int64(1), nil)

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:              businessID,
			OwnerID:         uuid.New(),
			Status:          entity.BusinessStatusRejected,
			RejectionReason: "incomplete address",
		}, nil)

	fx.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	business, err := fx.service.Reject(ctx, caller, businessID, "incomplete address")

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusRejected, business.Status)
	assert.Equal(t, "incomplete address", business.RejectionReason)
}

func TestBusinessService_Deactivate_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	caller := ownerCaller(ownerID)
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:      businessID,
			OwnerID: ownerID,
			Status:  entity.BusinessStatusApproved,
		}, nil)

	fx.businessRepo.EXPECT().
		UpdateStatus(ctx, businessID, entity.BusinessStatusApproved, entity.BusinessStatusInactive, "").
		Return(int64(1), nil)

	business, err := fx.service.Deactivate(ctx, caller, businessID)

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusInactive, business.Status)
}

func TestBusinessService_Update_PatchesContentFields(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	caller := ownerCaller(ownerID)
	businessID := uuid.New()
	newName := "Greater Pho House"

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:      businessID,
			OwnerID: ownerID,
			Name:    "Great Pho House",
			Status:  entity.BusinessStatusApproved,
		}, nil)

	fx.businessRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Business")).
		Run(func(ctx context.Context, business *entity.Business) {
			assert.Equal(t, newName, business.Name)
		}).
		Return(nil)

	business, err := fx.service.Update(ctx, caller, businessID, &usecase.UpdateBusinessInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, newName, business.Name)
}

func TestBusinessService_List_PublicSeesApprovedOnly(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	listed := []*entity.Business{{ID: uuid.New(), Status: entity.BusinessStatusApproved}}

	// A non-admin status filter is ignored; the directory stays APPROVED.
	fx.businessRepo.EXPECT().
		List(ctx, repository.BusinessFilter{
			Statuses: []entity.BusinessStatus{entity.BusinessStatusApproved},
			Sort:     "rating",
			Offset:   0,
			Limit:    20,
		}).
		Return(listed, int64(1), nil)

	page, err := fx.service.List(ctx, userCaller(uuid.New()), &usecase.ListBusinessesInput{
		Status: "pending",
		Sort:   "rating",
	})

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
}

func TestBusinessService_List_AdminStatusFilter(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	fx.businessRepo.EXPECT().
		List(ctx, repository.BusinessFilter{
			Statuses: []entity.BusinessStatus{entity.BusinessStatusRejected},
			Offset:   0,
			Limit:    20,
		}).
		Return([]*entity.Business{}, int64(0), nil)

	page, err := fx.service.List(ctx, adminCaller(), &usecase.ListBusinessesInput{Status: "rejected"})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestBusinessService_ListNearby_FiltersAndSortsByDistance(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	near := &entity.Business{ID: uuid.New(), Latitude: 25.0340, Longitude: 121.5654, Status: entity.BusinessStatusApproved}
	nearest := &entity.Business{ID: uuid.New(), Latitude: 25.0330, Longitude: 121.5654, Status: entity.BusinessStatusApproved}
	far := &entity.Business{ID: uuid.New(), Latitude: 26.0330, Longitude: 121.5654, Status: entity.BusinessStatusApproved}

	fx.businessRepo.EXPECT().
		List(ctx, repository.BusinessFilter{
			Statuses: []entity.BusinessStatus{entity.BusinessStatusApproved},
			Limit:    nearbyCandidateLimit,
		}).
		Return([]*entity.Business{near, nearest, far}, int64(3), nil)

	results, err := fx.service.ListNearby(ctx, &usecase.NearbyBusinessesInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
		RadiusKm:  10,
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, nearest.ID, results[0].Business.ID)
	assert.Equal(t, near.ID, results[1].Business.ID)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
}

func TestBusinessService_ListPending_ReturnsModerationQueue(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	pending := []*entity.Business{{ID: uuid.New(), Status: entity.BusinessStatusPending}}

	fx.businessRepo.EXPECT().
		List(ctx, repository.BusinessFilter{
			Statuses: []entity.BusinessStatus{entity.BusinessStatusPending},
			Offset:   0,
			Limit:    20,
		}).
		Return(pending, int64(1), nil)

	page, err := fx.service.ListPending(ctx, adminCaller(), 1, 20)

	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestBusinessService_ListOwned_IncludesEveryStatus(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owned := []*entity.Business{
		{ID: uuid.New(), OwnerID: ownerID, Status: entity.BusinessStatusPending},
		{ID: uuid.New(), OwnerID: ownerID, Status: entity.BusinessStatusRejected},
	}

	fx.businessRepo.EXPECT().
		List(ctx, repository.BusinessFilter{
			OwnerID: ownerID,
			Offset:  0,
			Limit:   20,
		}).
		Return(owned, int64(2), nil)

	page, err := fx.service.ListOwned(ctx, ownerCaller(ownerID), 1, 20)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestBusinessService_GetBySlug_CountsPublicView(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		FindBySlug(ctx, "great-pho-house").
		Return(&entity.Business{
			ID:     businessID,
			Slug:   "great-pho-house",
			Status: entity.BusinessStatusApproved,
		}, nil)

	fx.businessRepo.EXPECT().IncrementViewCount(ctx, businessID, int64(1)).Return(nil)

	business, err := fx.service.GetBySlug(ctx, anonymousCaller(), "great-pho-house")

	require.NoError(t, err)
	assert.Equal(t, businessID, business.ID)
}

func TestBusinessService_GetByID_OwnerSeesPendingWithoutView(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:      businessID,
			OwnerID: ownerID,
			Status:  entity.BusinessStatusPending,
		}, nil)

	business, err := fx.service.GetByID(ctx, ownerCaller(ownerID), businessID)

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusPending, business.Status)
}

func TestBusinessService_QRCode_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:     businessID,
			Slug:   "great-pho-house",
			Status: entity.BusinessStatusApproved,
		}, nil)

	fx.qrcodeSvc.EXPECT().GenerateBusinessQR("great-pho-house").Return(png, nil)

	out, err := fx.service.QRCode(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, png, out)
}
