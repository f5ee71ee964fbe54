package impl

import (
	"context"
	"testing"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBusinessService_Create_Forbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	input := newCreateBusinessInput(uuid.New())

	business, err := fx.service.Create(ctx, userCaller(uuid.New()), input)

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_Create_UnknownCategory(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	input := newCreateBusinessInput(categoryID)

	fx.categoryRepo.EXPECT().
		FindByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	business, err := fx.service.Create(ctx, ownerCaller(uuid.New()), input)

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
}

func TestBusinessService_Create_CoordinatesOutOfRange(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	input := newCreateBusinessInput(uuid.New())
	input.Latitude = 91

	business, err := fx.service.Create(ctx, ownerCaller(uuid.New()), input)

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_Reject_EmptyReason(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()

	business, err := fx.service.Reject(ctx, adminCaller(), uuid.New(), "   ")

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_Approve_NotPendingConflict(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		UpdateStatus(ctx, businessID, entity.BusinessStatusPending, entity.BusinessStatusApproved, "").
		Return(int64(0), nil)

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{ID: businessID, Status: entity.BusinessStatusApproved}, nil)

	business, err := fx.service.Approve(ctx, adminCaller(), businessID)

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestBusinessService_Approve_MissingBusiness(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		UpdateStatus(ctx, businessID, entity.BusinessStatusPending, entity.BusinessStatusApproved, "").
		Return(int64(0), nil)

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(nil, repository.ErrBusinessNotFound)

	business, err := fx.service.Approve(ctx, adminCaller(), businessID)

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_Approve_NonAdminForbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	business, err := fx.service.Approve(context.Background(), ownerCaller(uuid.New()), uuid.New())

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_Update_RejectedIsLocked(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	businessID := uuid.New()
	newName := "Another Name"

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:      businessID,
			OwnerID: ownerID,
			Status:  entity.BusinessStatusRejected,
		}, nil)

	business, err := fx.service.Update(ctx, ownerCaller(ownerID), businessID, &usecase.UpdateBusinessInput{Name: &newName})

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessLocked))
}

func TestBusinessService_Update_OtherOwnerForbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	newName := "Another Name"

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:      businessID,
			OwnerID: uuid.New(),
			Status:  entity.BusinessStatusApproved,
		}, nil)

	business, err := fx.service.Update(ctx, ownerCaller(uuid.New()), businessID, &usecase.UpdateBusinessInput{Name: &newName})

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_Update_HalfCoordinatePair(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	businessID := uuid.New()
	latitude := 25.1

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:      businessID,
			OwnerID: ownerID,
			Status:  entity.BusinessStatusApproved,
		}, nil)

	business, err := fx.service.Update(ctx, ownerCaller(ownerID), businessID, &usecase.UpdateBusinessInput{Latitude: &latitude})

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_Deactivate_NotApproved(t *testing.T) {
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

	fx.businessRepo.EXPECT().
		UpdateStatus(ctx, businessID, entity.BusinessStatusApproved, entity.BusinessStatusInactive, "").
		Return(int64(0), nil)

	business, err := fx.service.Deactivate(ctx, ownerCaller(ownerID), businessID)

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestBusinessService_GetByID_HiddenFromStrangers(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:      businessID,
			OwnerID: uuid.New(),
			Status:  entity.BusinessStatusPending,
		}, nil)

	// Hidden listings read the same as missing ones.
	business, err := fx.service.GetByID(ctx, userCaller(uuid.New()), businessID)

	assert.Error(t, err)
	assert.Nil(t, business)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_QRCode_NonPublicBusiness(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(&entity.Business{
			ID:     businessID,
			Slug:   "great-pho-house",
			Status: entity.BusinessStatusInactive,
		}, nil)

	out, err := fx.service.QRCode(ctx, businessID)

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_Delete_NonAdminForbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	err := fx.service.Delete(context.Background(), ownerCaller(uuid.New()), uuid.New())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
