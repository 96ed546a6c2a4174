package impl

import (
	"context"
	"testing"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	mockRepo "vouch/internal/mocks/repository"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	t         *testing.T
	service   usecase.BusinessUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewBusinessService(BusinessServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	return businessServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

func (fx businessServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

// businessWithPrimary builds a business whose primary contact is the given user.
func businessWithPrimary(primaryUserID uuid.UUID) *entity.BusinessProfile {
	businessID := uuid.New()

	return &entity.BusinessProfile{
		ID:                 businessID,
		Name:               "Acme Trading Co.",
		RegistrationNumber: "12345678",
		Owners: []*entity.BusinessOwner{
			{
				ID:               uuid.New(),
				BusinessID:       businessID,
				UserID:           primaryUserID,
				OwnershipType:    entity.OwnershipTypeOwner,
				IsPrimaryContact: true,
			},
		},
	}
}

func TestBusinessService_CreateBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	creatorID := uuid.New()
	input := &usecase.CreateBusinessInput{
		CreatorID:          creatorID,
		Name:               "Acme Trading Co.",
		RegistrationNumber: "12345678",
		Country:            "TW",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().
			CreateBusiness(ctx, mock.AnythingOfType("*entity.BusinessProfile")).
			Return(nil)
		mockBusinessRepo.EXPECT().
			AddOwner(ctx, mock.AnythingOfType("*entity.BusinessOwner")).
			Return(nil)
	})

	business, err := fx.service.CreateBusiness(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, business)
	assert.Equal(t, "Acme Trading Co.", business.Name)
	require.Len(t, business.Owners, 1)
	creator := business.Owners[0]
	assert.Equal(t, creatorID, creator.UserID)
	assert.Equal(t, entity.OwnershipTypeOwner, creator.OwnershipType)
	assert.True(t, creator.IsPrimaryContact)
}

func TestBusinessService_CreateBusiness_MissingName(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	input := &usecase.CreateBusinessInput{
		CreatorID:          uuid.New(),
		RegistrationNumber: "12345678",
	}

	business, err := fx.service.CreateBusiness(ctx, input)

	assert.Nil(t, business)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_GetBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	actor := &entity.Capabilities{UserID: ownerID}
	business := businessWithPrimary(ownerID)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	})

	found, err := fx.service.GetBusiness(ctx, actor, business.ID)

	require.NoError(t, err)
	assert.Equal(t, business.ID, found.ID)
}

func TestBusinessService_GetBusiness_NotAnOwner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New()}
	business := businessWithPrimary(uuid.New())

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrNotBusinessOwner, "actor does not own this business"), func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	})

	found, err := fx.service.GetBusiness(ctx, actor, business.ID)

	assert.Nil(t, found)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotBusinessOwner))
}

func TestBusinessService_ListOwnedBusinesses(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	userID := uuid.New()
	owned := []*entity.BusinessProfile{businessWithPrimary(userID)}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().FindBusinessesByOwner(ctx, userID).Return(owned, nil)
	})

	businesses, err := fx.service.ListOwnedBusinesses(ctx, userID)

	require.NoError(t, err)
	require.Len(t, businesses, 1)
	assert.Equal(t, owned[0].ID, businesses[0].ID)
}

func TestBusinessService_AddOwner_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	primaryID := uuid.New()
	newOwnerID := uuid.New()
	actor := &entity.Capabilities{UserID: primaryID}
	business := businessWithPrimary(primaryID)

	percentage := 25.0
	input := &usecase.AddOwnerInput{
		BusinessID:          business.ID,
		UserID:              newOwnerID,
		OwnershipType:       entity.OwnershipTypeShareholder,
		OwnershipPercentage: &percentage,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockBusinessRepo.EXPECT().AcquireBusinessLock(ctx, business.ID).Return(nil)
		mockBusinessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
		mockUserRepo.EXPECT().FindByID(ctx, newOwnerID).
			Return(&entity.User{ID: newOwnerID}, nil)
		mockBusinessRepo.EXPECT().
			AddOwner(ctx, mock.AnythingOfType("*entity.BusinessOwner")).
			Return(nil)
	})

	owner, err := fx.service.AddOwner(ctx, actor, input)

	require.NoError(t, err)
	require.NotNil(t, owner)
	assert.Equal(t, newOwnerID, owner.UserID)
	assert.Equal(t, entity.OwnershipTypeShareholder, owner.OwnershipType)
	require.NotNil(t, owner.OwnershipPercentage)
	assert.Equal(t, 25.0, *owner.OwnershipPercentage)
	assert.False(t, owner.IsPrimaryContact)
}

func TestBusinessService_AddOwner_NewPrimaryContactDisplacesOld(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	primaryID := uuid.New()
	newOwnerID := uuid.New()
	actor := &entity.Capabilities{UserID: primaryID}
	business := businessWithPrimary(primaryID)

	input := &usecase.AddOwnerInput{
		BusinessID:       business.ID,
		UserID:           newOwnerID,
		OwnershipType:    entity.OwnershipTypeManager,
		IsPrimaryContact: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockBusinessRepo.EXPECT().AcquireBusinessLock(ctx, business.ID).Return(nil)
		mockBusinessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
		mockUserRepo.EXPECT().FindByID(ctx, newOwnerID).
			Return(&entity.User{ID: newOwnerID}, nil)
		mockBusinessRepo.EXPECT().ClearPrimaryContact(ctx, business.ID).Return(nil)
		mockBusinessRepo.EXPECT().
			AddOwner(ctx, mock.AnythingOfType("*entity.BusinessOwner")).
			Return(nil)
	})

	owner, err := fx.service.AddOwner(ctx, actor, input)

	require.NoError(t, err)
	assert.True(t, owner.IsPrimaryContact)
}

func TestBusinessService_AddOwner_InvalidOwnershipType(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New()}
	input := &usecase.AddOwnerInput{
		BusinessID:    uuid.New(),
		UserID:        uuid.New(),
		OwnershipType: entity.OwnershipType("janitor"),
	}

	owner, err := fx.service.AddOwner(ctx, actor, input)

	assert.Nil(t, owner)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_AddOwner_PercentageOutOfRange(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New()}
	percentage := 150.0
	input := &usecase.AddOwnerInput{
		BusinessID:          uuid.New(),
		UserID:              uuid.New(),
		OwnershipType:       entity.OwnershipTypeShareholder,
		OwnershipPercentage: &percentage,
	}

	owner, err := fx.service.AddOwner(ctx, actor, input)

	assert.Nil(t, owner)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_AddOwner_NotPrimaryContact(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New()}
	business := businessWithPrimary(uuid.New())
	input := &usecase.AddOwnerInput{
		BusinessID:    business.ID,
		UserID:        uuid.New(),
		OwnershipType: entity.OwnershipTypeOwner,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrNotPrimaryContact, "only the primary contact or an admin may add owners"), func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().AcquireBusinessLock(ctx, business.ID).Return(nil)
		mockBusinessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	})

	owner, err := fx.service.AddOwner(ctx, actor, input)

	assert.Nil(t, owner)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotPrimaryContact))
}

func TestBusinessService_AddOwner_AlreadyOwner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	primaryID := uuid.New()
	actor := &entity.Capabilities{UserID: primaryID}
	business := businessWithPrimary(primaryID)
	input := &usecase.AddOwnerInput{
		BusinessID:    business.ID,
		UserID:        primaryID,
		OwnershipType: entity.OwnershipTypeDirector,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrAlreadyOwner, "user already owns this business"), func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().AcquireBusinessLock(ctx, business.ID).Return(nil)
		mockBusinessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	})

	owner, err := fx.service.AddOwner(ctx, actor, input)

	assert.Nil(t, owner)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyOwner))
}

func TestBusinessService_RemoveOwner_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	primaryID := uuid.New()
	removedID := uuid.New()
	actor := &entity.Capabilities{UserID: primaryID}
	business := businessWithPrimary(primaryID)
	business.Owners = append(business.Owners, &entity.BusinessOwner{
		ID:            uuid.New(),
		BusinessID:    business.ID,
		UserID:        removedID,
		OwnershipType: entity.OwnershipTypeShareholder,
	})

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().AcquireBusinessLock(ctx, business.ID).Return(nil)
		mockBusinessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
		mockBusinessRepo.EXPECT().RemoveOwner(ctx, business.ID, removedID).Return(nil)
	})

	err := fx.service.RemoveOwner(ctx, actor, business.ID, removedID)

	require.NoError(t, err)
}

func TestBusinessService_RemoveOwner_RecordNotFound(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	primaryID := uuid.New()
	actor := &entity.Capabilities{UserID: primaryID}
	business := businessWithPrimary(primaryID)
	strangerID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrNotFound, "ownership record not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().AcquireBusinessLock(ctx, business.ID).Return(nil)
		mockBusinessRepo.EXPECT().FindBusinessByID(ctx, business.ID).Return(business, nil)
	})

	err := fx.service.RemoveOwner(ctx, actor, business.ID, strangerID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestBusinessService_IsAuthorizedActor_AdminShortCircuits(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New(), IsAdmin: true}

	// No repository lookup happens for admins.
	authorized, err := fx.service.IsAuthorizedActor(ctx, actor, uuid.New())

	require.NoError(t, err)
	assert.True(t, authorized)
}

func TestBusinessService_IsAuthorizedActor_Owner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	businessID := uuid.New()
	actor := &entity.Capabilities{UserID: ownerID}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().FindOwner(ctx, businessID, ownerID).
			Return(&entity.BusinessOwner{BusinessID: businessID, UserID: ownerID}, nil)
	})

	authorized, err := fx.service.IsAuthorizedActor(ctx, actor, businessID)

	require.NoError(t, err)
	assert.True(t, authorized)
}

func TestBusinessService_IsAuthorizedActor_NonOwner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	businessID := uuid.New()
	actor := &entity.Capabilities{UserID: uuid.New()}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockBusinessRepo.EXPECT().FindOwner(ctx, businessID, actor.UserID).
			Return(nil, repository.ErrOwnerNotFound)
	})

	authorized, err := fx.service.IsAuthorizedActor(ctx, actor, businessID)

	require.NoError(t, err)
	assert.False(t, authorized)
}
