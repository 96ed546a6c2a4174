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

func validDocumentTypeInput() *usecase.DocumentTypeInput {
	return &usecase.DocumentTypeInput{
		Name:          "Passport",
		Description:   "Government issued passport",
		ApplicableTo:  entity.ApplicableToIndividual,
		IsActive:      true,
		IsRequired:    true,
		RequiredRoles: []string{entity.RoleBuyer},
		MaxFileSizeMB: 5,
		AllowedFile:   []string{"pdf", "jpg"},
	}
}

func TestKYCService_CreateDocumentType_Success(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New(), IsAdmin: true}
	input := validDocumentTypeInput()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockTypeRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.DocumentType")).
			Return(nil)
	})

	docType, err := fx.service.CreateDocumentType(ctx, actor, input)

	require.NoError(t, err)
	require.NotNil(t, docType)
	assert.Equal(t, "Passport", docType.Name)
	assert.Equal(t, entity.ApplicableToIndividual, docType.ApplicableTo)
	require.Len(t, docType.RequiredRoles, 1)
	assert.Equal(t, entity.RoleBuyer, docType.RequiredRoles[0].Name)
}

func TestKYCService_CreateDocumentType_NonAdmin(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New()}

	docType, err := fx.service.CreateDocumentType(ctx, actor, validDocumentTypeInput())

	assert.Nil(t, docType)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestKYCService_CreateDocumentType_InvalidInput(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New(), IsAdmin: true}

	missingName := validDocumentTypeInput()
	missingName.Name = ""
	_, err := fx.service.CreateDocumentType(ctx, actor, missingName)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	badAxis := validDocumentTypeInput()
	badAxis.ApplicableTo = entity.Applicability("everyone")
	_, err = fx.service.CreateDocumentType(ctx, actor, badAxis)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	badSize := validDocumentTypeInput()
	badSize.MaxFileSizeMB = 0
	_, err = fx.service.CreateDocumentType(ctx, actor, badSize)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestKYCService_UpdateDocumentType_Success(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New(), IsAdmin: true}
	existing := &entity.DocumentType{
		ID: uuid.New(), Name: "Passport",
		ApplicableTo: entity.ApplicableToIndividual, IsActive: true, IsRequired: true,
		MaxFileSizeMB: 5,
	}

	input := validDocumentTypeInput()
	input.IsActive = false

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockTypeRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		mockTypeRepo.EXPECT().Update(ctx, existing).Return(nil)
	})

	docType, err := fx.service.UpdateDocumentType(ctx, actor, existing.ID, input)

	require.NoError(t, err)
	assert.False(t, docType.IsActive)
}

func TestKYCService_UpdateDocumentType_NotFound(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New(), IsAdmin: true}
	typeID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrDocumentTypeNotFound, "document type not found"), func(factory *mockRepo.MockRepositoryFactory) {
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockTypeRepo.EXPECT().FindByID(ctx, typeID).
			Return(nil, repository.ErrDocumentTypeNotFound)
	})

	docType, err := fx.service.UpdateDocumentType(ctx, actor, typeID, validDocumentTypeInput())

	assert.Nil(t, docType)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDocumentTypeNotFound))
}

func TestKYCService_DeleteDocumentType_Referenced(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New(), IsAdmin: true}
	typeID := uuid.New()

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrDocumentTypeInUse, "deactivate the type instead of deleting it"), func(factory *mockRepo.MockRepositoryFactory) {
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockTypeRepo.EXPECT().Delete(ctx, typeID).
			Return(repository.ErrDocumentTypeReferenced)
	})

	err := fx.service.DeleteDocumentType(ctx, actor, typeID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDocumentTypeInUse))
}

func TestKYCService_ListAllDocumentTypes_IncludesInactive(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	actor := &entity.Capabilities{UserID: uuid.New(), IsAdmin: true}

	catalog := []*entity.DocumentType{
		{ID: uuid.New(), Name: "Passport", IsActive: true},
		{ID: uuid.New(), Name: "Legacy ID Card", IsActive: false},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockTypeRepo.EXPECT().FindAll(ctx).Return(catalog, nil)
	})

	types, err := fx.service.ListAllDocumentTypes(ctx, actor)

	require.NoError(t, err)
	assert.Len(t, types, 2)
}
