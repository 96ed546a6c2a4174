package impl

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"vouch/internal/domain/entity"
	"vouch/internal/domain/repository"
	mockRepo "vouch/internal/mocks/repository"
	mockSvc "vouch/internal/mocks/service"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// kycServiceFixtures holds all test dependencies for KYC service tests.
type kycServiceFixtures struct {
	t           *testing.T
	service     usecase.KYCUsecase
	txManager   *mockRepo.MockTransactionManager
	fileStorage *mockSvc.MockFileStorage
	dispatcher  *mockSvc.MockTaskDispatcher
}

func createTestKYCService(t *testing.T) kycServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	fileStorage := mockSvc.NewMockFileStorage(t)
	dispatcher := mockSvc.NewMockTaskDispatcher(t)

	service := NewKYCService(KYCServiceParams{
		TxManager:   txManager,
		FileStorage: fileStorage,
		Dispatcher:  dispatcher,
		Logger:      newDiscardLogger(),
	})

	return kycServiceFixtures{
		t:           t,
		service:     service,
		txManager:   txManager,
		fileStorage: fileStorage,
		dispatcher:  dispatcher,
	}
}

func (fx kycServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

// buyerUser builds an individual user with the default role.
func buyerUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:    id,
		Email: "buyer@example.com",
		Roles: []entity.Role{{Name: entity.RoleBuyer}},
		Profile: &entity.Profile{
			UserID:      id,
			AccountType: entity.AccountTypeIndividual,
		},
	}
}

func TestKYCService_ListDocumentTypes_FiltersByApplicability(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	actor := &entity.Capabilities{UserID: userID, Roles: []string{entity.RoleBuyer}}

	passport := &entity.DocumentType{
		ID: uuid.New(), Name: "Passport",
		ApplicableTo: entity.ApplicableToIndividual, IsActive: true, IsRequired: true,
	}
	incorporation := &entity.DocumentType{
		ID: uuid.New(), Name: "Certificate of Incorporation",
		ApplicableTo: entity.ApplicableToBusiness, IsActive: true, IsRequired: true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		mockTypeRepo.EXPECT().FindActive(ctx).
			Return([]*entity.DocumentType{passport, incorporation}, nil)
	})

	types, err := fx.service.ListDocumentTypes(ctx, actor, nil)

	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Passport", types[0].Name)
}

func TestKYCService_CreateSubmission_Success(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	actor := &entity.Capabilities{UserID: userID}
	input := &usecase.CreateSubmissionInput{UserID: userID, Notes: "first attempt"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)

		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
		mockSubRepo.EXPECT().FindActiveSubmissionByUser(ctx, userID).
			Return(nil, repository.ErrSubmissionNotFound)
		mockSubRepo.EXPECT().
			CreateSubmission(ctx, mock.AnythingOfType("*entity.KYCSubmission")).
			Return(nil)
	})

	submission, err := fx.service.CreateSubmission(ctx, actor, input)

	require.NoError(t, err)
	require.NotNil(t, submission)
	assert.Equal(t, userID, submission.UserID)
	assert.Nil(t, submission.BusinessID)
	assert.Equal(t, entity.SubmissionStatusPending, submission.Status)
	assert.Equal(t, "first attempt", submission.Notes)
}

func TestKYCService_GetVerificationStatus_ReportsMissingTypes(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	actor := &entity.Capabilities{UserID: userID}

	passport := &entity.DocumentType{
		ID: uuid.New(), Name: "Passport",
		ApplicableTo: entity.ApplicableToIndividual, IsActive: true, IsRequired: true,
	}
	submission := &entity.KYCSubmission{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubmissionStatusPending,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		mockSubRepo.EXPECT().FindSubmissionsByUser(ctx, userID).
			Return([]*entity.KYCSubmission{submission}, nil)
		mockTypeRepo.EXPECT().FindActive(ctx).
			Return([]*entity.DocumentType{passport}, nil)
	})

	output, err := fx.service.GetVerificationStatus(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, string(entity.SubmissionStatusPending), output.Status)
	require.NotNil(t, output.SubmissionID)
	assert.Equal(t, submission.ID, *output.SubmissionID)
	assert.False(t, output.IsVerified)
	assert.Equal(t, []string{"Passport"}, output.MissingTypes)
}

func TestKYCService_UploadDocument_NewDocument(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	actor := &entity.Capabilities{UserID: userID, Roles: []string{entity.RoleBuyer}}

	passport := &entity.DocumentType{
		ID: uuid.New(), Name: "Passport",
		ApplicableTo: entity.ApplicableToIndividual, IsActive: true, IsRequired: true,
		MaxFileSizeMB: 5, AllowedFile: []string{"pdf", "jpg"},
	}
	submission := &entity.KYCSubmission{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubmissionStatusPending,
	}
	input := &usecase.UploadDocumentInput{
		SubmissionID:   submission.ID,
		DocumentTypeID: passport.ID,
		Filename:       "passport.pdf",
		Size:           1024,
		Content:        bytes.NewReader([]byte("fake pdf")),
	}
	suggestedPath := fmt.Sprintf("submissions/%s/%s/passport.pdf", submission.ID, passport.ID)

	fx.fileStorage.EXPECT().
		Store(ctx, input.Content, suggestedPath).
		Return("submissions/stored/passport.pdf", int64(1024), "deadbeef", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
		mockTypeRepo.EXPECT().FindByID(ctx, passport.ID).Return(passport, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		mockSubRepo.EXPECT().
			CreateDocument(ctx, mock.AnythingOfType("*entity.KYCDocument")).
			Return(nil)
		mockSubRepo.EXPECT().FindSubmissionsByCreator(ctx, userID).
			Return([]*entity.KYCSubmission{submission}, nil)
		mockTypeRepo.EXPECT().FindActive(ctx).
			Return([]*entity.DocumentType{passport}, nil)
	})

	document, err := fx.service.UploadDocument(ctx, actor, input)

	require.NoError(t, err)
	require.NotNil(t, document)
	assert.Equal(t, submission.ID, document.SubmissionID)
	assert.Equal(t, passport.ID, document.DocumentTypeID)
	assert.Equal(t, "submissions/stored/passport.pdf", document.FilePath)
	assert.Equal(t, int64(1024), document.FileSizeBytes)
	assert.Equal(t, "deadbeef", document.FileHash)
	assert.Equal(t, entity.DocumentStatusPending, document.Status)
}

func TestKYCService_SubmitForReview_Success(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	actor := &entity.Capabilities{UserID: userID, Roles: []string{entity.RoleBuyer}}

	passport := &entity.DocumentType{
		ID: uuid.New(), Name: "Passport",
		ApplicableTo: entity.ApplicableToIndividual, IsActive: true, IsRequired: true,
	}
	submission := &entity.KYCSubmission{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubmissionStatusPending,
		Documents: []*entity.KYCDocument{
			{ID: uuid.New(), DocumentTypeID: passport.ID, Status: entity.DocumentStatusPending},
		},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		mockTypeRepo.EXPECT().FindActive(ctx).
			Return([]*entity.DocumentType{passport}, nil)
		mockSubRepo.EXPECT().
			UpdateSubmission(ctx, mock.AnythingOfType("*entity.KYCSubmission")).
			Return(nil)
	})

	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*service.VerificationTask")).
		Return(nil)

	updated, err := fx.service.SubmitForReview(ctx, actor, submission.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusInReview, updated.Status)
	assert.WithinDuration(t, time.Now(), updated.SubmittedAt, time.Minute)
}

func TestKYCService_ProcessVerification_ApprovesWhenCovered(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()

	passport := &entity.DocumentType{
		ID: uuid.New(), Name: "Passport",
		ApplicableTo: entity.ApplicableToIndividual, IsActive: true, IsRequired: true,
	}
	submission := &entity.KYCSubmission{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubmissionStatusInReview,
		Documents: []*entity.KYCDocument{
			{ID: uuid.New(), DocumentTypeID: passport.ID, Status: entity.DocumentStatusApproved},
		},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		mockTypeRepo.EXPECT().FindActive(ctx).
			Return([]*entity.DocumentType{passport}, nil)
		mockSubRepo.EXPECT().
			UpdateSubmission(ctx, mock.AnythingOfType("*entity.KYCSubmission")).
			Return(nil)
		mockSubRepo.EXPECT().FindSubmissionsByCreator(ctx, userID).
			Return([]*entity.KYCSubmission{submission}, nil)
		mockUserRepo.EXPECT().SetKYCVerified(ctx, userID, true).Return(nil)
	})

	err := fx.service.ProcessVerification(ctx, submission.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusApproved, submission.Status)
	require.NotNil(t, submission.ReviewedAt)
	assert.Nil(t, submission.ReviewedBy)
}

func TestKYCService_ProcessVerification_RejectsOnRejectedDocument(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()

	passport := &entity.DocumentType{
		ID: uuid.New(), Name: "Passport",
		ApplicableTo: entity.ApplicableToIndividual, IsActive: true, IsRequired: true,
	}
	submission := &entity.KYCSubmission{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubmissionStatusInReview,
		Documents: []*entity.KYCDocument{
			{
				ID:             uuid.New(),
				DocumentTypeID: passport.ID,
				DocumentType:   passport,
				Status:         entity.DocumentStatusRejected,
			},
		},
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		mockTypeRepo.EXPECT().FindActive(ctx).
			Return([]*entity.DocumentType{passport}, nil)
		mockSubRepo.EXPECT().
			UpdateSubmission(ctx, mock.AnythingOfType("*entity.KYCSubmission")).
			Return(nil)
		mockSubRepo.EXPECT().FindSubmissionsByCreator(ctx, userID).
			Return([]*entity.KYCSubmission{submission}, nil)
	})

	err := fx.service.ProcessVerification(ctx, submission.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusRejected, submission.Status)
	assert.Equal(t, "rejected documents: Passport", submission.RejectionReason)
}

func TestKYCService_ProcessVerification_AlreadyResolved(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	submission := &entity.KYCSubmission{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubmissionStatusApproved,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)

		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
	})

	err := fx.service.ProcessVerification(ctx, submission.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusApproved, submission.Status)
}

func TestKYCService_ResolveSubmission_Approve(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	reviewerID := uuid.New()
	submission := &entity.KYCSubmission{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubmissionStatusInReview,
	}
	input := &usecase.ResolveSubmissionInput{
		SubmissionID: submission.ID,
		ReviewerID:   &reviewerID,
		Approve:      true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
		mockSubRepo.EXPECT().
			UpdateSubmission(ctx, mock.AnythingOfType("*entity.KYCSubmission")).
			Return(nil)
		mockSubRepo.EXPECT().FindSubmissionsByCreator(ctx, userID).
			Return([]*entity.KYCSubmission{submission}, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		// Nothing is required for this profile, so the approval verifies the user.
		mockTypeRepo.EXPECT().FindActive(ctx).Return([]*entity.DocumentType{}, nil)
		mockUserRepo.EXPECT().SetKYCVerified(ctx, userID, true).Return(nil)
	})

	err := fx.service.ResolveSubmission(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusApproved, submission.Status)
	require.NotNil(t, submission.ReviewedBy)
	assert.Equal(t, reviewerID, *submission.ReviewedBy)
}

func TestKYCService_ResolveSubmission_KYBApprovalVerifiesBusinessAndCreator(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()
	reviewerID := uuid.New()

	incorporation := &entity.DocumentType{
		ID: uuid.New(), Name: "Certificate of Incorporation",
		ApplicableTo: entity.ApplicableToBusiness, IsActive: true, IsRequired: true,
	}
	submission := &entity.KYCSubmission{
		ID:         uuid.New(),
		UserID:     userID,
		BusinessID: &businessID,
		Status:     entity.SubmissionStatusInReview,
		Documents: []*entity.KYCDocument{
			{ID: uuid.New(), DocumentTypeID: incorporation.ID, Status: entity.DocumentStatusApproved},
		},
	}
	input := &usecase.ResolveSubmissionInput{
		SubmissionID: submission.ID,
		ReviewerID:   &reviewerID,
		Approve:      true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		mockBizRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)
		factory.EXPECT().BusinessRepo().Return(mockBizRepo)

		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockBizRepo.EXPECT().AcquireBusinessLock(ctx, businessID).Return(nil)
		mockSubRepo.EXPECT().
			UpdateSubmission(ctx, mock.AnythingOfType("*entity.KYCSubmission")).
			Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		mockTypeRepo.EXPECT().FindActive(ctx).
			Return([]*entity.DocumentType{incorporation}, nil)
		mockSubRepo.EXPECT().FindSubmissionsByBusiness(ctx, businessID).
			Return([]*entity.KYCSubmission{submission}, nil)
		mockBizRepo.EXPECT().FindBusinessByID(ctx, businessID).
			Return(&entity.BusinessProfile{ID: businessID}, nil)
		mockBizRepo.EXPECT().SetKYBVerified(ctx, businessID, true).Return(nil)
		// Approving the business also verifies the user who created it.
		mockSubRepo.EXPECT().FindSubmissionsByCreator(ctx, userID).
			Return([]*entity.KYCSubmission{submission}, nil)
		mockUserRepo.EXPECT().SetKYCVerified(ctx, userID, true).Return(nil)
	})

	err := fx.service.ResolveSubmission(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.SubmissionStatusApproved, submission.Status)
}

func TestKYCService_ResolveSubmission_SameStatusIsIdempotent(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	submission := &entity.KYCSubmission{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubmissionStatusApproved,
	}
	input := &usecase.ResolveSubmissionInput{SubmissionID: submission.ID, Approve: true}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)

		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
	})

	err := fx.service.ResolveSubmission(ctx, input)

	require.NoError(t, err)
}

func TestKYCService_ReviewDocument_ApproveResolvesSubmission(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	reviewerID := uuid.New()
	actor := &entity.Capabilities{UserID: reviewerID, IsAdmin: true}

	passport := &entity.DocumentType{
		ID: uuid.New(), Name: "Passport",
		ApplicableTo: entity.ApplicableToIndividual, IsActive: true, IsRequired: true,
	}
	document := &entity.KYCDocument{
		ID:             uuid.New(),
		DocumentTypeID: passport.ID,
		Status:         entity.DocumentStatusPending,
	}
	submission := &entity.KYCSubmission{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    entity.SubmissionStatusInReview,
		Documents: []*entity.KYCDocument{document},
	}
	document.SubmissionID = submission.ID
	input := &usecase.ReviewDocumentInput{
		DocumentID: document.ID,
		ReviewerID: reviewerID,
		Approve:    true,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockSubRepo.EXPECT().FindDocumentByID(ctx, document.ID).Return(document, nil)
		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
		mockSubRepo.EXPECT().UpdateDocument(ctx, document).Return(nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		mockTypeRepo.EXPECT().FindActive(ctx).
			Return([]*entity.DocumentType{passport}, nil)
		mockSubRepo.EXPECT().
			UpdateSubmission(ctx, mock.AnythingOfType("*entity.KYCSubmission")).
			Return(nil)
		mockSubRepo.EXPECT().FindSubmissionsByCreator(ctx, userID).
			Return([]*entity.KYCSubmission{submission}, nil)
		mockUserRepo.EXPECT().SetKYCVerified(ctx, userID, true).Return(nil)
	})

	err := fx.service.ReviewDocument(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, entity.DocumentStatusApproved, document.Status)
	require.NotNil(t, document.ReviewedBy)
	assert.Equal(t, reviewerID, *document.ReviewedBy)
	assert.Equal(t, entity.SubmissionStatusApproved, submission.Status)
}

func TestKYCService_BulkReview_SkipsMissingSubmissions(t *testing.T) {
	fx := createTestKYCService(t)

	ctx := context.Background()
	userID := uuid.New()
	reviewerID := uuid.New()
	actor := &entity.Capabilities{UserID: reviewerID, IsAdmin: true}

	submission := &entity.KYCSubmission{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.SubmissionStatusInReview,
	}
	missingID := uuid.New()
	input := &usecase.BulkReviewInput{
		SubmissionIDs:   []uuid.UUID{submission.ID, missingID},
		ReviewerID:      reviewerID,
		Approve:         false,
		RejectionReason: "fraud signals",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockSubRepo := mockRepo.NewMockSubmissionRepository(t)
		mockTypeRepo := mockRepo.NewMockDocumentTypeRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().SubmissionRepo().Return(mockSubRepo)
		factory.EXPECT().DocumentTypeRepo().Return(mockTypeRepo)

		mockSubRepo.EXPECT().FindSubmissionByID(ctx, submission.ID).Return(submission, nil)
		mockSubRepo.EXPECT().FindSubmissionByID(ctx, missingID).
			Return(nil, repository.ErrSubmissionNotFound)
		mockUserRepo.EXPECT().AcquireUserLock(ctx, userID).Return(nil)
		mockSubRepo.EXPECT().
			UpdateSubmission(ctx, mock.AnythingOfType("*entity.KYCSubmission")).
			Return(nil)
		mockSubRepo.EXPECT().FindSubmissionsByCreator(ctx, userID).
			Return([]*entity.KYCSubmission{submission}, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(buyerUser(userID), nil)
		mockTypeRepo.EXPECT().FindActive(ctx).Return([]*entity.DocumentType{
			{ID: uuid.New(), Name: "Passport", ApplicableTo: entity.ApplicableToIndividual, IsActive: true, IsRequired: true},
		}, nil)
	})

	output, err := fx.service.BulkReview(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Updated)
	assert.Equal(t, 1, output.Skipped)
	assert.Equal(t, entity.SubmissionStatusRejected, submission.Status)
	assert.Equal(t, "fraud signals", submission.RejectionReason)
}
