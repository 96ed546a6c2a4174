// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// submissionRepository implements the repository.SubmissionRepository interface.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{
		db: db,
	}
}

// activeStatuses are the non-terminal submission statuses.
var activeStatuses = []string{
	string(entity.SubmissionStatusPending),
	string(entity.SubmissionStatusInReview),
}

// CreateSubmission persists a new submission.
func (repo *submissionRepository) CreateSubmission(ctx context.Context, submission *entity.KYCSubmission) error {
	submissionM := fromSubmissionDomain(submission)

	if err := repo.db.WithContext(ctx).Omit("Documents", "User", "Business").Create(submissionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or business reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create submission")
	}

	submission.ID = submissionM.ID
	submission.CreatedAt = submissionM.CreatedAt
	submission.UpdatedAt = submissionM.UpdatedAt

	return nil
}

// FindSubmissionByID retrieves a submission with its documents and their types.
func (repo *submissionRepository) FindSubmissionByID(ctx context.Context, id uuid.UUID) (*entity.KYCSubmission, error) {
	var submissionM model.KYCSubmissionModel

	if err := repo.db.WithContext(ctx).
		Preload("Documents").
		Preload("Documents.DocumentType").
		Preload("Documents.DocumentType.RequiredRoles").
		Where("id = ?", id).
		First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find submission by id")
	}

	return toSubmissionDomain(&submissionM), nil
}

// FindSubmissionsByUser retrieves all personal submissions for a user, newest first.
func (repo *submissionRepository) FindSubmissionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.KYCSubmission, error) {
	var submissionModels []*model.KYCSubmissionModel

	if err := repo.db.WithContext(ctx).
		Preload("Documents").
		Preload("Documents.DocumentType").
		Where("user_id = ? AND business_id IS NULL", userID).
		Order("created_at DESC").
		Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find submissions by user")
	}

	return toSubmissionDomains(submissionModels), nil
}

// FindSubmissionsByCreator retrieves every submission created by the user,
// KYB submissions included, newest first.
func (repo *submissionRepository) FindSubmissionsByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.KYCSubmission, error) {
	var submissionModels []*model.KYCSubmissionModel

	if err := repo.db.WithContext(ctx).
		Preload("Documents").
		Preload("Documents.DocumentType").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find submissions by creator")
	}

	return toSubmissionDomains(submissionModels), nil
}

// FindSubmissionsByBusiness retrieves all KYB submissions for a business, newest first.
func (repo *submissionRepository) FindSubmissionsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.KYCSubmission, error) {
	var submissionModels []*model.KYCSubmissionModel

	if err := repo.db.WithContext(ctx).
		Preload("Documents").
		Preload("Documents.DocumentType").
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&submissionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find submissions by business")
	}

	return toSubmissionDomains(submissionModels), nil
}

// FindActiveSubmissionByUser retrieves the user's pending or in-review personal submission.
func (repo *submissionRepository) FindActiveSubmissionByUser(ctx context.Context, userID uuid.UUID) (*entity.KYCSubmission, error) {
	var submissionM model.KYCSubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND business_id IS NULL AND status IN ?", userID, activeStatuses).
		First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active submission by user")
	}

	return toSubmissionDomain(&submissionM), nil
}

// FindActiveSubmissionByBusiness retrieves the business's pending or in-review KYB submission.
func (repo *submissionRepository) FindActiveSubmissionByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.KYCSubmission, error) {
	var submissionM model.KYCSubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND status IN ?", businessID, activeStatuses).
		First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active submission by business")
	}

	return toSubmissionDomain(&submissionM), nil
}

// HasApprovedSubmissionForUser reports whether the user has any approved personal submission.
func (repo *submissionRepository) HasApprovedSubmissionForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.KYCSubmissionModel{}).
		Where("user_id = ? AND business_id IS NULL AND status = ?", userID, string(entity.SubmissionStatusApproved)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count approved submissions")
	}

	return count > 0, nil
}

// HasApprovedSubmissionForBusiness reports whether the business has any approved KYB submission.
func (repo *submissionRepository) HasApprovedSubmissionForBusiness(ctx context.Context, businessID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.KYCSubmissionModel{}).
		Where("business_id = ? AND status = ?", businessID, string(entity.SubmissionStatusApproved)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count approved submissions")
	}

	return count > 0, nil
}

// UpdateSubmission modifies the submission's status and review fields.
func (repo *submissionRepository) UpdateSubmission(ctx context.Context, submission *entity.KYCSubmission) error {
	submissionM := fromSubmissionDomain(submission)

	result := repo.db.WithContext(ctx).
		Model(&model.KYCSubmissionModel{ID: submission.ID}).
		Select("status", "submitted_at", "reviewed_at", "reviewed_by", "rejection_reason", "notes").
		Updates(submissionM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update submission")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubmissionNotFound
	}

	return nil
}

// CreateDocument persists a newly uploaded document after re-running the
// upload constraints against the stored document type. The usecase validates
// first; this keeps a bad caller from bypassing the catalog rules.
func (repo *submissionRepository) CreateDocument(ctx context.Context, document *entity.KYCDocument) error {
	if err := repo.validateAgainstType(ctx, document); err != nil {
		return err
	}

	documentM := fromDocumentDomain(document)

	if err := repo.db.WithContext(ctx).Omit("DocumentType").Create(documentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("document already exists for this type")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid submission or document type reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	document.ID = documentM.ID

	return nil
}

// UpdateDocument modifies an existing document's file and review fields.
// No type re-check here: review status updates must still go through for
// documents whose type was deactivated after upload.
func (repo *submissionRepository) UpdateDocument(ctx context.Context, document *entity.KYCDocument) error {
	documentM := fromDocumentDomain(document)

	result := repo.db.WithContext(ctx).
		Model(&model.KYCDocumentModel{ID: document.ID}).
		Select("file_path", "status", "uploaded_at", "reviewed_at", "reviewed_by", "rejection_reason", "file_size_bytes", "file_hash").
		Updates(documentM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

// FindDocumentByID retrieves a document with its type.
func (repo *submissionRepository) FindDocumentByID(ctx context.Context, id uuid.UUID) (*entity.KYCDocument, error) {
	var documentM model.KYCDocumentModel

	if err := repo.db.WithContext(ctx).
		Preload("DocumentType").
		Where("id = ?", id).
		First(&documentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by id")
	}

	return toDocumentDomain(&documentM), nil
}

// validateAgainstType re-checks the stored file against the catalog entry.
func (repo *submissionRepository) validateAgainstType(ctx context.Context, document *entity.KYCDocument) error {
	var docTypeM model.DocumentTypeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", document.DocumentTypeID).
		First(&docTypeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrDocumentTypeNotFound
		}

		return errors.Wrap(err, "failed to load document type")
	}

	docType := toDocumentTypeDomain(&docTypeM)

	return docType.ValidateFile(document.FilePath, document.FileSizeBytes)
}

// --- Mappers between persistence models and domain entities ---

func toSubmissionDomain(submissionM *model.KYCSubmissionModel) *entity.KYCSubmission {
	submission := &entity.KYCSubmission{
		ID:              submissionM.ID,
		UserID:          submissionM.UserID,
		BusinessID:      submissionM.BusinessID,
		Status:          entity.SubmissionStatus(submissionM.Status),
		ReviewedAt:      submissionM.ReviewedAt,
		ReviewedBy:      submissionM.ReviewedBy,
		RejectionReason: submissionM.RejectionReason,
		Notes:           submissionM.Notes,
		CreatedAt:       submissionM.CreatedAt,
		UpdatedAt:       submissionM.UpdatedAt,
	}

	if submissionM.SubmittedAt != nil {
		submission.SubmittedAt = *submissionM.SubmittedAt
	}
	for _, documentM := range submissionM.Documents {
		submission.Documents = append(submission.Documents, toDocumentDomain(documentM))
	}

	return submission
}

func toSubmissionDomains(submissionModels []*model.KYCSubmissionModel) []*entity.KYCSubmission {
	submissions := make([]*entity.KYCSubmission, 0, len(submissionModels))
	for _, submissionM := range submissionModels {
		submissions = append(submissions, toSubmissionDomain(submissionM))
	}

	return submissions
}

func fromSubmissionDomain(submission *entity.KYCSubmission) *model.KYCSubmissionModel {
	submissionM := &model.KYCSubmissionModel{
		ID:              submission.ID,
		UserID:          submission.UserID,
		BusinessID:      submission.BusinessID,
		Status:          string(submission.Status),
		ReviewedAt:      submission.ReviewedAt,
		ReviewedBy:      submission.ReviewedBy,
		RejectionReason: submission.RejectionReason,
		Notes:           submission.Notes,
	}

	if !submission.SubmittedAt.IsZero() {
		submittedAt := submission.SubmittedAt
		submissionM.SubmittedAt = &submittedAt
	}

	return submissionM
}

func toDocumentDomain(documentM *model.KYCDocumentModel) *entity.KYCDocument {
	document := &entity.KYCDocument{
		ID:              documentM.ID,
		SubmissionID:    documentM.SubmissionID,
		DocumentTypeID:  documentM.DocumentTypeID,
		FilePath:        documentM.FilePath,
		Status:          entity.DocumentStatus(documentM.Status),
		UploadedAt:      documentM.UploadedAt,
		ReviewedAt:      documentM.ReviewedAt,
		ReviewedBy:      documentM.ReviewedBy,
		RejectionReason: documentM.RejectionReason,
		FileSizeBytes:   documentM.FileSizeBytes,
		FileHash:        documentM.FileHash,
	}

	if documentM.DocumentType != nil {
		document.DocumentType = toDocumentTypeDomain(documentM.DocumentType)
	}

	return document
}

func fromDocumentDomain(document *entity.KYCDocument) *model.KYCDocumentModel {
	return &model.KYCDocumentModel{
		ID:              document.ID,
		SubmissionID:    document.SubmissionID,
		DocumentTypeID:  document.DocumentTypeID,
		FilePath:        document.FilePath,
		Status:          string(document.Status),
		UploadedAt:      document.UploadedAt,
		ReviewedAt:      document.ReviewedAt,
		ReviewedBy:      document.ReviewedBy,
		RejectionReason: document.RejectionReason,
		FileSizeBytes:   document.FileSizeBytes,
		FileHash:        document.FileHash,
	}
}
