// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "vouch/internal/delivery/context"
	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/domain/service"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// kycService implements the KYCUsecase interface.
type kycService struct {
	txManager   repository.TransactionManager
	fileStorage service.FileStorage
	dispatcher  service.TaskDispatcher
	logger      *slog.Logger
}

// KYCServiceParams holds dependencies for KYCService, injected by Fx.
type KYCServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	FileStorage service.FileStorage
	Dispatcher  service.TaskDispatcher
	Logger      *slog.Logger
}

// NewKYCService is the constructor for kycService.
func NewKYCService(params KYCServiceParams) usecase.KYCUsecase {
	return &kycService{
		txManager:   params.TxManager,
		fileStorage: params.FileStorage,
		dispatcher:  params.Dispatcher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *kycService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDocumentTypes returns the active catalog entries applicable to the caller.
func (srv *kycService) ListDocumentTypes(ctx context.Context, actor *entity.Capabilities, businessID *uuid.UUID) ([]*entity.DocumentType, error) {
	var applicable []*entity.DocumentType
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		accountType := entity.AccountTypeIndividual
		if user.Profile != nil {
			accountType = user.Profile.AccountType
		}

		rctx := entity.RequirementContext{
			AccountType: accountType,
			ForBusiness: businessID != nil || accountType == entity.AccountTypeBusiness,
			Roles:       user.RoleNames(),
		}

		catalog, err := repoFactory.DocumentTypeRepo().FindActive(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load document type catalog")
		}

		applicable = entity.ApplicableDocumentTypes(catalog, rctx)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list document types")
	}

	return applicable, nil
}

// CreateSubmission opens a new pending verification attempt for a user or a business.
func (srv *kycService) CreateSubmission(ctx context.Context, actor *entity.Capabilities, input *usecase.CreateSubmissionInput) (*entity.KYCSubmission, error) {
	srv.log(ctx).Info("Creating submission",
		slog.Any("userID", input.UserID), slog.Any("businessID", input.BusinessID))

	if input.UserID != actor.UserID && !actor.IsAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot create a submission for another user")
	}

	var submission *entity.KYCSubmission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submissionRepo := repoFactory.SubmissionRepo()

		if input.BusinessID != nil {
			businessID := *input.BusinessID
			if err := repoFactory.BusinessRepo().AcquireBusinessLock(ctx, businessID); err != nil {
				if errors.Is(err, repository.ErrBusinessNotFound) {
					return domainerrors.ErrBusinessNotFound.WrapMessage("business not found")
				}

				return errors.Wrap(err, "failed to lock business")
			}
			if err := srv.requireBusinessActor(ctx, repoFactory, actor, businessID); err != nil {
				return err
			}

			active, err := submissionRepo.FindActiveSubmissionByBusiness(ctx, businessID)
			if err != nil && !errors.Is(err, repository.ErrSubmissionNotFound) {
				return errors.Wrap(err, "failed to check active submission")
			}
			if active != nil {
				return domainerrors.ErrDuplicateActiveSubmission.WrapMessage("business already has an active submission")
			}
		} else {
			if err := repoFactory.UserRepo().AcquireUserLock(ctx, input.UserID); err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return domainerrors.ErrUserNotFound.WrapMessage("user not found")
				}

				return errors.Wrap(err, "failed to lock user")
			}

			active, err := submissionRepo.FindActiveSubmissionByUser(ctx, input.UserID)
			if err != nil && !errors.Is(err, repository.ErrSubmissionNotFound) {
				return errors.Wrap(err, "failed to check active submission")
			}
			if active != nil {
				return domainerrors.ErrDuplicateActiveSubmission.WrapMessage("user already has an active submission")
			}
		}

		fresh := &entity.KYCSubmission{
			ID:         uuid.New(),
			UserID:     input.UserID,
			BusinessID: input.BusinessID,
			Status:     entity.SubmissionStatusPending,
			Notes:      input.Notes,
		}
		if err := submissionRepo.CreateSubmission(ctx, fresh); err != nil {
			return errors.Wrap(err, "failed to create submission")
		}
		submission = fresh

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute submission creation")
	}

	srv.log(ctx).Debug("Submission created", slog.Any("submissionID", submission.ID))

	return submission, nil
}

// GetSubmission retrieves a submission the actor may see.
func (srv *kycService) GetSubmission(ctx context.Context, actor *entity.Capabilities, submissionID uuid.UUID) (*entity.KYCSubmission, error) {
	var submission *entity.KYCSubmission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findVisibleSubmission(ctx, repoFactory, actor, submissionID)
		if err != nil {
			return err
		}
		submission = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get submission")
	}

	return submission, nil
}

// GetVerificationStatus reports the caller's latest submission and what is still missing from it.
func (srv *kycService) GetVerificationStatus(ctx context.Context, actor *entity.Capabilities) (*usecase.VerificationStatusOutput, error) {
	output := &usecase.VerificationStatusOutput{Status: "not_submitted"}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		output.IsVerified = user.IsKYCVerified

		submissions, err := repoFactory.SubmissionRepo().FindSubmissionsByUser(ctx, actor.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to list submissions")
		}
		if len(submissions) == 0 {
			return nil
		}

		latest := submissions[0]
		output.Status = string(latest.Status)
		output.SubmissionID = &latest.ID

		required, err := srv.resolveRequiredTypes(ctx, repoFactory, latest)
		if err != nil {
			return err
		}
		output.MissingTypes = entity.MissingTypeNames(required, latest.AttachedTypeIDs())

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get verification status")
	}

	return output, nil
}

// UploadDocument attaches or replaces a document file on a pending submission.
func (srv *kycService) UploadDocument(ctx context.Context, actor *entity.Capabilities, input *usecase.UploadDocumentInput) (*entity.KYCDocument, error) {
	srv.log(ctx).Info("Uploading document",
		slog.Any("submissionID", input.SubmissionID), slog.Any("documentTypeID", input.DocumentTypeID),
		slog.String("filename", input.Filename), slog.Int64("size", input.Size))

	var document *entity.KYCDocument
	var supersededPath string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submission, err := srv.findVisibleSubmission(ctx, repoFactory, actor, input.SubmissionID)
		if err != nil {
			return err
		}
		if err := srv.acquireOwnerLock(ctx, repoFactory, submission); err != nil {
			return err
		}
		if submission.Status != entity.SubmissionStatusPending {
			return domainerrors.ErrSubmissionNotEditable.WrapMessage("documents can only change while pending")
		}

		docType, err := repoFactory.DocumentTypeRepo().FindByID(ctx, input.DocumentTypeID)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentTypeNotFound) {
				return domainerrors.ErrDocumentTypeNotFound.WrapMessage("document type not found")
			}

			return errors.Wrap(err, "failed to find document type")
		}

		rctx, err := srv.requirementContext(ctx, repoFactory, submission)
		if err != nil {
			return err
		}
		if !docType.AppliesToAxis(rctx.ForBusiness) || !docType.MatchesRoles(rctx.Roles) {
			return domainerrors.ErrDocumentTypeNotApplicable.WithDetails(docType.Name).
				WrapMessage("document type does not apply to this submission")
		}
		if err := docType.ValidateFile(input.Filename, input.Size); err != nil {
			return err
		}

		suggestedPath := fmt.Sprintf("submissions/%s/%s/%s", submission.ID, docType.ID, input.Filename)
		path, size, hash, err := srv.fileStorage.Store(ctx, input.Content, suggestedPath)
		if err != nil {
			srv.log(ctx).Error("Failed to store document file", slog.Any("error", err))

			return domainerrors.ErrStorageFailure.WrapMessage("failed to store document file")
		}

		submissionRepo := repoFactory.SubmissionRepo()
		now := time.Now()

		if existing := submission.DocumentOfType(docType.ID); existing != nil {
			if existing.FilePath != path {
				supersededPath = existing.FilePath
			}
			existing.FilePath = path
			existing.FileSizeBytes = size
			existing.FileHash = hash
			existing.Status = entity.DocumentStatusPending
			existing.UploadedAt = now
			existing.ReviewedAt = nil
			existing.ReviewedBy = nil
			existing.RejectionReason = ""

			if err := submissionRepo.UpdateDocument(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to replace document")
			}
			document = existing
		} else {
			fresh := &entity.KYCDocument{
				ID:             uuid.New(),
				SubmissionID:   submission.ID,
				DocumentTypeID: docType.ID,
				FilePath:       path,
				Status:         entity.DocumentStatusPending,
				UploadedAt:     now,
				FileSizeBytes:  size,
				FileHash:       hash,
			}
			if err := submissionRepo.CreateDocument(ctx, fresh); err != nil {
				return errors.Wrap(err, "failed to create document")
			}
			document = fresh
		}

		return srv.recomputeOwnerVerification(ctx, repoFactory, submission)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute document upload")
	}

	if supersededPath != "" {
		if err := srv.fileStorage.Delete(ctx, supersededPath); err != nil {
			srv.log(ctx).Warn("Failed to delete superseded file", slog.String("path", supersededPath), slog.Any("error", err))
		}
	}

	return document, nil
}

// SubmitForReview moves a pending submission to in_review and hands it to the worker.
func (srv *kycService) SubmitForReview(ctx context.Context, actor *entity.Capabilities, submissionID uuid.UUID) (*entity.KYCSubmission, error) {
	srv.log(ctx).Info("Submitting for review", slog.Any("submissionID", submissionID))

	var submission *entity.KYCSubmission
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findVisibleSubmission(ctx, repoFactory, actor, submissionID)
		if err != nil {
			return err
		}
		if err := srv.acquireOwnerLock(ctx, repoFactory, found); err != nil {
			return err
		}
		if found.Status != entity.SubmissionStatusPending {
			return domainerrors.ErrSubmissionNotEditable.WrapMessage("only pending submissions can be submitted")
		}

		required, err := srv.resolveRequiredTypes(ctx, repoFactory, found)
		if err != nil {
			return err
		}
		if missing := entity.MissingTypeNames(required, found.AttachedTypeIDs()); len(missing) > 0 {
			return domainerrors.ErrMissingRequiredDocuments.WithDetails(strings.Join(missing, ", ")).
				WrapMessage("required documents are missing")
		}

		now := time.Now()
		found.Status = entity.SubmissionStatusInReview
		found.SubmittedAt = now
		if err := repoFactory.SubmissionRepo().UpdateSubmission(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update submission")
		}
		submission = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute submit for review")
	}

	// At-least-once handoff. The submission stays in_review if this fails and
	// an admin can still resolve it manually.
	task := &service.VerificationTask{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Task:         service.TaskVerifyKYCSubmission,
		SubmissionID: submission.ID.String(),
	}
	if err := srv.dispatcher.Dispatch(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to dispatch verification task",
			slog.Any("submissionID", submission.ID), slog.Any("error", err))
	}

	return submission, nil
}

// ResolveSubmission applies a terminal review decision through the normal path.
func (srv *kycService) ResolveSubmission(ctx context.Context, input *usecase.ResolveSubmissionInput) error {
	status := entity.SubmissionStatusRejected
	if input.Approve {
		status = entity.SubmissionStatusApproved
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submission, err := repoFactory.SubmissionRepo().FindSubmissionByID(ctx, input.SubmissionID)
		if err != nil {
			if errors.Is(err, repository.ErrSubmissionNotFound) {
				return domainerrors.ErrSubmissionNotFound.WrapMessage("submission not found")
			}

			return errors.Wrap(err, "failed to find submission")
		}
		if err := srv.acquireOwnerLock(ctx, repoFactory, submission); err != nil {
			return err
		}

		return srv.applyResolution(ctx, repoFactory, submission, status, input.ReviewerID, input.RejectionReason)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute submission resolution")
	}

	return nil
}

// ProcessVerification is the worker entry point for a dispatched verification task.
func (srv *kycService) ProcessVerification(ctx context.Context, submissionID uuid.UUID) error {
	srv.log(ctx).Info("Processing verification", slog.Any("submissionID", submissionID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submission, err := repoFactory.SubmissionRepo().FindSubmissionByID(ctx, submissionID)
		if err != nil {
			if errors.Is(err, repository.ErrSubmissionNotFound) {
				return domainerrors.ErrSubmissionNotFound.WrapMessage("submission not found")
			}

			return errors.Wrap(err, "failed to find submission")
		}
		if err := srv.acquireOwnerLock(ctx, repoFactory, submission); err != nil {
			return err
		}
		if submission.Status.IsTerminal() {
			srv.log(ctx).Debug("Submission already resolved", slog.Any("submissionID", submissionID))

			return nil
		}

		return srv.evaluateSubmission(ctx, repoFactory, submission)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute verification processing")
	}

	return nil
}

// ReviewDocument approves or rejects a single uploaded document.
func (srv *kycService) ReviewDocument(ctx context.Context, actor *entity.Capabilities, input *usecase.ReviewDocumentInput) error {
	if !actor.IsAdmin {
		return domainerrors.ErrForbidden.WrapMessage("document review requires admin")
	}

	srv.log(ctx).Info("Reviewing document",
		slog.Any("documentID", input.DocumentID), slog.Bool("approve", input.Approve))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submissionRepo := repoFactory.SubmissionRepo()

		document, err := submissionRepo.FindDocumentByID(ctx, input.DocumentID)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("document not found")
			}

			return errors.Wrap(err, "failed to find document")
		}

		submission, err := submissionRepo.FindSubmissionByID(ctx, document.SubmissionID)
		if err != nil {
			return errors.Wrap(err, "failed to find submission")
		}
		if err := srv.acquireOwnerLock(ctx, repoFactory, submission); err != nil {
			return err
		}

		now := time.Now()
		reviewer := input.ReviewerID
		document.ReviewedAt = &now
		document.ReviewedBy = &reviewer
		if input.Approve {
			document.Status = entity.DocumentStatusApproved
			document.RejectionReason = ""
		} else {
			document.Status = entity.DocumentStatusRejected
			document.RejectionReason = input.RejectionReason
		}
		if err := submissionRepo.UpdateDocument(ctx, document); err != nil {
			return errors.Wrap(err, "failed to update document")
		}

		// Keep the in-memory submission coherent before re-evaluation.
		for i, doc := range submission.Documents {
			if doc.ID == document.ID {
				submission.Documents[i] = document
			}
		}

		if submission.Status == entity.SubmissionStatusInReview {
			return srv.evaluateSubmission(ctx, repoFactory, submission)
		}

		return srv.recomputeOwnerVerification(ctx, repoFactory, submission)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute document review")
	}

	return nil
}

// BulkReview forces submissions to a terminal status regardless of their current status.
func (srv *kycService) BulkReview(ctx context.Context, actor *entity.Capabilities, input *usecase.BulkReviewInput) (*usecase.BulkReviewOutput, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("bulk review requires admin")
	}

	status := entity.SubmissionStatusRejected
	if input.Approve {
		status = entity.SubmissionStatusApproved
	}

	srv.log(ctx).Info("Bulk review",
		slog.Int("count", len(input.SubmissionIDs)), slog.Any("status", status))

	output := &usecase.BulkReviewOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		submissionRepo := repoFactory.SubmissionRepo()

		for _, submissionID := range input.SubmissionIDs {
			submission, err := submissionRepo.FindSubmissionByID(ctx, submissionID)
			if err != nil {
				if errors.Is(err, repository.ErrSubmissionNotFound) {
					output.Skipped++

					continue
				}

				return errors.Wrap(err, "failed to find submission")
			}
			if err := srv.acquireOwnerLock(ctx, repoFactory, submission); err != nil {
				return err
			}
			if submission.Status == status {
				output.Skipped++

				continue
			}

			if err := srv.forceResolution(ctx, repoFactory, submission, status, &input.ReviewerID, input.RejectionReason); err != nil {
				return err
			}
			output.Updated++
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute bulk review")
	}

	return output, nil
}
