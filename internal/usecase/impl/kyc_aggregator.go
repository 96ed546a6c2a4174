package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// findVisibleSubmission loads a submission and checks the actor may act on it:
// admins always, the owning user, or any owner of the owning business.
func (srv *kycService) findVisibleSubmission(ctx context.Context, repoFactory repository.RepositoryFactory, actor *entity.Capabilities, submissionID uuid.UUID) (*entity.KYCSubmission, error) {
	submission, err := repoFactory.SubmissionRepo().FindSubmissionByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, domainerrors.ErrSubmissionNotFound.WrapMessage("submission not found")
		}

		return nil, errors.Wrap(err, "failed to find submission")
	}

	if actor.IsAdmin || submission.UserID == actor.UserID {
		return submission, nil
	}
	if submission.BusinessID != nil {
		if err := srv.requireBusinessActor(ctx, repoFactory, actor, *submission.BusinessID); err == nil {
			return submission, nil
		}
	}

	return nil, domainerrors.ErrForbidden.WrapMessage("submission belongs to another account")
}

// requireBusinessActor checks the actor is an admin or a registered owner of the business.
func (srv *kycService) requireBusinessActor(ctx context.Context, repoFactory repository.RepositoryFactory, actor *entity.Capabilities, businessID uuid.UUID) error {
	if actor.IsAdmin {
		return nil
	}

	_, err := repoFactory.BusinessRepo().FindOwner(ctx, businessID, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return domainerrors.ErrNotBusinessOwner.WrapMessage("actor does not own this business")
		}

		return errors.Wrap(err, "failed to check business ownership")
	}

	return nil
}

// acquireOwnerLock takes the per-owner row lock that serializes every mutation
// and recomputation for the submission's owner.
func (srv *kycService) acquireOwnerLock(ctx context.Context, repoFactory repository.RepositoryFactory, submission *entity.KYCSubmission) error {
	if submission.IsKYB() {
		if err := repoFactory.BusinessRepo().AcquireBusinessLock(ctx, *submission.BusinessID); err != nil {
			return errors.Wrap(err, "failed to lock business")
		}

		return nil
	}

	if err := repoFactory.UserRepo().AcquireUserLock(ctx, submission.UserID); err != nil {
		return errors.Wrap(err, "failed to lock user")
	}

	return nil
}

// requirementContext rebuilds the resolver context for a submission from its
// creator's current profile and roles. Never cached, so catalog or role
// changes apply to the next check.
func (srv *kycService) requirementContext(ctx context.Context, repoFactory repository.RepositoryFactory, submission *entity.KYCSubmission) (entity.RequirementContext, error) {
	user, err := repoFactory.UserRepo().FindByID(ctx, submission.UserID)
	if err != nil {
		return entity.RequirementContext{}, errors.Wrap(err, "failed to find submission owner")
	}

	accountType := entity.AccountTypeIndividual
	if user.Profile != nil {
		accountType = user.Profile.AccountType
	}

	return entity.SubmissionContext(submission, accountType, user.RoleNames()), nil
}

// resolveRequiredTypes resolves the required document types for a submission
// against the current active catalog.
func (srv *kycService) resolveRequiredTypes(ctx context.Context, repoFactory repository.RepositoryFactory, submission *entity.KYCSubmission) ([]*entity.DocumentType, error) {
	rctx, err := srv.requirementContext(ctx, repoFactory, submission)
	if err != nil {
		return nil, err
	}

	catalog, err := repoFactory.DocumentTypeRepo().FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document type catalog")
	}

	return entity.RequiredDocumentTypes(catalog, rctx), nil
}

// applyResolution moves an in-review submission to a terminal status.
// Reapplying the same terminal status is a no-op so at-least-once task
// delivery is safe; a conflicting terminal status is rejected.
func (srv *kycService) applyResolution(ctx context.Context, repoFactory repository.RepositoryFactory, submission *entity.KYCSubmission, status entity.SubmissionStatus, reviewerID *uuid.UUID, rejectionReason string) error {
	if submission.Status.IsTerminal() {
		if submission.Status == status {
			return nil
		}

		return domainerrors.ErrSubmissionAlreadyResolved.WrapMessage("submission already has a conflicting resolution")
	}
	if submission.Status != entity.SubmissionStatusInReview {
		return domainerrors.ErrSubmissionNotEditable.WrapMessage("submission has not been submitted for review")
	}

	return srv.forceResolution(ctx, repoFactory, submission, status, reviewerID, rejectionReason)
}

// forceResolution writes a terminal status and the audit fields without state
// checks, then recomputes the owner's verification flag. Used by the normal
// path after its guards and directly by the admin bulk override.
func (srv *kycService) forceResolution(ctx context.Context, repoFactory repository.RepositoryFactory, submission *entity.KYCSubmission, status entity.SubmissionStatus, reviewerID *uuid.UUID, rejectionReason string) error {
	now := time.Now()
	submission.Status = status
	submission.ReviewedAt = &now
	submission.ReviewedBy = reviewerID
	if status == entity.SubmissionStatusRejected {
		submission.RejectionReason = rejectionReason
	} else {
		submission.RejectionReason = ""
	}

	if err := repoFactory.SubmissionRepo().UpdateSubmission(ctx, submission); err != nil {
		return errors.Wrap(err, "failed to update submission")
	}

	srv.log(ctx).Info("Submission resolved",
		slog.Any("submissionID", submission.ID), slog.Any("status", status))

	return srv.recomputeOwnerVerification(ctx, repoFactory, submission)
}

// evaluateSubmission decides an in-review submission from its document
// statuses: approve when every required type has an approved document, reject
// when any document was rejected, otherwise leave it in review.
func (srv *kycService) evaluateSubmission(ctx context.Context, repoFactory repository.RepositoryFactory, submission *entity.KYCSubmission) error {
	covered, err := srv.submissionCovered(ctx, repoFactory, submission)
	if err != nil {
		return err
	}
	if covered {
		return srv.forceResolution(ctx, repoFactory, submission, entity.SubmissionStatusApproved, nil, "")
	}

	var rejectedTypes []string
	for _, document := range submission.Documents {
		if document.Status == entity.DocumentStatusRejected {
			name := document.DocumentTypeID.String()
			if document.DocumentType != nil {
				name = document.DocumentType.Name
			}
			rejectedTypes = append(rejectedTypes, name)
		}
	}
	if len(rejectedTypes) > 0 {
		reason := "rejected documents: " + strings.Join(rejectedTypes, ", ")

		return srv.forceResolution(ctx, repoFactory, submission, entity.SubmissionStatusRejected, nil, reason)
	}

	srv.log(ctx).Debug("Submission stays in review",
		slog.Any("submissionID", submission.ID))

	return nil
}

// submissionCovered reports whether the candidate's full required set,
// resolved against the current catalog, is covered by approved documents.
func (srv *kycService) submissionCovered(ctx context.Context, repoFactory repository.RepositoryFactory, candidate *entity.KYCSubmission) (bool, error) {
	required, err := srv.resolveRequiredTypes(ctx, repoFactory, candidate)
	if err != nil {
		return false, err
	}

	approved := candidate.ApprovedTypeIDs()
	for _, docType := range required {
		if !approved[docType.ID] {
			return false, nil
		}
	}

	return true, nil
}

// recomputeOwnerVerification recomputes the derived verification flags the
// submission feeds. A KYB submission updates the business flag and then the
// creating user's flag: a verified business also verifies the user behind it.
// Writes only on change. The caller must already hold the owner lock.
func (srv *kycService) recomputeOwnerVerification(ctx context.Context, repoFactory repository.RepositoryFactory, submission *entity.KYCSubmission) error {
	if submission.IsKYB() {
		if err := srv.recomputeBusinessVerification(ctx, repoFactory, *submission.BusinessID); err != nil {
			return err
		}
	}

	return srv.recomputeUserVerification(ctx, repoFactory, submission.UserID)
}

// recomputeBusinessVerification recomputes the business flag from the
// business's KYB submissions.
func (srv *kycService) recomputeBusinessVerification(ctx context.Context, repoFactory repository.RepositoryFactory, businessID uuid.UUID) error {
	submissions, err := repoFactory.SubmissionRepo().FindSubmissionsByBusiness(ctx, businessID)
	if err != nil {
		return errors.Wrap(err, "failed to list business submissions")
	}

	verified, err := srv.anyCovered(ctx, repoFactory, submissions)
	if err != nil {
		return err
	}

	businessRepo := repoFactory.BusinessRepo()
	business, err := businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return errors.Wrap(err, "failed to find business")
	}
	if business.IsKYBVerified == verified {
		return nil
	}
	if err := businessRepo.SetKYBVerified(ctx, business.ID, verified); err != nil {
		return errors.Wrap(err, "failed to update business verification flag")
	}

	srv.log(ctx).Info("Business verification flag changed",
		slog.Any("businessID", business.ID), slog.Bool("verified", verified))

	return nil
}

// recomputeUserVerification recomputes the user flag from every submission
// the user created, personal and KYB alike.
func (srv *kycService) recomputeUserVerification(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) error {
	submissions, err := repoFactory.SubmissionRepo().FindSubmissionsByCreator(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list user submissions")
	}

	verified, err := srv.anyCovered(ctx, repoFactory, submissions)
	if err != nil {
		return err
	}

	userRepo := repoFactory.UserRepo()
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if user.IsKYCVerified == verified {
		return nil
	}
	if err := userRepo.SetKYCVerified(ctx, user.ID, verified); err != nil {
		return errors.Wrap(err, "failed to update user verification flag")
	}

	srv.log(ctx).Info("User verification flag changed",
		slog.Any("userID", user.ID), slog.Bool("verified", verified))

	return nil
}

// anyCovered reports whether at least one candidate submission is covered.
func (srv *kycService) anyCovered(ctx context.Context, repoFactory repository.RepositoryFactory, submissions []*entity.KYCSubmission) (bool, error) {
	for _, candidate := range submissions {
		covered, err := srv.submissionCovered(ctx, repoFactory, candidate)
		if err != nil {
			return false, err
		}
		if covered {
			return true, nil
		}
	}

	return false, nil
}
