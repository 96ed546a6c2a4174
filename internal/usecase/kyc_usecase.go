// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateSubmissionInput defines the data required to open a new verification attempt.
// BusinessID is nil for personal KYC and set for KYB.
type CreateSubmissionInput struct {
	UserID     uuid.UUID
	BusinessID *uuid.UUID
	Notes      string
}

// UploadDocumentInput defines the data required to attach a document file to a submission.
type UploadDocumentInput struct {
	SubmissionID   uuid.UUID
	DocumentTypeID uuid.UUID
	Filename       string
	Size           int64
	Content        io.Reader
}

// DocumentTypeInput defines the data required to create or update a catalog entry.
type DocumentTypeInput struct {
	Name          string
	Description   string
	ApplicableTo  entity.Applicability
	IsActive      bool
	IsRequired    bool
	RequiredRoles []string
	MaxFileSizeMB int
	AllowedFile   []string
}

// ReviewDocumentInput defines the data required to review a single document.
type ReviewDocumentInput struct {
	DocumentID      uuid.UUID
	ReviewerID      uuid.UUID
	Approve         bool
	RejectionReason string
}

// BulkReviewInput defines the data for an admin bulk approve/reject override.
type BulkReviewInput struct {
	SubmissionIDs   []uuid.UUID
	ReviewerID      uuid.UUID
	Approve         bool
	RejectionReason string
}

// ResolveSubmissionInput defines the data required to move an in-review
// submission to a terminal status through the normal path.
type ResolveSubmissionInput struct {
	SubmissionID    uuid.UUID
	ReviewerID      *uuid.UUID // nil when resolved by the automated worker
	Approve         bool
	RejectionReason string
}

// --- Output DTOs ---

// BulkReviewOutput reports how many submissions each bulk action touched.
type BulkReviewOutput struct {
	Updated int
	Skipped int
}

// VerificationStatusOutput summarizes the caller's latest verification state.
type VerificationStatusOutput struct {
	Status       string // submission status, or "not_submitted"
	SubmissionID *uuid.UUID
	IsVerified   bool
	MissingTypes []string
}

// KYCUsecase defines the interface for the verification lifecycle:
// submissions, document uploads, reviews and status aggregation.
type KYCUsecase interface {
	// ListDocumentTypes returns the active document types applicable to the
	// caller, resolved against their account type and roles. When businessID is
	// set the business axis is used.
	ListDocumentTypes(ctx context.Context, actor *entity.Capabilities, businessID *uuid.UUID) ([]*entity.DocumentType, error)

	// CreateSubmission opens a new pending submission for the user or business.
	CreateSubmission(ctx context.Context, actor *entity.Capabilities, input *CreateSubmissionInput) (*entity.KYCSubmission, error)

	// GetSubmission retrieves a submission visible to the actor.
	GetSubmission(ctx context.Context, actor *entity.Capabilities, submissionID uuid.UUID) (*entity.KYCSubmission, error)

	// GetVerificationStatus reports the actor's latest submission status and
	// the document types still missing from it.
	GetVerificationStatus(ctx context.Context, actor *entity.Capabilities) (*VerificationStatusOutput, error)

	// UploadDocument attaches or replaces a document file on a pending submission.
	UploadDocument(ctx context.Context, actor *entity.Capabilities, input *UploadDocumentInput) (*entity.KYCDocument, error)

	// SubmitForReview moves a pending submission to in_review and dispatches the
	// verification task.
	SubmitForReview(ctx context.Context, actor *entity.Capabilities, submissionID uuid.UUID) (*entity.KYCSubmission, error)

	// ResolveSubmission applies a terminal review decision through the normal path.
	ResolveSubmission(ctx context.Context, input *ResolveSubmissionInput) error

	// ProcessVerification is the worker entry point for a dispatched
	// verification task. Approves the submission when every required document
	// is approved, rejects it when any document was rejected, and leaves it
	// in_review otherwise.
	ProcessVerification(ctx context.Context, submissionID uuid.UUID) error

	// ReviewDocument approves or rejects a single uploaded document and
	// recomputes the owner's verification flag.
	ReviewDocument(ctx context.Context, actor *entity.Capabilities, input *ReviewDocumentInput) error

	// BulkReview forces submissions to a terminal status regardless of their
	// current status. Admin only.
	BulkReview(ctx context.Context, actor *entity.Capabilities, input *BulkReviewInput) (*BulkReviewOutput, error)

	// ListAllDocumentTypes returns the whole catalog, inactive entries
	// included. Admin only.
	ListAllDocumentTypes(ctx context.Context, actor *entity.Capabilities) ([]*entity.DocumentType, error)

	// CreateDocumentType adds a catalog entry. Admin only.
	CreateDocumentType(ctx context.Context, actor *entity.Capabilities, input *DocumentTypeInput) (*entity.DocumentType, error)

	// UpdateDocumentType modifies a catalog entry. Admin only.
	UpdateDocumentType(ctx context.Context, actor *entity.Capabilities, typeID uuid.UUID, input *DocumentTypeInput) (*entity.DocumentType, error)

	// DeleteDocumentType removes an unreferenced catalog entry. Admin only.
	// Types still referenced by documents must be deactivated instead.
	DeleteDocumentType(ctx context.Context, actor *entity.Capabilities, typeID uuid.UUID) error
}
