// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for submission persistence.
var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrDocumentNotFound is returned when an uploaded document is not found.
	ErrDocumentNotFound = errors.New("document not found")
)

// SubmissionRepository defines the interface for KYC/KYB submission persistence.
type SubmissionRepository interface {
	// CreateSubmission persists a new submission.
	CreateSubmission(ctx context.Context, submission *entity.KYCSubmission) error

	// FindSubmissionByID retrieves a submission by its unique ID, with documents
	// and their document types preloaded.
	FindSubmissionByID(ctx context.Context, id uuid.UUID) (*entity.KYCSubmission, error)

	// FindSubmissionsByUser retrieves all personal submissions for a user, newest first.
	FindSubmissionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.KYCSubmission, error)

	// FindSubmissionsByBusiness retrieves all KYB submissions for a business, newest first.
	FindSubmissionsByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.KYCSubmission, error)

	// FindSubmissionsByCreator retrieves every submission created by the user,
	// KYB submissions included, newest first.
	FindSubmissionsByCreator(ctx context.Context, userID uuid.UUID) ([]*entity.KYCSubmission, error)

	// FindActiveSubmissionByUser retrieves the user's pending or in-review personal
	// submission, if one exists.
	FindActiveSubmissionByUser(ctx context.Context, userID uuid.UUID) (*entity.KYCSubmission, error)

	// FindActiveSubmissionByBusiness retrieves the business's pending or in-review
	// KYB submission, if one exists.
	FindActiveSubmissionByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.KYCSubmission, error)

	// HasApprovedSubmissionForUser reports whether the user has any approved personal submission.
	HasApprovedSubmissionForUser(ctx context.Context, userID uuid.UUID) (bool, error)

	// HasApprovedSubmissionForBusiness reports whether the business has any approved KYB submission.
	HasApprovedSubmissionForBusiness(ctx context.Context, businessID uuid.UUID) (bool, error)

	// UpdateSubmission modifies an existing submission's status and review fields.
	UpdateSubmission(ctx context.Context, submission *entity.KYCSubmission) error

	// CreateDocument persists a newly uploaded document on a submission.
	CreateDocument(ctx context.Context, document *entity.KYCDocument) error

	// UpdateDocument modifies an existing document's file and review fields.
	UpdateDocument(ctx context.Context, document *entity.KYCDocument) error

	// FindDocumentByID retrieves a document by its unique ID.
	FindDocumentByID(ctx context.Context, id uuid.UUID) (*entity.KYCDocument, error)
}
