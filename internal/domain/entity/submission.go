package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus is the lifecycle state of a KYC/KYB submission.
// pending and in_review are non-terminal; approved and rejected end the
// attempt, and a new submission must be created to retry.
type SubmissionStatus string

const (
	// SubmissionStatusPending accepts document uploads.
	SubmissionStatusPending SubmissionStatus = "pending"
	// SubmissionStatusInReview is frozen, waiting for the verification outcome.
	SubmissionStatusInReview SubmissionStatus = "in_review"
	// SubmissionStatusApproved is terminal.
	SubmissionStatusApproved SubmissionStatus = "approved"
	// SubmissionStatusRejected is terminal.
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// IsTerminal reports whether the status ends the submission's lifecycle.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

// IsActive reports whether the status still occupies the owner's single
// active submission slot.
func (s SubmissionStatus) IsActive() bool {
	return s == SubmissionStatusPending || s == SubmissionStatusInReview
}

// DocumentStatus is the review state of a single uploaded document,
// reviewed independently of its submission.
type DocumentStatus string

const (
	// DocumentStatusPending has not been reviewed yet.
	DocumentStatusPending DocumentStatus = "pending"
	// DocumentStatusApproved passed review.
	DocumentStatusApproved DocumentStatus = "approved"
	// DocumentStatusRejected failed review.
	DocumentStatusRejected DocumentStatus = "rejected"
)

// KYCSubmission is the root of one verification attempt. A nil BusinessID
// means personal KYC; a set BusinessID makes it a KYB submission for that
// business.
type KYCSubmission struct {
	ID              uuid.UUID
	UserID          uuid.UUID  // The user who created the submission.
	BusinessID      *uuid.UUID // Present for KYB submissions.
	Status          SubmissionStatus
	SubmittedAt     time.Time  // Set when the submission enters review.
	ReviewedAt      *time.Time // Set on terminal resolution.
	ReviewedBy      *uuid.UUID // Nil when resolved by the automated verifier.
	RejectionReason string
	Notes           string // Internal reviewer notes, never shown to the user.
	Documents       []*KYCDocument
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsKYB reports whether this is a business (KYB) submission.
func (s *KYCSubmission) IsKYB() bool {
	return s.BusinessID != nil
}

// DocumentOfType returns the attached document of the given type, or nil.
func (s *KYCSubmission) DocumentOfType(typeID uuid.UUID) *KYCDocument {
	for _, d := range s.Documents {
		if d.DocumentTypeID == typeID {
			return d
		}
	}

	return nil
}

// AttachedTypeIDs returns the set of document type IDs already attached.
func (s *KYCSubmission) AttachedTypeIDs() map[uuid.UUID]bool {
	ids := make(map[uuid.UUID]bool, len(s.Documents))
	for _, d := range s.Documents {
		ids[d.DocumentTypeID] = true
	}

	return ids
}

// ApprovedTypeIDs returns the set of document type IDs whose document is
// currently approved.
func (s *KYCSubmission) ApprovedTypeIDs() map[uuid.UUID]bool {
	ids := make(map[uuid.UUID]bool, len(s.Documents))
	for _, d := range s.Documents {
		if d.Status == DocumentStatusApproved {
			ids[d.DocumentTypeID] = true
		}
	}

	return ids
}

// KYCDocument is one uploaded file attached to a submission. The
// (submission, document type) pair is unique; re-uploading the same type
// replaces the previous file and resets the review status.
type KYCDocument struct {
	ID              uuid.UUID
	SubmissionID    uuid.UUID
	DocumentTypeID  uuid.UUID
	DocumentType    *DocumentType // Loaded alongside the document.
	FilePath        string        // Opaque blob store reference.
	Status          DocumentStatus
	UploadedAt      time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *uuid.UUID
	RejectionReason string
	FileSizeBytes   int64
	FileHash        string // Lowercase hex SHA-256 of the stored content.
}
