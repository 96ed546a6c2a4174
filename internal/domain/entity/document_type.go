package entity

import (
	"fmt"
	"strings"
	"time"

	domainerrors "vouch/internal/domain/errors"

	"github.com/google/uuid"
)

// Applicability declares which verification axis a document type belongs to.
type Applicability string

const (
	// ApplicableToIndividual restricts the type to personal KYC submissions.
	ApplicableToIndividual Applicability = "individual"
	// ApplicableToBusiness restricts the type to KYB submissions.
	ApplicableToBusiness Applicability = "business"
	// ApplicableToBoth matches either axis.
	ApplicableToBoth Applicability = "both"
)

// IsValid checks if the Applicability is a valid value.
func (a Applicability) IsValid() bool {
	switch a {
	case ApplicableToIndividual, ApplicableToBusiness, ApplicableToBoth:
		return true
	default:
		return false
	}
}

// DocumentType is an admin-managed catalog entry describing one kind of
// verification document and its upload constraints. Types are soft-disabled
// via IsActive rather than deleted, because historical documents keep
// referencing them.
type DocumentType struct {
	ID            uuid.UUID
	Name          string // Unique, e.g. "Passport", "Certificate of Incorporation".
	Description   string
	ApplicableTo  Applicability
	IsActive      bool
	IsRequired    bool
	RequiredRoles []Role   // Empty means the type applies regardless of role.
	MaxFileSizeMB int      // Upload size ceiling.
	AllowedFile   []string // Allowed extensions; empty means no restriction.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppliesToAxis reports whether the type belongs to the given verification
// axis. ApplicableToBoth matches either.
func (dt *DocumentType) AppliesToAxis(forBusiness bool) bool {
	switch dt.ApplicableTo {
	case ApplicableToBoth:
		return true
	case ApplicableToBusiness:
		return forBusiness
	case ApplicableToIndividual:
		return !forBusiness
	default:
		return false
	}
}

// MatchesRoles reports whether the type's role restriction is satisfied by
// the given role names. An empty restriction always matches.
func (dt *DocumentType) MatchesRoles(roles []string) bool {
	if len(dt.RequiredRoles) == 0 {
		return true
	}

	return rolesIntersect(roles, dt.RequiredRoles)
}

// MaxFileSizeBytes returns the size ceiling in bytes.
func (dt *DocumentType) MaxFileSizeBytes() int64 {
	return int64(dt.MaxFileSizeMB) << 20
}

// FileExtension extracts the lowercase extension (the part after the last
// dot) from a file name. Files without a dot have an empty extension.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}

	return strings.ToLower(filename[idx+1:])
}

// ValidateFile enforces the type's upload constraints against file metadata.
// It is called at the upload boundary and again inside the persistence save
// path, so a bypassed outer layer still cannot store an invalid document.
func (dt *DocumentType) ValidateFile(filename string, sizeBytes int64) error {
	if !dt.IsActive {
		return domainerrors.ErrDocumentTypeInactive.WithDetails(dt.Name)
	}

	if sizeBytes > dt.MaxFileSizeBytes() {
		return domainerrors.ErrFileTooLarge.WithDetails(
			fmt.Sprintf("file exceeds the %d MB limit for %q", dt.MaxFileSizeMB, dt.Name))
	}

	if len(dt.AllowedFile) == 0 {
		return nil
	}

	ext := FileExtension(filename)
	for _, allowed := range dt.AllowedFile {
		if strings.EqualFold(allowed, ext) {
			return nil
		}
	}

	return domainerrors.ErrFileTypeNotAllowed.WithDetails(
		fmt.Sprintf("extension %q not in [%s]", ext, strings.Join(dt.AllowedFile, ", ")))
}
