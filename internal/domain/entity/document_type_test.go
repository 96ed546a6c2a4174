package entity

import (
	"testing"

	domainerrors "vouch/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestDocumentType_AppliesToAxis(t *testing.T) {
	individual := &DocumentType{ApplicableTo: ApplicableToIndividual}
	business := &DocumentType{ApplicableTo: ApplicableToBusiness}
	both := &DocumentType{ApplicableTo: ApplicableToBoth}

	assert.True(t, individual.AppliesToAxis(false))
	assert.False(t, individual.AppliesToAxis(true))

	assert.True(t, business.AppliesToAxis(true))
	assert.False(t, business.AppliesToAxis(false))

	assert.True(t, both.AppliesToAxis(false))
	assert.True(t, both.AppliesToAxis(true))
}

func TestDocumentType_MatchesRoles(t *testing.T) {
	unrestricted := &DocumentType{}
	adminOnly := &DocumentType{RequiredRoles: []Role{{Name: RoleAdmin}}}

	assert.True(t, unrestricted.MatchesRoles(nil))
	assert.True(t, unrestricted.MatchesRoles([]string{RoleBuyer}))

	assert.False(t, adminOnly.MatchesRoles([]string{RoleBuyer}))
	assert.True(t, adminOnly.MatchesRoles([]string{RoleBuyer, RoleAdmin}))
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "pdf", FileExtension("passport.pdf"))
	assert.Equal(t, "jpg", FileExtension("scan.final.JPG"))
	assert.Equal(t, "", FileExtension("README"))
	assert.Equal(t, "", FileExtension("archive."))
}

func TestDocumentType_ValidateFile(t *testing.T) {
	docType := &DocumentType{
		Name:          "Passport",
		IsActive:      true,
		MaxFileSizeMB: 5,
		AllowedFile:   []string{"pdf", "jpg"},
	}

	assert.NoError(t, docType.ValidateFile("passport.pdf", 1024))
	assert.NoError(t, docType.ValidateFile("passport.JPG", 1024))

	err := docType.ValidateFile("passport.pdf", 6<<20)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))

	err = docType.ValidateFile("passport.exe", 1024)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTypeNotAllowed))
}

func TestDocumentType_ValidateFile_Inactive(t *testing.T) {
	docType := &DocumentType{Name: "Old ID Card", MaxFileSizeMB: 5}

	err := docType.ValidateFile("id.pdf", 1024)

	assert.True(t, errors.Is(err, domainerrors.ErrDocumentTypeInactive))
}

func TestDocumentType_ValidateFile_NoExtensionRestriction(t *testing.T) {
	docType := &DocumentType{Name: "Anything", IsActive: true, MaxFileSizeMB: 5}

	assert.NoError(t, docType.ValidateFile("statement.xyz", 1024))
}

func TestDocumentType_MaxFileSizeBytes(t *testing.T) {
	docType := &DocumentType{MaxFileSizeMB: 2}

	assert.Equal(t, int64(2<<20), docType.MaxFileSizeBytes())
}
