package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() (passport, addressProof, incorporation, inactive *DocumentType) {
	passport = &DocumentType{
		ID: uuid.New(), Name: "Passport",
		ApplicableTo: ApplicableToIndividual, IsActive: true, IsRequired: true,
	}
	addressProof = &DocumentType{
		ID: uuid.New(), Name: "Proof of Address",
		ApplicableTo: ApplicableToBoth, IsActive: true, IsRequired: false,
	}
	incorporation = &DocumentType{
		ID: uuid.New(), Name: "Certificate of Incorporation",
		ApplicableTo: ApplicableToBusiness, IsActive: true, IsRequired: true,
	}
	inactive = &DocumentType{
		ID: uuid.New(), Name: "Legacy ID Card",
		ApplicableTo: ApplicableToIndividual, IsActive: false, IsRequired: true,
	}

	return passport, addressProof, incorporation, inactive
}

func TestRequiredDocumentTypes_IndividualAxis(t *testing.T) {
	passport, addressProof, incorporation, inactive := testCatalog()
	catalog := []*DocumentType{passport, addressProof, incorporation, inactive}

	rctx := RequirementContext{AccountType: AccountTypeIndividual, Roles: []string{RoleBuyer}}

	required := RequiredDocumentTypes(catalog, rctx)

	require.Len(t, required, 1)
	assert.Equal(t, "Passport", required[0].Name)
}

func TestRequiredDocumentTypes_BusinessAxis(t *testing.T) {
	passport, addressProof, incorporation, inactive := testCatalog()
	catalog := []*DocumentType{passport, addressProof, incorporation, inactive}

	rctx := RequirementContext{
		AccountType: AccountTypeBusiness,
		ForBusiness: true,
		Roles:       []string{RoleBuyer},
	}

	required := RequiredDocumentTypes(catalog, rctx)

	require.Len(t, required, 1)
	assert.Equal(t, "Certificate of Incorporation", required[0].Name)
}

func TestRequiredDocumentTypes_RoleRestriction(t *testing.T) {
	restricted := &DocumentType{
		ID: uuid.New(), Name: "Admin Clearance",
		ApplicableTo: ApplicableToIndividual, IsActive: true, IsRequired: true,
		RequiredRoles: []Role{{Name: RoleAdmin}},
	}
	catalog := []*DocumentType{restricted}

	buyer := RequirementContext{AccountType: AccountTypeIndividual, Roles: []string{RoleBuyer}}
	admin := RequirementContext{AccountType: AccountTypeIndividual, Roles: []string{RoleAdmin}}

	assert.Empty(t, RequiredDocumentTypes(catalog, buyer))
	assert.Len(t, RequiredDocumentTypes(catalog, admin), 1)
}

func TestApplicableDocumentTypes_IncludesOptional(t *testing.T) {
	passport, addressProof, incorporation, inactive := testCatalog()
	catalog := []*DocumentType{passport, addressProof, incorporation, inactive}

	rctx := RequirementContext{AccountType: AccountTypeIndividual, Roles: []string{RoleBuyer}}

	applicable := ApplicableDocumentTypes(catalog, rctx)

	require.Len(t, applicable, 2)
	assert.Equal(t, "Passport", applicable[0].Name)
	assert.Equal(t, "Proof of Address", applicable[1].Name)
}

func TestSubmissionContext_KYBFollowsSubmissionAxis(t *testing.T) {
	businessID := uuid.New()
	kyb := &KYCSubmission{ID: uuid.New(), BusinessID: &businessID}
	kyc := &KYCSubmission{ID: uuid.New()}

	// An individual creating a KYB submission still resolves on the business axis.
	assert.True(t, SubmissionContext(kyb, AccountTypeIndividual, nil).ForBusiness)
	assert.False(t, SubmissionContext(kyc, AccountTypeIndividual, nil).ForBusiness)
	assert.True(t, SubmissionContext(kyc, AccountTypeBusiness, nil).ForBusiness)
}

func TestMissingTypeNames(t *testing.T) {
	passport, _, _, _ := testCatalog()
	addressProof := &DocumentType{
		ID: uuid.New(), Name: "Proof of Address",
		ApplicableTo: ApplicableToIndividual, IsActive: true, IsRequired: true,
	}
	required := []*DocumentType{passport, addressProof}

	attached := map[uuid.UUID]bool{passport.ID: true}

	missing := MissingTypeNames(required, attached)

	assert.Equal(t, []string{"Proof of Address"}, missing)
}

func TestMissingTypeNames_AllAttached(t *testing.T) {
	passport, _, _, _ := testCatalog()
	required := []*DocumentType{passport}

	missing := MissingTypeNames(required, map[uuid.UUID]bool{passport.ID: true})

	assert.Empty(t, missing)
}
