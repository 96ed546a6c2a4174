package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionStatus_IsTerminal(t *testing.T) {
	assert.False(t, SubmissionStatusPending.IsTerminal())
	assert.False(t, SubmissionStatusInReview.IsTerminal())
	assert.True(t, SubmissionStatusApproved.IsTerminal())
	assert.True(t, SubmissionStatusRejected.IsTerminal())
}

func TestSubmissionStatus_IsActive(t *testing.T) {
	assert.True(t, SubmissionStatusPending.IsActive())
	assert.True(t, SubmissionStatusInReview.IsActive())
	assert.False(t, SubmissionStatusApproved.IsActive())
	assert.False(t, SubmissionStatusRejected.IsActive())
}

func TestKYCSubmission_IsKYB(t *testing.T) {
	businessID := uuid.New()

	kyc := &KYCSubmission{ID: uuid.New()}
	kyb := &KYCSubmission{ID: uuid.New(), BusinessID: &businessID}

	assert.False(t, kyc.IsKYB())
	assert.True(t, kyb.IsKYB())
}

func TestKYCSubmission_DocumentOfType(t *testing.T) {
	passportTypeID := uuid.New()
	passportDoc := &KYCDocument{ID: uuid.New(), DocumentTypeID: passportTypeID}
	submission := &KYCSubmission{Documents: []*KYCDocument{passportDoc}}

	found := submission.DocumentOfType(passportTypeID)
	require.NotNil(t, found)
	assert.Equal(t, passportDoc.ID, found.ID)

	assert.Nil(t, submission.DocumentOfType(uuid.New()))
}

func TestKYCSubmission_AttachedTypeIDs(t *testing.T) {
	typeA := uuid.New()
	typeB := uuid.New()
	submission := &KYCSubmission{Documents: []*KYCDocument{
		{DocumentTypeID: typeA, Status: DocumentStatusPending},
		{DocumentTypeID: typeB, Status: DocumentStatusRejected},
	}}

	attached := submission.AttachedTypeIDs()

	assert.Len(t, attached, 2)
	assert.True(t, attached[typeA])
	assert.True(t, attached[typeB])
}

func TestKYCSubmission_ApprovedTypeIDs(t *testing.T) {
	approvedType := uuid.New()
	pendingType := uuid.New()
	submission := &KYCSubmission{Documents: []*KYCDocument{
		{DocumentTypeID: approvedType, Status: DocumentStatusApproved},
		{DocumentTypeID: pendingType, Status: DocumentStatusPending},
	}}

	approved := submission.ApprovedTypeIDs()

	assert.Len(t, approved, 1)
	assert.True(t, approved[approvedType])
	assert.False(t, approved[pendingType])
}
