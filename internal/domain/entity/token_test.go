package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerificationToken(t *testing.T) {
	userID := uuid.New()

	token := NewVerificationToken(userID, TokenPurposeEmailVerification, time.Hour)

	require.NotNil(t, token)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, TokenPurposeEmailVerification, token.Purpose)
	assert.Len(t, token.Token, 64)
	assert.False(t, token.IsUsed)
	assert.True(t, token.IsValidNow())
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	for _, r := range token.Token {
		assert.True(t, strings.ContainsRune(tokenAlphabet, r))
	}
}

func TestNewVerificationToken_Uniqueness(t *testing.T) {
	userID := uuid.New()

	first := NewVerificationToken(userID, TokenPurposePasswordReset, time.Hour)
	second := NewVerificationToken(userID, TokenPurposePasswordReset, time.Hour)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestVerificationToken_IsExpired(t *testing.T) {
	fresh := &VerificationToken{ExpiresAt: time.Now().Add(time.Hour)}
	stale := &VerificationToken{ExpiresAt: time.Now().Add(-time.Minute)}

	assert.False(t, fresh.IsExpired())
	assert.True(t, stale.IsExpired())
}

func TestVerificationToken_IsValidNow(t *testing.T) {
	used := &VerificationToken{IsUsed: true, ExpiresAt: time.Now().Add(time.Hour)}
	expired := &VerificationToken{ExpiresAt: time.Now().Add(-time.Minute)}
	valid := &VerificationToken{ExpiresAt: time.Now().Add(time.Hour)}

	assert.False(t, used.IsValidNow())
	assert.False(t, expired.IsValidNow())
	assert.True(t, valid.IsValidNow())
}

func TestTokenPurpose_IsValid(t *testing.T) {
	assert.True(t, TokenPurposeEmailVerification.IsValid())
	assert.True(t, TokenPurposePasswordReset.IsValid())
	assert.False(t, TokenPurpose("session").IsValid())
}
