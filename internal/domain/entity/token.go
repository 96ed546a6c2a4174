package entity

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
)

// TokenPurpose discriminates the two kinds of single-use credentials that
// share the verification_tokens table.
type TokenPurpose string

const (
	// TokenPurposeEmailVerification confirms ownership of an email address.
	TokenPurposeEmailVerification TokenPurpose = "email_verification"
	// TokenPurposePasswordReset authorizes a one-time password change.
	TokenPurposePasswordReset TokenPurpose = "password_reset"
)

// IsValid checks if the TokenPurpose is a valid value.
func (p TokenPurpose) IsValid() bool {
	switch p {
	case TokenPurposeEmailVerification, TokenPurposePasswordReset:
		return true
	default:
		return false
	}
}

// tokenLength is the number of random alphanumeric characters in a token,
// about 380 bits of entropy.
const tokenLength = 64

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// VerificationToken is an ephemeral single-use credential. Valid iff it has
// not been redeemed and has not expired. Stale tokens are swept by a
// periodic worker task that marks them used.
type VerificationToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Purpose   TokenPurpose
	Token     string // Opaque random value, unique.
	IsUsed    bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewVerificationToken generates a fresh token for the user with the given
// purpose and time to live.
func NewVerificationToken(userID uuid.UUID, purpose TokenPurpose, ttl time.Duration) *VerificationToken {
	return &VerificationToken{
		UserID:    userID,
		Purpose:   purpose,
		Token:     randomTokenString(tokenLength),
		ExpiresAt: time.Now().Add(ttl),
	}
}

// IsExpired reports whether the token's lifetime has passed.
func (t *VerificationToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// IsValidNow reports whether the token can still be redeemed.
func (t *VerificationToken) IsValidNow() bool {
	return !t.IsUsed && !t.IsExpired()
}

func randomTokenString(n int) string {
	buf := make([]byte, n)
	// rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}

	return string(buf)
}
