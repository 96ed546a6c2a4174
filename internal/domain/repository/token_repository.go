// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for verification token persistence.
var (
	// ErrTokenNotFound is returned when a token value does not exist for the given purpose.
	ErrTokenNotFound = errors.New("verification token not found")
	// ErrTokenAlreadyUsed is returned when redeeming a token that was already consumed.
	ErrTokenAlreadyUsed = errors.New("verification token already used")
)

// TokenRepository defines the interface for single-use verification token persistence.
type TokenRepository interface {
	// Create persists a new verification token.
	Create(ctx context.Context, token *entity.VerificationToken) error

	// FindByValue retrieves a token by its opaque value and purpose.
	FindByValue(ctx context.Context, value string, purpose entity.TokenPurpose) (*entity.VerificationToken, error)

	// Redeem atomically marks a token as used. The update only succeeds when the
	// token is still unused, so concurrent redemptions of the same token resolve
	// to exactly one winner. Returns ErrTokenAlreadyUsed for the losers.
	Redeem(ctx context.Context, value string, purpose entity.TokenPurpose) (*entity.VerificationToken, error)

	// InvalidateActiveTokens marks all unused tokens of the given purpose for a
	// user as used, so only the most recently issued token stays redeemable.
	InvalidateActiveTokens(ctx context.Context, userID uuid.UUID, purpose entity.TokenPurpose) error

	// MarkUsedCreatedBefore marks unused tokens created before the cutoff as
	// used. Rows are kept for audit; marking them used just takes stale tokens
	// out of circulation. Returns the number of tokens marked.
	MarkUsedCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
