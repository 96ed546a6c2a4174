// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ConfirmEmailInput carries the opaque token from the verification link.
type ConfirmEmailInput struct {
	Token string
}

// RequestPasswordResetInput identifies the account to reset by email.
type RequestPasswordResetInput struct {
	Email string
}

// ConfirmPasswordResetInput carries the reset token and the new password.
type ConfirmPasswordResetInput struct {
	Token       string
	NewPassword string
}

// TokenUsecase defines the interface for single-use verification token flows:
// email verification and password reset.
type TokenUsecase interface {
	// RequestEmailVerification issues a fresh email verification token for the
	// user, invalidates any earlier unused ones, and sends the verification mail.
	RequestEmailVerification(ctx context.Context, userID uuid.UUID) error

	// ConfirmEmail redeems an email verification token and marks the user's
	// email address as verified.
	ConfirmEmail(ctx context.Context, input *ConfirmEmailInput) error

	// RequestPasswordReset issues a password reset token and sends the reset
	// mail. Unknown email addresses succeed silently.
	RequestPasswordReset(ctx context.Context, input *RequestPasswordResetInput) error

	// ConfirmPasswordReset redeems a reset token and replaces the user's password.
	ConfirmPasswordReset(ctx context.Context, input *ConfirmPasswordResetInput) error

	// ExpireOldTokens marks tokens older than the retention window as used.
	// Returns the number of tokens marked.
	ExpireOldTokens(ctx context.Context) (int64, error)
}
