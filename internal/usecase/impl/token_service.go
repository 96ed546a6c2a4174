// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vouch/config"
	deliverycontext "vouch/internal/delivery/context"
	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/domain/service"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Fallback token lifetimes when the config section is absent.
const (
	defaultEmailTokenTTL  = 24 * time.Hour
	defaultResetTokenTTL  = time.Hour
	defaultTokenRetention = 48 * time.Hour
)

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	txManager  repository.TransactionManager
	mailSender service.MailSender
	hasher     service.PasswordHasher

	emailTokenTTL time.Duration
	resetTokenTTL time.Duration
	retention     time.Duration
	baseURL       string

	logger *slog.Logger
}

// TokenServiceParams holds dependencies for TokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MailSender service.MailSender
	Hasher     service.PasswordHasher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	srv := &tokenService{
		txManager:     params.TxManager,
		mailSender:    params.MailSender,
		hasher:        params.Hasher,
		emailTokenTTL: defaultEmailTokenTTL,
		resetTokenTTL: defaultResetTokenTTL,
		retention:     defaultTokenRetention,
		logger:        params.Logger,
	}

	if params.Config != nil && params.Config.Tokens != nil {
		tokens := params.Config.Tokens
		if tokens.EmailVerificationTTL > 0 {
			srv.emailTokenTTL = tokens.EmailVerificationTTL
		}
		if tokens.PasswordResetTTL > 0 {
			srv.resetTokenTTL = tokens.PasswordResetTTL
		}
		if tokens.Retention > 0 {
			srv.retention = tokens.Retention
		}
		srv.baseURL = tokens.BaseURL
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestEmailVerification issues a fresh verification token and mails its link.
func (srv *tokenService) RequestEmailVerification(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Requesting email verification", slog.Any("userID", userID))

	var user *entity.User
	var token *entity.VerificationToken
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.TokenRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		if found.IsEmailVerified {
			return domainerrors.ErrEmailAlreadyVerified.WrapMessage("email already verified")
		}
		user = found

		if err := tokenRepo.InvalidateActiveTokens(ctx, userID, entity.TokenPurposeEmailVerification); err != nil {
			return errors.Wrap(err, "failed to invalidate earlier tokens")
		}

		fresh := entity.NewVerificationToken(userID, entity.TokenPurposeEmailVerification, srv.emailTokenTTL)
		if err := tokenRepo.Create(ctx, fresh); err != nil {
			return errors.Wrap(err, "failed to store token")
		}
		token = fresh

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute email verification request")
	}

	body := fmt.Sprintf("請點擊以下連結完成電子郵件驗證：\n%s/auth/email-verification/confirm?token=%s\n\n連結將於 %s 後失效。",
		srv.baseURL, token.Token, srv.emailTokenTTL)
	if err := srv.mailSender.Send(ctx, user.Email, "請驗證您的電子郵件", body); err != nil {
		srv.log(ctx).Error("Failed to send verification mail", slog.Any("userID", userID), slog.Any("error", err))

		return domainerrors.ErrMailFailure.WrapMessage("failed to send verification mail")
	}

	return nil
}

// ConfirmEmail redeems a verification token and marks the email verified.
func (srv *tokenService) ConfirmEmail(ctx context.Context, input *usecase.ConfirmEmailInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()
		userRepo := repoFactory.UserRepo()

		token, err := srv.redeemToken(ctx, tokenRepo, input.Token, entity.TokenPurposeEmailVerification)
		if err != nil {
			return err
		}

		if err := userRepo.SetEmailVerified(ctx, token.UserID); err != nil {
			return errors.Wrap(err, "failed to mark email verified")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute email confirmation")
	}

	return nil
}

// RequestPasswordReset issues a reset token and mails its link.
// Unknown email addresses succeed silently to avoid account enumeration.
func (srv *tokenService) RequestPasswordReset(ctx context.Context, input *usecase.RequestPasswordResetInput) error {
	srv.log(ctx).Info("Requesting password reset", slog.String("email", input.Email))

	var user *entity.User
	var token *entity.VerificationToken
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.TokenRepo()

		found, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		if err := tokenRepo.InvalidateActiveTokens(ctx, user.ID, entity.TokenPurposePasswordReset); err != nil {
			return errors.Wrap(err, "failed to invalidate earlier tokens")
		}

		fresh := entity.NewVerificationToken(user.ID, entity.TokenPurposePasswordReset, srv.resetTokenTTL)
		if err := tokenRepo.Create(ctx, fresh); err != nil {
			return errors.Wrap(err, "failed to store token")
		}
		token = fresh

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset request")
	}
	if user == nil {
		srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", input.Email))

		return nil
	}

	body := fmt.Sprintf("請點擊以下連結重設您的密碼：\n%s/auth/password-reset/confirm?token=%s\n\n連結將於 %s 後失效。",
		srv.baseURL, token.Token, srv.resetTokenTTL)
	if err := srv.mailSender.Send(ctx, user.Email, "重設密碼", body); err != nil {
		srv.log(ctx).Error("Failed to send reset mail", slog.Any("userID", user.ID), slog.Any("error", err))

		return domainerrors.ErrMailFailure.WrapMessage("failed to send reset mail")
	}

	return nil
}

// ConfirmPasswordReset redeems a reset token and replaces the password.
func (srv *tokenService) ConfirmPasswordReset(ctx context.Context, input *usecase.ConfirmPasswordResetInput) error {
	if len(input.NewPassword) < minPasswordLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too short")
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()
		userRepo := repoFactory.UserRepo()

		token, err := srv.redeemToken(ctx, tokenRepo, input.Token, entity.TokenPurposePasswordReset)
		if err != nil {
			return err
		}

		if err := userRepo.UpdatePasswordHash(ctx, token.UserID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset confirmation")
	}

	return nil
}

// redeemToken atomically consumes a token, translating persistence errors to
// the domain taxonomy. An expired token is consumed but still fails, so it
// cannot be retried later.
func (srv *tokenService) redeemToken(ctx context.Context, tokenRepo repository.TokenRepository, value string, purpose entity.TokenPurpose) (*entity.VerificationToken, error) {
	token, err := tokenRepo.Redeem(ctx, value, purpose)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTokenNotFound):
			return nil, domainerrors.ErrInvalidOrUsedToken.WrapMessage("token not found")
		case errors.Is(err, repository.ErrTokenAlreadyUsed):
			return nil, domainerrors.ErrInvalidOrUsedToken.WrapMessage("token already used")
		default:
			return nil, errors.Wrap(err, "failed to redeem token")
		}
	}
	if token.IsExpired() {
		return nil, domainerrors.ErrTokenExpired.WrapMessage("token expired")
	}

	return token, nil
}

// ExpireOldTokens marks tokens created before the retention window as used,
// taking them out of circulation without deleting the rows.
func (srv *tokenService) ExpireOldTokens(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-srv.retention)

	var expired int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.TokenRepo().MarkUsedCreatedBefore(ctx, cutoff)
		if err != nil {
			return errors.Wrap(err, "failed to mark stale tokens used")
		}
		expired = count

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to execute token sweep")
	}

	srv.log(ctx).Info("Stale token sweep completed", slog.Int64("expired", expired))

	return expired, nil
}
