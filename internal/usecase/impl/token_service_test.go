package impl

import (
	"context"
	"testing"
	"time"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	mockRepo "vouch/internal/mocks/repository"
	mockSvc "vouch/internal/mocks/service"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tokenServiceFixtures holds all test dependencies for token service tests.
type tokenServiceFixtures struct {
	t          *testing.T
	service    usecase.TokenUsecase
	txManager  *mockRepo.MockTransactionManager
	mailSender *mockSvc.MockMailSender
	hasher     *mockSvc.MockPasswordHasher
}

func createTestTokenService(t *testing.T) tokenServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	mailSender := mockSvc.NewMockMailSender(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewTokenService(TokenServiceParams{
		TxManager:  txManager,
		MailSender: mailSender,
		Hasher:     hasher,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return tokenServiceFixtures{
		t:          t,
		service:    service,
		txManager:  txManager,
		mailSender: mailSender,
		hasher:     hasher,
	}
}

func (fx tokenServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestTokenService_RequestEmailVerification_Success(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockTokenRepo.EXPECT().
			InvalidateActiveTokens(ctx, userID, entity.TokenPurposeEmailVerification).
			Return(nil)
		mockTokenRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.VerificationToken")).
			Return(nil)
	})

	fx.mailSender.EXPECT().
		Send(ctx, user.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.RequestEmailVerification(ctx, userID)

	require.NoError(t, err)
}

func TestTokenService_RequestEmailVerification_AlreadyVerified(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com", IsEmailVerified: true}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrEmailAlreadyVerified, "email already verified"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	err := fx.service.RequestEmailVerification(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyVerified))
}

func TestTokenService_RequestEmailVerification_MailFailure(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockTokenRepo.EXPECT().
			InvalidateActiveTokens(ctx, userID, entity.TokenPurposeEmailVerification).
			Return(nil)
		mockTokenRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.VerificationToken")).
			Return(nil)
	})

	fx.mailSender.EXPECT().
		Send(ctx, user.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("smtp refused"))

	err := fx.service.RequestEmailVerification(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailFailure))
}

func TestTokenService_ConfirmEmail_Success(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ConfirmEmailInput{Token: "opaque-token-value"}

	redeemed := &entity.VerificationToken{
		ID:        uuid.New(),
		UserID:    userID,
		Purpose:   entity.TokenPurposeEmailVerification,
		Token:     input.Token,
		IsUsed:    true,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockTokenRepo.EXPECT().
			Redeem(ctx, input.Token, entity.TokenPurposeEmailVerification).
			Return(redeemed, nil)
		mockUserRepo.EXPECT().SetEmailVerified(ctx, userID).Return(nil)
	})

	err := fx.service.ConfirmEmail(ctx, input)

	require.NoError(t, err)
}

func TestTokenService_ConfirmEmail_TokenAlreadyUsed(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	input := &usecase.ConfirmEmailInput{Token: "spent-token"}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrInvalidOrUsedToken, "token already used"), func(factory *mockRepo.MockRepositoryFactory) {
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockTokenRepo.EXPECT().
			Redeem(ctx, input.Token, entity.TokenPurposeEmailVerification).
			Return(nil, repository.ErrTokenAlreadyUsed)
	})

	err := fx.service.ConfirmEmail(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrUsedToken))
}

func TestTokenService_ConfirmEmail_TokenExpired(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ConfirmEmailInput{Token: "expired-token"}

	// The token is consumed by the redeem even though it has expired.
	redeemed := &entity.VerificationToken{
		ID:        uuid.New(),
		UserID:    userID,
		Purpose:   entity.TokenPurposeEmailVerification,
		Token:     input.Token,
		IsUsed:    true,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrTokenExpired, "token expired"), func(factory *mockRepo.MockRepositoryFactory) {
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockTokenRepo.EXPECT().
			Redeem(ctx, input.Token, entity.TokenPurposeEmailVerification).
			Return(redeemed, nil)
	})

	err := fx.service.ConfirmEmail(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestTokenService_RequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	input := &usecase.RequestPasswordResetInput{Email: "nobody@example.com"}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	})

	// No mail is sent for unknown addresses, and no error leaks out.
	err := fx.service.RequestPasswordReset(ctx, input)

	require.NoError(t, err)
	fx.mailSender.AssertNotCalled(t, "Send")
}

func TestTokenService_RequestPasswordReset_Success(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com"}
	input := &usecase.RequestPasswordResetInput{Email: user.Email}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
		mockTokenRepo.EXPECT().
			InvalidateActiveTokens(ctx, user.ID, entity.TokenPurposePasswordReset).
			Return(nil)
		mockTokenRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.VerificationToken")).
			Return(nil)
	})

	fx.mailSender.EXPECT().
		Send(ctx, user.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.RequestPasswordReset(ctx, input)

	require.NoError(t, err)
}

func TestTokenService_ConfirmPasswordReset_Success(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.ConfirmPasswordResetInput{
		Token:       "reset-token",
		NewPassword: "NewPassword123!",
	}

	redeemed := &entity.VerificationToken{
		ID:        uuid.New(),
		UserID:    userID,
		Purpose:   entity.TokenPurposePasswordReset,
		Token:     input.Token,
		IsUsed:    true,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.hasher.EXPECT().Hash(input.NewPassword).Return("new_hash", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockTokenRepo.EXPECT().
			Redeem(ctx, input.Token, entity.TokenPurposePasswordReset).
			Return(redeemed, nil)
		mockUserRepo.EXPECT().UpdatePasswordHash(ctx, userID, "new_hash").Return(nil)
	})

	err := fx.service.ConfirmPasswordReset(ctx, input)

	require.NoError(t, err)
}

func TestTokenService_ConfirmPasswordReset_ShortPassword(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	input := &usecase.ConfirmPasswordResetInput{
		Token:       "reset-token",
		NewPassword: "short",
	}

	err := fx.service.ConfirmPasswordReset(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestTokenService_ExpireOldTokens(t *testing.T) {
	fx := createTestTokenService(t)

	ctx := context.Background()
	var cutoff time.Time

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockTokenRepo := mockRepo.NewMockTokenRepository(t)
		factory.EXPECT().TokenRepo().Return(mockTokenRepo)

		// The sweep marks stale tokens used instead of deleting them.
		mockTokenRepo.EXPECT().
			MarkUsedCreatedBefore(ctx, mock.AnythingOfType("time.Time")).
			Run(func(_ context.Context, c time.Time) {
				cutoff = c
			}).
			Return(int64(3), nil)
	})

	expired, err := fx.service.ExpireOldTokens(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)
	assert.WithinDuration(t, time.Now().Add(-48*time.Hour), cutoff, time.Minute)
}
