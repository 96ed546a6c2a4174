// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Create persists a new verification token.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.VerificationToken) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("token value collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByValue retrieves a token by its opaque value and purpose.
func (repo *tokenRepository) FindByValue(ctx context.Context, value string, purpose entity.TokenPurpose) (*entity.VerificationToken, error) {
	var tokenM model.VerificationTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ? AND purpose = ?", value, string(purpose)).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token by value")
	}

	return toTokenDomain(&tokenM), nil
}

// Redeem atomically marks a token used. The conditional update is the
// single-use guarantee: two concurrent redeemers race on is_used and
// exactly one wins.
func (repo *tokenRepository) Redeem(ctx context.Context, value string, purpose entity.TokenPurpose) (*entity.VerificationToken, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.VerificationTokenModel{}).
		Where("token = ? AND purpose = ? AND is_used = ?", value, string(purpose), false).
		Update("is_used", true)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to redeem token")
	}

	if result.RowsAffected == 0 {
		// Distinguish a token that never existed from one already spent.
		var tokenM model.VerificationTokenModel
		if err := repo.db.WithContext(ctx).
			Where("token = ? AND purpose = ?", value, string(purpose)).
			First(&tokenM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrTokenNotFound
			}

			return nil, errors.Wrap(err, "failed to inspect token after redeem miss")
		}

		return nil, repository.ErrTokenAlreadyUsed
	}

	var tokenM model.VerificationTokenModel
	if err := repo.db.WithContext(ctx).
		Where("token = ? AND purpose = ?", value, string(purpose)).
		First(&tokenM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload redeemed token")
	}

	return toTokenDomain(&tokenM), nil
}

// InvalidateActiveTokens marks all of a user's unused tokens for a purpose
// as used, so requesting a fresh token revokes the previous ones.
func (repo *tokenRepository) InvalidateActiveTokens(ctx context.Context, userID uuid.UUID, purpose entity.TokenPurpose) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.VerificationTokenModel{}).
		Where("user_id = ? AND purpose = ? AND is_used = ?", userID, string(purpose), false).
		Update("is_used", true).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to invalidate active tokens")
	}

	return nil
}

// MarkUsedCreatedBefore marks unused tokens created before the cutoff as used
// and returns how many rows were updated. Rows stay in place for audit.
func (repo *tokenRepository) MarkUsedCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.VerificationTokenModel{}).
		Where("created_at < ? AND is_used = ?", cutoff, false).
		Update("is_used", true)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark stale tokens used")
	}

	return result.RowsAffected, nil
}

// --- Mappers between persistence models and domain entities ---

func toTokenDomain(tokenM *model.VerificationTokenModel) *entity.VerificationToken {
	return &entity.VerificationToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		Token:     tokenM.Token,
		Purpose:   entity.TokenPurpose(tokenM.Purpose),
		IsUsed:    tokenM.IsUsed,
		ExpiresAt: tokenM.ExpiresAt,
		CreatedAt: tokenM.CreatedAt,
	}
}

func fromTokenDomain(token *entity.VerificationToken) *model.VerificationTokenModel {
	return &model.VerificationTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		Token:     token.Token,
		Purpose:   string(token.Purpose),
		IsUsed:    token.IsUsed,
		ExpiresAt: token.ExpiresAt,
	}
}
