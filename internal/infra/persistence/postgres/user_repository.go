// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading profile and roles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Roles").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading profile and roles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Roles").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity and its profile in one insert with associations.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Omit("Roles").Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.UserID = userM.Profile.UserID
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

// Update modifies the user's own columns. Roles and password are managed
// through their dedicated methods.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email": userM.Email,
			"name":  userM.Name,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePasswordHash replaces the stored password hash.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// PasswordHash retrieves the stored password hash for credential checks.
func (repo *userRepository) PasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Select("password_hash").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to load password hash")
	}

	return userM.PasswordHash, nil
}

// SetEmailVerified marks the user's email address as verified.
func (repo *userRepository) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_email_verified", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark email verified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetKYCVerified updates the derived verification flag.
func (repo *userRepository) SetKYCVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_kyc_verified", verified)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update verification flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AssignRole attaches a named role to the user. Assigning a held role is a no-op.
func (repo *userRepository) AssignRole(ctx context.Context, id uuid.UUID, roleName string) error {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", roleName).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrRoleNotFound
		}

		return errors.Wrap(err, "failed to find role")
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: id}).
		Omit("Roles.*").
		Association("Roles").
		Append(&roleM)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role")
	}

	return nil
}

// AcquireUserLock takes a row-level lock on the user for the duration of the
// current transaction.
func (repo *userRepository) AcquireUserLock(ctx context.Context, id uuid.UUID) error {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to lock user row")
	}

	return nil
}

// --- Mappers between persistence models and domain entities ---

func toUserDomain(userM *model.UserModel) *entity.User {
	user := &entity.User{
		ID:              userM.ID,
		Email:           userM.Email,
		Name:            userM.Name,
		IsStaff:         userM.IsStaff,
		IsEmailVerified: userM.IsEmailVerified,
		IsKYCVerified:   userM.IsKYCVerified,
		CreatedAt:       userM.CreatedAt,
		UpdatedAt:       userM.UpdatedAt,
	}

	if userM.Profile != nil {
		user.Profile = &entity.Profile{
			UserID:      userM.Profile.UserID,
			AccountType: entity.AccountType(userM.Profile.AccountType),
			Phone:       userM.Profile.Phone,
			Country:     userM.Profile.Country,
			UpdatedAt:   userM.Profile.UpdatedAt,
		}
	}
	for _, roleM := range userM.Roles {
		user.Roles = append(user.Roles, toRoleDomain(roleM))
	}

	return user
}

func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		IsStaff:         user.IsStaff,
		IsEmailVerified: user.IsEmailVerified,
		IsKYCVerified:   user.IsKYCVerified,
	}

	if user.Profile != nil {
		userM.Profile = &model.ProfileModel{
			UserID:      user.Profile.UserID,
			AccountType: string(user.Profile.AccountType),
			Phone:       user.Profile.Phone,
			Country:     user.Profile.Country,
		}
	}

	return userM
}

func toRoleDomain(roleM *model.RoleModel) entity.Role {
	return entity.Role{
		ID:          roleM.ID,
		Name:        roleM.Name,
		Description: roleM.Description,
		CreatedAt:   roleM.CreatedAt,
	}
}
