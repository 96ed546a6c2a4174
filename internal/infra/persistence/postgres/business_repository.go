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

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// CreateBusiness persists a new business profile.
func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.BusinessProfile) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Omit("Owners").Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("registration number already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindBusinessByID retrieves a business profile with its owners.
func (repo *businessRepository) FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error) {
	var businessM model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Owners").
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindBusinessesByOwner retrieves all business profiles a user owns.
func (repo *businessRepository) FindBusinessesByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.BusinessProfile, error) {
	var businessModels []*model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Owners").
		Joins("JOIN business_owners ON business_owners.business_id = business_profiles.id").
		Where("business_owners.user_id = ?", userID).
		Order("business_profiles.created_at DESC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by owner")
	}

	businesses := make([]*entity.BusinessProfile, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// UpdateBusiness modifies the business's own columns.
func (repo *businessRepository) UpdateBusiness(ctx context.Context, business *entity.BusinessProfile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("id = ?", business.ID).
		Updates(map[string]any{
			"name":          business.Name,
			"tax_id":        business.TaxID,
			"business_type": business.BusinessType,
			"industry":      business.Industry,
			"country":       business.Country,
			"email":         business.Email,
			"phone":         business.Phone,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// SetKYBVerified updates the derived verification flag.
func (repo *businessRepository) SetKYBVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessProfileModel{}).
		Where("id = ?", id).
		Update("is_kyb_verified", verified)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update verification flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// AddOwner links a user to the business.
func (repo *businessRepository) AddOwner(ctx context.Context, owner *entity.BusinessOwner) error {
	ownerM := fromBusinessOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOwner
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid business or user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add owner")
	}

	owner.ID = ownerM.ID
	owner.CreatedAt = ownerM.CreatedAt

	return nil
}

// FindOwner retrieves the ownership record linking a user to a business.
func (repo *businessRepository) FindOwner(ctx context.Context, businessID, userID uuid.UUID) (*entity.BusinessOwner, error) {
	var ownerM model.BusinessOwnerModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND user_id = ?", businessID, userID).
		First(&ownerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner")
	}

	return toBusinessOwnerDomain(&ownerM), nil
}

// RemoveOwner deletes the ownership record linking a user to a business.
func (repo *businessRepository) RemoveOwner(ctx context.Context, businessID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("business_id = ? AND user_id = ?", businessID, userID).
		Delete(&model.BusinessOwnerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// ClearPrimaryContact unsets the primary contact flag on all owners of the business.
func (repo *businessRepository) ClearPrimaryContact(ctx context.Context, businessID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessOwnerModel{}).
		Where("business_id = ? AND is_primary_contact = ?", businessID, true).
		Update("is_primary_contact", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear primary contact")
	}

	return nil
}

// AcquireBusinessLock takes a row-level lock on the business for the duration
// of the current transaction.
func (repo *businessRepository) AcquireBusinessLock(ctx context.Context, id uuid.UUID) error {
	var businessM model.BusinessProfileModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to lock business row")
	}

	return nil
}

// --- Mappers between persistence models and domain entities ---

func toBusinessDomain(businessM *model.BusinessProfileModel) *entity.BusinessProfile {
	business := &entity.BusinessProfile{
		ID:                 businessM.ID,
		Name:               businessM.Name,
		RegistrationNumber: businessM.RegistrationNumber,
		TaxID:              businessM.TaxID,
		BusinessType:       businessM.BusinessType,
		Industry:           businessM.Industry,
		Country:            businessM.Country,
		Email:              businessM.Email,
		Phone:              businessM.Phone,
		IsKYBVerified:      businessM.IsKYBVerified,
		CreatedAt:          businessM.CreatedAt,
		UpdatedAt:          businessM.UpdatedAt,
	}

	for _, ownerM := range businessM.Owners {
		business.Owners = append(business.Owners, toBusinessOwnerDomain(ownerM))
	}

	return business
}

func fromBusinessDomain(business *entity.BusinessProfile) *model.BusinessProfileModel {
	return &model.BusinessProfileModel{
		ID:                 business.ID,
		Name:               business.Name,
		RegistrationNumber: business.RegistrationNumber,
		TaxID:              business.TaxID,
		BusinessType:       business.BusinessType,
		Industry:           business.Industry,
		Country:            business.Country,
		Email:              business.Email,
		Phone:              business.Phone,
		IsKYBVerified:      business.IsKYBVerified,
	}
}

func toBusinessOwnerDomain(ownerM *model.BusinessOwnerModel) *entity.BusinessOwner {
	return &entity.BusinessOwner{
		ID:                  ownerM.ID,
		BusinessID:          ownerM.BusinessID,
		UserID:              ownerM.UserID,
		OwnershipType:       entity.OwnershipType(ownerM.OwnershipType),
		OwnershipPercentage: ownerM.OwnershipPercentage,
		IsPrimaryContact:    ownerM.IsPrimaryContact,
		CreatedAt:           ownerM.CreatedAt,
	}
}

func fromBusinessOwnerDomain(owner *entity.BusinessOwner) *model.BusinessOwnerModel {
	return &model.BusinessOwnerModel{
		ID:                  owner.ID,
		BusinessID:          owner.BusinessID,
		UserID:              owner.UserID,
		OwnershipType:       string(owner.OwnershipType),
		OwnershipPercentage: owner.OwnershipPercentage,
		IsPrimaryContact:    owner.IsPrimaryContact,
	}
}
