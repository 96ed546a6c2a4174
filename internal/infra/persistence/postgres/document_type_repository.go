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
)

// documentTypeRepository implements the repository.DocumentTypeRepository interface.
type documentTypeRepository struct {
	db *gorm.DB
}

// NewDocumentTypeRepository is the constructor for documentTypeRepository.
func NewDocumentTypeRepository(db *gorm.DB) repository.DocumentTypeRepository {
	return &documentTypeRepository{
		db: db,
	}
}

// FindByID retrieves a document type with its required roles.
func (repo *documentTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DocumentType, error) {
	var docTypeM model.DocumentTypeModel

	if err := repo.db.WithContext(ctx).
		Preload("RequiredRoles").
		Where("id = ?", id).
		First(&docTypeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find document type by id")
	}

	return toDocumentTypeDomain(&docTypeM), nil
}

// FindActive retrieves the active catalog with required roles.
func (repo *documentTypeRepository) FindActive(ctx context.Context) ([]*entity.DocumentType, error) {
	var docTypeModels []*model.DocumentTypeModel

	if err := repo.db.WithContext(ctx).
		Preload("RequiredRoles").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&docTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active document types")
	}

	return toDocumentTypeDomains(docTypeModels), nil
}

// FindAll retrieves the full catalog including inactive types.
func (repo *documentTypeRepository) FindAll(ctx context.Context) ([]*entity.DocumentType, error) {
	var docTypeModels []*model.DocumentTypeModel

	if err := repo.db.WithContext(ctx).
		Preload("RequiredRoles").
		Order("name ASC").
		Find(&docTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find document types")
	}

	return toDocumentTypeDomains(docTypeModels), nil
}

// Create persists a new document type and links its required roles by name.
func (repo *documentTypeRepository) Create(ctx context.Context, docType *entity.DocumentType) error {
	docTypeM := fromDocumentTypeDomain(docType)

	roleModels, err := repo.resolveRoles(ctx, docType.RequiredRoles)
	if err != nil {
		return err
	}
	docTypeM.RequiredRoles = roleModels

	if err := repo.db.WithContext(ctx).Omit("RequiredRoles.*").Create(docTypeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("document type name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document type")
	}

	docType.ID = docTypeM.ID
	docType.CreatedAt = docTypeM.CreatedAt
	docType.UpdatedAt = docTypeM.UpdatedAt

	return nil
}

// Update modifies a document type and replaces its required role links.
func (repo *documentTypeRepository) Update(ctx context.Context, docType *entity.DocumentType) error {
	docTypeM := fromDocumentTypeDomain(docType)

	roleModels, err := repo.resolveRoles(ctx, docType.RequiredRoles)
	if err != nil {
		return err
	}

	// Struct-based update so the JSON serializer applies to allowed_file.
	result := repo.db.WithContext(ctx).
		Model(&model.DocumentTypeModel{ID: docType.ID}).
		Select("name", "description", "applicable_to", "is_active", "is_required", "max_file_size_mb", "allowed_file").
		Updates(docTypeM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("document type name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update document type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentTypeNotFound
	}

	err = repo.db.WithContext(ctx).
		Model(&model.DocumentTypeModel{ID: docType.ID}).
		Omit("RequiredRoles.*").
		Association("RequiredRoles").
		Replace(roleModels)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update required roles")
	}

	return nil
}

// Delete removes a document type. The RESTRICT foreign key from documents
// surfaces as ErrDocumentTypeReferenced.
func (repo *documentTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DocumentTypeModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDocumentTypeReferenced
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete document type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentTypeNotFound
	}

	return nil
}

// resolveRoles maps role names to their stored rows.
func (repo *documentTypeRepository) resolveRoles(ctx context.Context, roles []entity.Role) ([]*model.RoleModel, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}

	var roleModels []*model.RoleModel
	if err := repo.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve roles")
	}
	if len(roleModels) != len(names) {
		return nil, repository.ErrRoleNotFound
	}

	return roleModels, nil
}

// --- Mappers between persistence models and domain entities ---

func toDocumentTypeDomain(docTypeM *model.DocumentTypeModel) *entity.DocumentType {
	docType := &entity.DocumentType{
		ID:            docTypeM.ID,
		Name:          docTypeM.Name,
		Description:   docTypeM.Description,
		ApplicableTo:  entity.Applicability(docTypeM.ApplicableTo),
		IsActive:      docTypeM.IsActive,
		IsRequired:    docTypeM.IsRequired,
		MaxFileSizeMB: docTypeM.MaxFileSizeMB,
		AllowedFile:   docTypeM.AllowedFile,
		CreatedAt:     docTypeM.CreatedAt,
		UpdatedAt:     docTypeM.UpdatedAt,
	}

	for _, roleM := range docTypeM.RequiredRoles {
		docType.RequiredRoles = append(docType.RequiredRoles, toRoleDomain(roleM))
	}

	return docType
}

func toDocumentTypeDomains(docTypeModels []*model.DocumentTypeModel) []*entity.DocumentType {
	docTypes := make([]*entity.DocumentType, 0, len(docTypeModels))
	for _, docTypeM := range docTypeModels {
		docTypes = append(docTypes, toDocumentTypeDomain(docTypeM))
	}

	return docTypes
}

func fromDocumentTypeDomain(docType *entity.DocumentType) *model.DocumentTypeModel {
	return &model.DocumentTypeModel{
		ID:            docType.ID,
		Name:          docType.Name,
		Description:   docType.Description,
		ApplicableTo:  string(docType.ApplicableTo),
		IsActive:      docType.IsActive,
		IsRequired:    docType.IsRequired,
		MaxFileSizeMB: docType.MaxFileSizeMB,
		AllowedFile:   docType.AllowedFile,
	}
}
