package impl

import (
	"context"
	"log/slog"

	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func validateDocumentTypeInput(input *usecase.DocumentTypeInput) error {
	if input.Name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("document type name is required")
	}
	if !input.ApplicableTo.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid applicability")
	}
	if input.MaxFileSizeMB <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("max file size must be positive")
	}

	return nil
}

func applyDocumentTypeInput(docType *entity.DocumentType, input *usecase.DocumentTypeInput) {
	docType.Name = input.Name
	docType.Description = input.Description
	docType.ApplicableTo = input.ApplicableTo
	docType.IsActive = input.IsActive
	docType.IsRequired = input.IsRequired
	docType.MaxFileSizeMB = input.MaxFileSizeMB
	docType.AllowedFile = input.AllowedFile

	docType.RequiredRoles = docType.RequiredRoles[:0]
	for _, name := range input.RequiredRoles {
		docType.RequiredRoles = append(docType.RequiredRoles, entity.Role{Name: name})
	}
}

// ListAllDocumentTypes returns the whole catalog, inactive entries included.
// Admin only.
func (srv *kycService) ListAllDocumentTypes(ctx context.Context, actor *entity.Capabilities) ([]*entity.DocumentType, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("catalog management requires admin")
	}

	var catalog []*entity.DocumentType
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.DocumentTypeRepo().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to load document type catalog")
		}
		catalog = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute catalog listing")
	}

	return catalog, nil
}

// CreateDocumentType adds a catalog entry. Admin only.
func (srv *kycService) CreateDocumentType(ctx context.Context, actor *entity.Capabilities, input *usecase.DocumentTypeInput) (*entity.DocumentType, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("catalog management requires admin")
	}
	if err := validateDocumentTypeInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating document type", slog.String("name", input.Name))

	docType := &entity.DocumentType{ID: uuid.New()}
	applyDocumentTypeInput(docType, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DocumentTypeRepo().Create(ctx, docType); err != nil {
			return errors.Wrap(err, "failed to create document type")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute document type creation")
	}

	return docType, nil
}

// UpdateDocumentType modifies a catalog entry. Admin only.
func (srv *kycService) UpdateDocumentType(ctx context.Context, actor *entity.Capabilities, typeID uuid.UUID, input *usecase.DocumentTypeInput) (*entity.DocumentType, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("catalog management requires admin")
	}
	if err := validateDocumentTypeInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Updating document type", slog.Any("typeID", typeID))

	var docType *entity.DocumentType
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		docTypeRepo := repoFactory.DocumentTypeRepo()

		found, err := docTypeRepo.FindByID(ctx, typeID)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentTypeNotFound) {
				return domainerrors.ErrDocumentTypeNotFound.WrapMessage("document type not found")
			}

			return errors.Wrap(err, "failed to find document type")
		}

		applyDocumentTypeInput(found, input)
		if err := docTypeRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update document type")
		}
		docType = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute document type update")
	}

	return docType, nil
}

// DeleteDocumentType removes an unreferenced catalog entry. Admin only.
func (srv *kycService) DeleteDocumentType(ctx context.Context, actor *entity.Capabilities, typeID uuid.UUID) error {
	if !actor.IsAdmin {
		return domainerrors.ErrForbidden.WrapMessage("catalog management requires admin")
	}

	srv.log(ctx).Info("Deleting document type", slog.Any("typeID", typeID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DocumentTypeRepo().Delete(ctx, typeID); err != nil {
			switch {
			case errors.Is(err, repository.ErrDocumentTypeNotFound):
				return domainerrors.ErrDocumentTypeNotFound.WrapMessage("document type not found")
			case errors.Is(err, repository.ErrDocumentTypeReferenced):
				return domainerrors.ErrDocumentTypeInUse.WrapMessage("deactivate the type instead of deleting it")
			default:
				return errors.Wrap(err, "failed to delete document type")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute document type deletion")
	}

	return nil
}
