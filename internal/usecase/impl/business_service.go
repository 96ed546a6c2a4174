// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "vouch/internal/delivery/context"
	"vouch/internal/domain/entity"
	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/repository"
	"vouch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBusiness registers a business profile and makes the creator its
// primary contact in the same transaction.
func (srv *businessService) CreateBusiness(ctx context.Context, input *usecase.CreateBusinessInput) (*entity.BusinessProfile, error) {
	srv.log(ctx).Info("Creating business",
		slog.String("name", input.Name), slog.Any("creatorID", input.CreatorID))

	if input.Name == "" || input.RegistrationNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and registration number are required")
	}

	var business *entity.BusinessProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		fresh := &entity.BusinessProfile{
			ID:                 uuid.New(),
			Name:               input.Name,
			RegistrationNumber: input.RegistrationNumber,
			TaxID:              input.TaxID,
			BusinessType:       input.BusinessType,
			Industry:           input.Industry,
			Country:            input.Country,
			Email:              input.Email,
			Phone:              input.Phone,
		}
		if err := businessRepo.CreateBusiness(ctx, fresh); err != nil {
			return errors.Wrap(err, "failed to create business")
		}

		creator := &entity.BusinessOwner{
			ID:               uuid.New(),
			BusinessID:       fresh.ID,
			UserID:           input.CreatorID,
			OwnershipType:    entity.OwnershipTypeOwner,
			IsPrimaryContact: true,
		}
		if err := businessRepo.AddOwner(ctx, creator); err != nil {
			return errors.Wrap(err, "failed to add creator as owner")
		}
		fresh.Owners = []*entity.BusinessOwner{creator}
		business = fresh

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute business creation")
	}

	srv.log(ctx).Debug("Business created", slog.Any("businessID", business.ID))

	return business, nil
}

// GetBusiness retrieves a business the actor may see.
func (srv *businessService) GetBusiness(ctx context.Context, actor *entity.Capabilities, businessID uuid.UUID) (*entity.BusinessProfile, error) {
	var business *entity.BusinessProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BusinessRepo().FindBusinessByID(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound.WrapMessage("business not found")
			}

			return errors.Wrap(err, "failed to find business")
		}
		if !actor.IsAdmin && found.OwnerFor(actor.UserID) == nil {
			return domainerrors.ErrNotBusinessOwner.WrapMessage("actor does not own this business")
		}
		business = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get business")
	}

	return business, nil
}

// ListOwnedBusinesses retrieves the businesses the user owns.
func (srv *businessService) ListOwnedBusinesses(ctx context.Context, userID uuid.UUID) ([]*entity.BusinessProfile, error) {
	var businesses []*entity.BusinessProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.BusinessRepo().FindBusinessesByOwner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list businesses")
		}
		businesses = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned businesses")
	}

	return businesses, nil
}

// AddOwner links a user to the business. Runs under the business row lock so
// the at-most-one-primary invariant holds under concurrent calls.
func (srv *businessService) AddOwner(ctx context.Context, actor *entity.Capabilities, input *usecase.AddOwnerInput) (*entity.BusinessOwner, error) {
	srv.log(ctx).Info("Adding business owner",
		slog.Any("businessID", input.BusinessID), slog.Any("userID", input.UserID))

	if !input.OwnershipType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid ownership type")
	}
	if input.OwnershipPercentage != nil && (*input.OwnershipPercentage < 0 || *input.OwnershipPercentage > 100) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("ownership percentage must be between 0 and 100")
	}

	var owner *entity.BusinessOwner
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		if err := businessRepo.AcquireBusinessLock(ctx, input.BusinessID); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound.WrapMessage("business not found")
			}

			return errors.Wrap(err, "failed to lock business")
		}

		business, err := businessRepo.FindBusinessByID(ctx, input.BusinessID)
		if err != nil {
			return errors.Wrap(err, "failed to find business")
		}
		if !actor.IsAdmin && !business.IsPrimaryContactOwner(actor.UserID) {
			return domainerrors.ErrNotPrimaryContact.WrapMessage("only the primary contact or an admin may add owners")
		}
		if business.OwnerFor(input.UserID) != nil {
			return domainerrors.ErrAlreadyOwner.WrapMessage("user already owns this business")
		}

		if _, err := repoFactory.UserRepo().FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.IsPrimaryContact {
			if err := businessRepo.ClearPrimaryContact(ctx, input.BusinessID); err != nil {
				return errors.Wrap(err, "failed to clear primary contact")
			}
		}

		fresh := &entity.BusinessOwner{
			ID:                  uuid.New(),
			BusinessID:          input.BusinessID,
			UserID:              input.UserID,
			OwnershipType:       input.OwnershipType,
			OwnershipPercentage: input.OwnershipPercentage,
			IsPrimaryContact:    input.IsPrimaryContact,
		}
		if err := businessRepo.AddOwner(ctx, fresh); err != nil {
			if errors.Is(err, repository.ErrDuplicateOwner) {
				return domainerrors.ErrAlreadyOwner.WrapMessage("user already owns this business")
			}

			return errors.Wrap(err, "failed to add owner")
		}
		owner = fresh

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute owner addition")
	}

	return owner, nil
}

// RemoveOwner unlinks a user from the business.
func (srv *businessService) RemoveOwner(ctx context.Context, actor *entity.Capabilities, businessID, userID uuid.UUID) error {
	srv.log(ctx).Info("Removing business owner",
		slog.Any("businessID", businessID), slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.BusinessRepo()

		if err := businessRepo.AcquireBusinessLock(ctx, businessID); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound.WrapMessage("business not found")
			}

			return errors.Wrap(err, "failed to lock business")
		}

		business, err := businessRepo.FindBusinessByID(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to find business")
		}
		if !actor.IsAdmin && !business.IsPrimaryContactOwner(actor.UserID) {
			return domainerrors.ErrNotPrimaryContact.WrapMessage("only the primary contact or an admin may remove owners")
		}
		if business.OwnerFor(userID) == nil {
			return domainerrors.ErrNotFound.WrapMessage("ownership record not found")
		}

		if err := businessRepo.RemoveOwner(ctx, businessID, userID); err != nil {
			return errors.Wrap(err, "failed to remove owner")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute owner removal")
	}

	return nil
}

// IsAuthorizedActor reports whether the actor may act for the business.
func (srv *businessService) IsAuthorizedActor(ctx context.Context, actor *entity.Capabilities, businessID uuid.UUID) (bool, error) {
	if actor.IsAdmin {
		return true, nil
	}

	authorized := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.BusinessRepo().FindOwner(ctx, businessID, actor.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrOwnerNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to check ownership")
		}
		authorized = true

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to check authorized actor")
	}

	return authorized, nil
}
