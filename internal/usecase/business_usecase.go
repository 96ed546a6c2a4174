// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBusinessInput defines the data required to register a business profile.
type CreateBusinessInput struct {
	CreatorID          uuid.UUID
	Name               string
	RegistrationNumber string
	TaxID              string
	BusinessType       string
	Industry           string
	Country            string
	Email              string
	Phone              string
}

// AddOwnerInput defines the data required to link a user to a business.
type AddOwnerInput struct {
	BusinessID          uuid.UUID
	UserID              uuid.UUID
	OwnershipType       entity.OwnershipType
	OwnershipPercentage *float64
	IsPrimaryContact    bool
}

// BusinessUsecase defines the interface for the business ownership registry.
type BusinessUsecase interface {
	// CreateBusiness registers a business profile. The creator becomes an owner
	// and primary contact in the same transaction.
	CreateBusiness(ctx context.Context, input *CreateBusinessInput) (*entity.BusinessProfile, error)

	// GetBusiness retrieves a business profile visible to the actor.
	GetBusiness(ctx context.Context, actor *entity.Capabilities, businessID uuid.UUID) (*entity.BusinessProfile, error)

	// ListOwnedBusinesses retrieves the businesses the user owns.
	ListOwnedBusinesses(ctx context.Context, userID uuid.UUID) ([]*entity.BusinessProfile, error)

	// AddOwner links a user to the business. Only an admin or the primary
	// contact may add owners.
	AddOwner(ctx context.Context, actor *entity.Capabilities, input *AddOwnerInput) (*entity.BusinessOwner, error)

	// RemoveOwner unlinks a user from the business. Only an admin or the
	// primary contact may remove owners.
	RemoveOwner(ctx context.Context, actor *entity.Capabilities, businessID, userID uuid.UUID) error

	// IsAuthorizedActor reports whether the actor may act for the business:
	// admins always, otherwise any registered owner.
	IsAuthorizedActor(ctx context.Context, actor *entity.Capabilities, businessID uuid.UUID) (bool, error)
}
