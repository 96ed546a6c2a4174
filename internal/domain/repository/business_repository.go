// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when a business profile is not found.
	ErrBusinessNotFound = errors.New("business profile not found")
	// ErrOwnerNotFound is returned when an ownership record is not found.
	ErrOwnerNotFound = errors.New("business owner not found")
	// ErrDuplicateOwner is returned when linking a user who is already an owner of the business.
	ErrDuplicateOwner = errors.New("user is already an owner of this business")
)

// BusinessRepository defines the interface for business profile and ownership persistence.
type BusinessRepository interface {
	// CreateBusiness persists a new business profile.
	CreateBusiness(ctx context.Context, business *entity.BusinessProfile) error

	// FindBusinessByID retrieves a business profile by its unique ID, with owners preloaded.
	FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// FindBusinessesByOwner retrieves all business profiles a user owns.
	FindBusinessesByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.BusinessProfile, error)

	// UpdateBusiness modifies an existing business profile.
	UpdateBusiness(ctx context.Context, business *entity.BusinessProfile) error

	// SetKYBVerified updates the business's derived verification flag.
	SetKYBVerified(ctx context.Context, id uuid.UUID, verified bool) error

	// AddOwner links a user to the business with the given ownership details.
	AddOwner(ctx context.Context, owner *entity.BusinessOwner) error

	// FindOwner retrieves the ownership record linking a user to a business.
	FindOwner(ctx context.Context, businessID, userID uuid.UUID) (*entity.BusinessOwner, error)

	// RemoveOwner deletes the ownership record linking a user to a business.
	RemoveOwner(ctx context.Context, businessID, userID uuid.UUID) error

	// ClearPrimaryContact unsets the primary contact flag on all owners of the business.
	ClearPrimaryContact(ctx context.Context, businessID uuid.UUID) error

	// AcquireBusinessLock takes a row-level lock on the business for the duration
	// of the current transaction. Serializes owner mutations and KYB submission
	// creation for the same business.
	AcquireBusinessLock(ctx context.Context, id uuid.UUID) error
}
