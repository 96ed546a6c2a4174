// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vouch/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when creating a user with an email that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrRoleNotFound is returned when a named role does not exist.
	ErrRoleNotFound = errors.New("role not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with profile and roles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and its profile to the storage.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored password hash for a user.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// PasswordHash retrieves the stored password hash for credential checks.
	PasswordHash(ctx context.Context, id uuid.UUID) (string, error)

	// SetEmailVerified marks the user's email address as verified.
	SetEmailVerified(ctx context.Context, id uuid.UUID) error

	// SetKYCVerified updates the user's derived verification flag.
	SetKYCVerified(ctx context.Context, id uuid.UUID, verified bool) error

	// AssignRole attaches a named role to the user. Assigning an already-held role is a no-op.
	AssignRole(ctx context.Context, id uuid.UUID, roleName string) error

	// AcquireUserLock takes a row-level lock on the user for the duration of the
	// current transaction. Serializes submission creation and status aggregation
	// for the same user.
	AcquireUserLock(ctx context.Context, id uuid.UUID) error
}
