// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountType distinguishes personal accounts from business-operated accounts.
// It decides which document types apply to the user's personal submissions.
type AccountType string

const (
	// AccountTypeIndividual is a personal account verified through KYC.
	AccountTypeIndividual AccountType = "individual"
	// AccountTypeBusiness is an account operated on behalf of a company.
	AccountTypeBusiness AccountType = "business"
)

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeIndividual, AccountTypeBusiness:
		return true
	default:
		return false
	}
}

// User is the core identity in the system.
//
// IsKYCVerified is derived state: it is written exclusively by the
// verification status recomputation after submission or document mutations,
// never set directly by a client request.
type User struct {
	ID              uuid.UUID // The unique identifier for the user.
	Email           string    // Primary email, used as the login identifier.
	Name            string    // Display name.
	Roles           []Role    // Zero or more admin-managed roles.
	IsStaff         bool      // Staff accounts carry admin capability regardless of roles.
	IsEmailVerified bool      // Set after a successful email verification token redemption.
	IsKYCVerified   bool      // Derived flag, owned by the status aggregator.
	Profile         *Profile  // Always present; created atomically at registration.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile holds per-user account settings. Every user has exactly one
// profile for its lifetime.
type Profile struct {
	UserID      uuid.UUID
	AccountType AccountType
	Phone       string
	Country     string
	UpdatedAt   time.Time
}

// RoleNames returns the user's role names for capability computation.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}

	return names
}

// IsAdmin reports whether the user carries admin capability, either via the
// Admin role or the staff flag.
func (u *User) IsAdmin() bool {
	if u.IsStaff {
		return true
	}
	for _, r := range u.Roles {
		if r.Name == RoleAdmin {
			return true
		}
	}

	return false
}
