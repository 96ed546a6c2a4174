package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnershipType describes the relationship between an owner and a business.
type OwnershipType string

const (
	// OwnershipTypeOwner is a direct owner of the business.
	OwnershipTypeOwner OwnershipType = "owner"
	// OwnershipTypeDirector sits on the business's board.
	OwnershipTypeDirector OwnershipType = "director"
	// OwnershipTypeShareholder holds equity without operating the business.
	OwnershipTypeShareholder OwnershipType = "shareholder"
	// OwnershipTypeManager operates the business without holding equity.
	OwnershipTypeManager OwnershipType = "manager"
)

// IsValid checks if the OwnershipType is a valid value.
func (t OwnershipType) IsValid() bool {
	switch t {
	case OwnershipTypeOwner, OwnershipTypeDirector, OwnershipTypeShareholder, OwnershipTypeManager:
		return true
	default:
		return false
	}
}

// BusinessProfile is an independently addressable business entity verified
// through KYB. IsKYBVerified follows the same derivation contract as the
// user's IsKYCVerified flag, scoped to the business's submissions.
type BusinessProfile struct {
	ID                 uuid.UUID
	Name               string // Legal business name.
	RegistrationNumber string
	TaxID              string
	BusinessType       string
	Industry           string
	Country            string
	Email              string
	Phone              string
	IsKYBVerified      bool // Derived flag, owned by the status aggregator.
	Owners             []*BusinessOwner
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BusinessOwner links a user to a business they may act for. The
// (business, user) pair is unique. At most one owner per business carries
// IsPrimaryContact; the invariant is enforced by the mutator, not the
// storage layer.
type BusinessOwner struct {
	ID                  uuid.UUID
	BusinessID          uuid.UUID
	UserID              uuid.UUID
	OwnershipType       OwnershipType
	OwnershipPercentage *float64 // Optional, [0, 100].
	IsPrimaryContact    bool
	CreatedAt           time.Time
}

// OwnerFor returns the ownership record for the given user, or nil.
func (b *BusinessProfile) OwnerFor(userID uuid.UUID) *BusinessOwner {
	for _, o := range b.Owners {
		if o.UserID == userID {
			return o
		}
	}

	return nil
}

// IsPrimaryContactOwner reports whether the given user is the business's
// primary contact.
func (b *BusinessProfile) IsPrimaryContactOwner(userID uuid.UUID) bool {
	o := b.OwnerFor(userID)

	return o != nil && o.IsPrimaryContact
}
