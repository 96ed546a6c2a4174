// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Well-known role names. Roles themselves are admin-managed rows, so this
// list is not exhaustive; these are the names the platform reasons about.
const (
	RoleAdmin    = "Admin"
	RoleBuyer    = "Buyer"
	RoleSeller   = "Seller"
	RoleOperator = "Operator"
)

// Role is an admin-managed named tag. Users hold zero or more roles, and
// document types may restrict themselves to a set of roles.
type Role struct {
	ID          uuid.UUID
	Name        string // Unique.
	Description string
	CreatedAt   time.Time
}

// Capabilities is the per-request capability set, computed once from the
// access token claims and passed explicitly. Handlers and usecases never
// re-derive it from storage on every check.
type Capabilities struct {
	UserID  uuid.UUID
	Roles   []string
	IsAdmin bool
}

// HasRole checks if the capability set contains a specific role name.
func (c Capabilities) HasRole(name string) bool {
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}

	return false
}

// rolesIntersect reports whether any name in a appears in b.
func rolesIntersect(a []string, b []Role) bool {
	for _, name := range a {
		for _, r := range b {
			if r.Name == name {
				return true
			}
		}
	}

	return false
}
