package entity

import "github.com/google/uuid"

// RequirementContext is the input to document requirement resolution: who
// the documents are for, on which verification axis, holding which roles.
type RequirementContext struct {
	AccountType AccountType
	ForBusiness bool // True for KYB submissions and business accounts.
	Roles       []string
}

// SubmissionContext builds the requirement context for a submission. The
// axis follows the submission itself: a KYB submission is on the business
// axis regardless of the creating user's account type.
func SubmissionContext(sub *KYCSubmission, accountType AccountType, roles []string) RequirementContext {
	return RequirementContext{
		AccountType: accountType,
		ForBusiness: sub.IsKYB() || accountType == AccountTypeBusiness,
		Roles:       roles,
	}
}

// RequiredDocumentTypes resolves the set of document types the given
// context must supply. It is a pure function of the catalog and the context
// at call time: callers re-resolve at every check point instead of caching
// a snapshot, so rule changes made after a submission was created still
// apply at submit-for-review time.
//
// A type is required when it is active, marked required, belongs to the
// context's axis, and either carries no role restriction or intersects the
// context's roles.
func RequiredDocumentTypes(catalog []*DocumentType, rctx RequirementContext) []*DocumentType {
	required := make([]*DocumentType, 0, len(catalog))
	for _, dt := range catalog {
		if !dt.IsActive || !dt.IsRequired {
			continue
		}
		if !dt.AppliesToAxis(rctx.ForBusiness) {
			continue
		}
		if !dt.MatchesRoles(rctx.Roles) {
			continue
		}
		required = append(required, dt)
	}

	return required
}

// ApplicableDocumentTypes resolves every active type the context may
// upload, required or not. Optional extra documents are allowed as long as
// they are type-applicable.
func ApplicableDocumentTypes(catalog []*DocumentType, rctx RequirementContext) []*DocumentType {
	applicable := make([]*DocumentType, 0, len(catalog))
	for _, dt := range catalog {
		if !dt.IsActive {
			continue
		}
		if !dt.AppliesToAxis(rctx.ForBusiness) {
			continue
		}
		if !dt.MatchesRoles(rctx.Roles) {
			continue
		}
		applicable = append(applicable, dt)
	}

	return applicable
}

// MissingTypeNames returns the names of required types not present in the
// attached set, in catalog order.
func MissingTypeNames(required []*DocumentType, attached map[uuid.UUID]bool) []string {
	missing := make([]string, 0, len(required))
	for _, dt := range required {
		if !attached[dt.ID] {
			missing = append(missing, dt.Name)
		}
	}

	return missing
}
