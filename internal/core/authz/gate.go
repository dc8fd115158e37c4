// Package authz classifies a session into a permission tier. The gate is a
// pure function of session data: no I/O, no caching, no mutation. Callers
// re-evaluate it on every render so it can never go stale.
package authz

import "github.com/landmarket/landmarket-cli/internal/core/domain"

// Tier is the permission level derived from a session.
type Tier string

const (
	TierAnonymous Tier = "anonymous"
	TierUser      Tier = "user"
	TierAdmin     Tier = "admin"
)

// Classify maps a session to its tier. Total: every session, including the
// zero value, resolves to exactly one tier. Only token presence and role
// equality participate; Loading and Err do not.
func Classify(s domain.Session) Tier {
	if !s.Authenticated() {
		return TierAnonymous
	}
	if s.Role == domain.RoleAdmin {
		return TierAdmin
	}
	return TierUser
}

// CanUseWishlist reports whether the tier may read and modify a wishlist.
func (t Tier) CanUseWishlist() bool {
	return t == TierUser || t == TierAdmin
}

// CanManageListings reports whether the tier may create and edit its own
// listings.
func (t Tier) CanManageListings() bool {
	return t == TierUser || t == TierAdmin
}

// CanAdministerUsers reports whether the tier may edit other accounts.
func (t Tier) CanAdministerUsers() bool {
	return t == TierAdmin
}

func (t Tier) String() string { return string(t) }
