// Package policy centralizes every authorization decision as a capability
// predicate keyed on (roles, resource ownership). Roles are a flat set;
// nothing here treats ADMIN as "OWNER plus more" structurally. ADMIN simply
// passes the predicates it is listed in.
package policy

import (
	"github.com/google/uuid"

	"directory/internal/domain/entity"
)

// Caller is the authenticated principal making a request, as decoded from
// the access token. A zero Caller represents an anonymous guest.
type Caller struct {
	UserID uuid.UUID
	Roles  entity.Roles
	Banned bool
}

// IsAnonymous reports whether the caller carries no authenticated identity.
func (c Caller) IsAnonymous() bool {
	return c.UserID == uuid.Nil
}

// isAdmin is unexported on purpose; handlers and services go through the
// named capability predicates below.
func (c Caller) isAdmin() bool {
	return !c.Banned && c.Roles.Contains(entity.RoleAdmin)
}

func (c Caller) isActiveOwner() bool {
	return !c.Banned && c.Roles.Contains(entity.RoleOwner)
}

// CanCreateBusiness reports whether the caller may submit a new listing.
func CanCreateBusiness(c Caller) bool {
	return c.isActiveOwner() || c.isAdmin()
}

// CanModerateBusiness reports whether the caller may approve or reject listings.
func CanModerateBusiness(c Caller) bool {
	return c.isAdmin()
}

// CanEditBusiness reports whether the caller may change a business's content
// fields. Owners are scoped to businesses they own.
func CanEditBusiness(c Caller, b *entity.Business) bool {
	if c.isAdmin() {
		return true
	}

	return c.isActiveOwner() && b.OwnerID == c.UserID
}

// CanDeactivateBusiness reports whether the caller may take an approved
// listing off the public directory.
func CanDeactivateBusiness(c Caller, b *entity.Business) bool {
	return CanEditBusiness(c, b)
}

// CanDeleteBusiness reports whether the caller may remove a listing entirely.
func CanDeleteBusiness(c Caller) bool {
	return c.isAdmin()
}

// CanSeeBusiness reports whether the caller may read a business regardless
// of moderation state. Everyone sees APPROVED listings.
func CanSeeBusiness(c Caller, b *entity.Business) bool {
	if b.IsPubliclyVisible() {
		return true
	}
	if c.isAdmin() {
		return true
	}

	return c.isActiveOwner() && b.OwnerID == c.UserID
}

// CanEditReview reports whether the caller may mutate a review's content.
// Only the author may edit; admins moderate by deletion, not edits.
func CanEditReview(c Caller, r *entity.Review) bool {
	return !c.Banned && !c.IsAnonymous() && r.UserID == c.UserID
}

// CanDeleteReview reports whether the caller may remove a review.
func CanDeleteReview(c Caller, r *entity.Review) bool {
	if c.isAdmin() {
		return true
	}

	return !c.Banned && !c.IsAnonymous() && r.UserID == c.UserID
}

// CanRespondToReview reports whether the caller may manage the owner
// response slot of a review belonging to business b.
func CanRespondToReview(c Caller, b *entity.Business) bool {
	if c.isAdmin() {
		return true
	}

	return c.isActiveOwner() && b.OwnerID == c.UserID
}

// CanManageCategories reports whether the caller may create, update or
// delete categories.
func CanManageCategories(c Caller) bool {
	return c.isAdmin()
}

// CanModerateUsers reports whether the caller may list users and toggle bans.
func CanModerateUsers(c Caller) bool {
	return c.isAdmin()
}

// CanViewAdminStats reports whether the caller may read platform statistics.
func CanViewAdminStats(c Caller) bool {
	return c.isAdmin()
}

// CanViewOwnerStats reports whether the caller may read owner dashboard
// statistics for their own businesses.
func CanViewOwnerStats(c Caller) bool {
	return c.isActiveOwner() || c.isAdmin()
}
