package policy

import (
	"testing"

	"github.com/google/uuid"

	"directory/internal/domain/entity"
)

func admin() Caller {
	return Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}
}

func owner(id uuid.UUID) Caller {
	return Caller{UserID: id, Roles: entity.Roles{entity.RoleUser, entity.RoleOwner}}
}

func user(id uuid.UUID) Caller {
	return Caller{UserID: id, Roles: entity.Roles{entity.RoleUser}}
}

func TestCallerIsAnonymous(t *testing.T) {
	t.Parallel()

	if !(Caller{}).IsAnonymous() {
		t.Fatal("zero Caller should be anonymous")
	}
	if user(uuid.New()).IsAnonymous() {
		t.Fatal("authenticated caller should not be anonymous")
	}
}

func TestCanCreateBusiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		caller  Caller
		allowed bool
	}{
		{name: "owner may submit", caller: owner(uuid.New()), allowed: true},
		{name: "admin may submit", caller: admin(), allowed: true},
		{name: "regular user may not", caller: user(uuid.New()), allowed: false},
		{name: "anonymous may not", caller: Caller{}, allowed: false},
		{name: "banned owner may not", caller: Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleOwner}, Banned: true}, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CanCreateBusiness(tt.caller); got != tt.allowed {
				t.Fatalf("CanCreateBusiness = %v, want %v", got, tt.allowed)
			}
		})
	}
}

func TestCanEditBusiness(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	business := &entity.Business{OwnerID: ownerID}

	tests := []struct {
		name    string
		caller  Caller
		allowed bool
	}{
		{name: "owning owner", caller: owner(ownerID), allowed: true},
		{name: "other owner", caller: owner(uuid.New()), allowed: false},
		{name: "admin", caller: admin(), allowed: true},
		{name: "regular user", caller: user(ownerID), allowed: false},
		{name: "banned owning owner", caller: Caller{UserID: ownerID, Roles: entity.Roles{entity.RoleOwner}, Banned: true}, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CanEditBusiness(tt.caller, business); got != tt.allowed {
				t.Fatalf("CanEditBusiness = %v, want %v", got, tt.allowed)
			}
		})
	}
}

func TestCanSeeBusiness(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	approved := &entity.Business{OwnerID: ownerID, Status: entity.BusinessStatusApproved}
	pending := &entity.Business{OwnerID: ownerID, Status: entity.BusinessStatusPending}

	tests := []struct {
		name     string
		caller   Caller
		business *entity.Business
		allowed  bool
	}{
		{name: "anonymous sees approved", caller: Caller{}, business: approved, allowed: true},
		{name: "anonymous cannot see pending", caller: Caller{}, business: pending, allowed: false},
		{name: "stranger cannot see pending", caller: user(uuid.New()), business: pending, allowed: false},
		{name: "owning owner sees pending", caller: owner(ownerID), business: pending, allowed: true},
		{name: "other owner cannot see pending", caller: owner(uuid.New()), business: pending, allowed: false},
		{name: "admin sees pending", caller: admin(), business: pending, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CanSeeBusiness(tt.caller, tt.business); got != tt.allowed {
				t.Fatalf("CanSeeBusiness = %v, want %v", got, tt.allowed)
			}
		})
	}
}

func TestCanEditReview(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	review := &entity.Review{UserID: authorID}

	tests := []struct {
		name    string
		caller  Caller
		allowed bool
	}{
		{name: "author", caller: user(authorID), allowed: true},
		{name: "other user", caller: user(uuid.New()), allowed: false},
		{name: "admin is not the author", caller: admin(), allowed: false},
		{name: "anonymous", caller: Caller{}, allowed: false},
		{name: "banned author", caller: Caller{UserID: authorID, Roles: entity.Roles{entity.RoleUser}, Banned: true}, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CanEditReview(tt.caller, review); got != tt.allowed {
				t.Fatalf("CanEditReview = %v, want %v", got, tt.allowed)
			}
		})
	}
}

func TestCanDeleteReview(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	review := &entity.Review{UserID: authorID}

	if !CanDeleteReview(user(authorID), review) {
		t.Fatal("author should be able to delete their review")
	}
	if !CanDeleteReview(admin(), review) {
		t.Fatal("admin should be able to delete any review")
	}
	if CanDeleteReview(user(uuid.New()), review) {
		t.Fatal("other users should not delete the review")
	}
}

func TestCanRespondToReview(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	business := &entity.Business{OwnerID: ownerID}

	if !CanRespondToReview(owner(ownerID), business) {
		t.Fatal("owning owner should manage the response slot")
	}
	if !CanRespondToReview(admin(), business) {
		t.Fatal("admin should manage any response slot")
	}
	if CanRespondToReview(owner(uuid.New()), business) {
		t.Fatal("other owners should not manage the response slot")
	}
	if CanRespondToReview(user(ownerID), business) {
		t.Fatal("a plain user should not manage the response slot even when IDs match")
	}
}

func TestAdminOnlyCapabilities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(Caller) bool
	}{
		{name: "CanModerateBusiness", fn: CanModerateBusiness},
		{name: "CanDeleteBusiness", fn: CanDeleteBusiness},
		{name: "CanManageCategories", fn: CanManageCategories},
		{name: "CanModerateUsers", fn: CanModerateUsers},
		{name: "CanViewAdminStats", fn: CanViewAdminStats},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !tt.fn(admin()) {
				t.Fatalf("%s should allow admins", tt.name)
			}
			if tt.fn(owner(uuid.New())) {
				t.Fatalf("%s should reject owners", tt.name)
			}
			if tt.fn(user(uuid.New())) {
				t.Fatalf("%s should reject regular users", tt.name)
			}
			banned := Caller{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}, Banned: true}
			if tt.fn(banned) {
				t.Fatalf("%s should reject banned admins", tt.name)
			}
		})
	}
}
