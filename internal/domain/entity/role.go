// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the permission level a user can hold in the system.
// Roles form a flat set, not a hierarchy; authorization decisions are made
// by the policy package, never by comparing roles to each other.
type Role string

const (
	// RoleGuest indicates an unauthenticated caller.
	RoleGuest Role = "guest"
	// RoleUser indicates a regular registered user.
	RoleUser Role = "user"
	// RoleOwner indicates a user who manages one or more businesses.
	RoleOwner Role = "owner"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
