package entity

import "slices"

// Role is the access level carried in an account and in its access tokens.
type Role string

const (
	RoleBusiness Role = "business" // owns one business profile and its applications
	RoleAdmin    Role = "admin"    // maintains the catalog and reviews applications
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the portal roles.
func (r Role) IsValid() bool {
	return r == RoleBusiness || r == RoleAdmin
}

// Roles is the role set of an authenticated caller.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings returns the token claim form of the set.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings reads a token claim, dropping unknown roles so a forged claim grants nothing.
func RolesFromStrings(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r := Role(s); r.IsValid() {
			roles = append(roles, r)
		}
	}

	return roles
}
