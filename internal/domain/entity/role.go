// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege level a profile grants inside the canteen.
// It is always derived from the stored profile, never from token claims.
type Role string

const (
	// RoleCustomer indicates a regular, non-privileged customer.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates a canteen administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleOf returns the role granted by the given profile. A missing profile grants no privilege.
func RoleOf(profile *UserProfile) Role {
	if profile != nil && profile.AdminCheck {
		return RoleAdmin
	}

	return RoleCustomer
}
