// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents a capability tag a platform account can hold.
// Each role carries its own lifecycle status, independent of the account status.
type Role string

const (
	// RoleCustomer indicates a regular ordering customer.
	RoleCustomer Role = "customer"
	// RoleRestaurant indicates a restaurant partner account.
	RoleRestaurant Role = "restaurant"
	// RoleDriver indicates a delivery driver account.
	RoleDriver Role = "driver"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleDriver:
		return true
	default:
		return false
	}
}

// RequiresApproval reports whether the role goes through an admin approval
// flow. Customers are activated on registration; restaurants and drivers
// start out pending until an admin approves them.
func (r Role) RequiresApproval() bool {
	return r == RoleRestaurant || r == RoleDriver
}

// ReinstatedStatus returns the status a role returns to after a suspension
// is lifted. Customers go straight back to active; roles that require
// approval must pass through the approval queue again.
func (r Role) ReinstatedStatus() Status {
	if r == RoleCustomer {
		return StatusActive
	}

	return StatusPending
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
