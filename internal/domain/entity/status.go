// Package entity contains the core business objects of the project.
package entity

// Status represents the lifecycle state of an account or of a single role.
type Status string

const (
	// StatusActive indicates a fully usable account or role.
	StatusActive Status = "active"
	// StatusPending indicates the account or role is awaiting admin approval.
	StatusPending Status = "pending"
	// StatusInactive indicates a rejected or deactivated role.
	StatusInactive Status = "inactive"
	// StatusSuspended indicates a temporarily disabled account or role.
	StatusSuspended Status = "suspended"
	// StatusBanned indicates a permanently disabled account or role.
	StatusBanned Status = "banned"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPending, StatusInactive, StatusSuspended, StatusBanned:
		return true
	default:
		return false
	}
}
