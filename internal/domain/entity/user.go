// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is this service's view of a platform account. The record itself is
// owned by the remote auth service; warden only reads it and submits partial
// updates, it never creates or destroys one.
type User struct {
	ID     string `json:"id"`     // Opaque identifier assigned by the remote store.
	Name   string `json:"name"`   // Display name.
	Email  string `json:"email"`  // Primary contact email.
	Status Status `json:"status"` // Account-level lifecycle status.

	Roles      Roles           `json:"roles"`      // Capability tags held by the account.
	RoleStatus map[Role]Status `json:"roleStatus"` // Per-role lifecycle status; keys are a subset of Roles.

	RejectionReason  string     `json:"rejectionReason,omitempty"`  // Audit note recorded when a role application is rejected.
	SuspensionReason string     `json:"suspensionReason,omitempty"` // Audit note recorded when the account or a role is suspended.
	BanReason        string     `json:"banReason,omitempty"`        // Audit note recorded when the account is banned.
	BannedAt         *time.Time `json:"bannedAt,omitempty"`         // Stamped when the account status becomes banned.

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserPatch is a partial update submitted to the remote store via PATCH.
// Nil fields and empty maps are omitted from the wire payload, so a patch
// touches exactly the fields it names.
type UserPatch struct {
	Status           *Status         `json:"status,omitempty"`
	RoleStatus       map[Role]Status `json:"roleStatus,omitempty"`
	RejectionReason  *string         `json:"rejectionReason,omitempty"`
	SuspensionReason *string         `json:"suspensionReason,omitempty"`
	BanReason        *string         `json:"banReason,omitempty"`
	BannedAt         *time.Time      `json:"bannedAt,omitempty"`
}
