// Package entity contains the core business objects of the project.
package entity

import "time"

// The functions below build the exact partial update a lifecycle action
// sends to the remote store. They are pure: validation of the incoming role
// happens in the use case layer before any of them is called.

// ApprovalPatch activates a single role. Only roles that require approval
// (restaurant, driver) ever reach this path.
func ApprovalPatch(role Role) *UserPatch {
	return &UserPatch{
		RoleStatus: map[Role]Status{role: StatusActive},
	}
}

// RejectionPatch deactivates a role application and records the rejection
// reason when one was given.
func RejectionPatch(role Role, reason string) *UserPatch {
	patch := &UserPatch{
		RoleStatus: map[Role]Status{role: StatusInactive},
	}
	if reason != "" {
		patch.RejectionReason = &reason
	}

	return patch
}

// SuspensionPatch suspends a single role when one is given, or the whole
// account when role is nil. The reason, if present, is attached either way.
func SuspensionPatch(role *Role, reason string) *UserPatch {
	patch := &UserPatch{}
	if role != nil {
		patch.RoleStatus = map[Role]Status{*role: StatusSuspended}
	} else {
		suspended := StatusSuspended
		patch.Status = &suspended
	}
	if reason != "" {
		patch.SuspensionReason = &reason
	}

	return patch
}

// RoleReinstatementPatch lifts a suspension from a single role. Customers
// return to active; approval-gated roles return to the pending queue.
func RoleReinstatementPatch(role Role) *UserPatch {
	return &UserPatch{
		RoleStatus: map[Role]Status{role: role.ReinstatedStatus()},
	}
}

// AccountReinstatementPatch lifts a whole-account suspension. Every held
// role goes back to its reinstated status, and the account status becomes
// active if the account holds the customer role, pending otherwise.
func AccountReinstatementPatch(roles Roles) *UserPatch {
	roleStatus := make(map[Role]Status, len(roles))
	for _, r := range roles {
		roleStatus[r] = r.ReinstatedStatus()
	}

	accountStatus := StatusPending
	if roles.Contains(RoleCustomer) {
		accountStatus = StatusActive
	}

	return &UserPatch{
		Status:     &accountStatus,
		RoleStatus: roleStatus,
	}
}

// BanPatch permanently bans an account: every held role and the account
// status become banned, and bannedAt is stamped. Applying it to an already
// banned account yields the same final state.
func BanPatch(roles Roles, reason string, bannedAt time.Time) *UserPatch {
	roleStatus := make(map[Role]Status, len(roles))
	for _, r := range roles {
		roleStatus[r] = StatusBanned
	}

	banned := StatusBanned
	patch := &UserPatch{
		Status:     &banned,
		RoleStatus: roleStatus,
		BannedAt:   &bannedAt,
	}
	if reason != "" {
		patch.BanReason = &reason
	}

	return patch
}
