package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalPatch_TouchesOnlyTheRole(t *testing.T) {
	for _, role := range []Role{RoleRestaurant, RoleDriver} {
		patch := ApprovalPatch(role)

		assert.Equal(t, map[Role]Status{role: StatusActive}, patch.RoleStatus)
		assert.Nil(t, patch.Status)
		assert.Nil(t, patch.RejectionReason)
		assert.Nil(t, patch.BannedAt)
	}
}

func TestRejectionPatch_RecordsReason(t *testing.T) {
	patch := RejectionPatch(RoleDriver, "incomplete documents")

	assert.Equal(t, map[Role]Status{RoleDriver: StatusInactive}, patch.RoleStatus)
	require.NotNil(t, patch.RejectionReason)
	assert.Equal(t, "incomplete documents", *patch.RejectionReason)
}

func TestRejectionPatch_WithoutReason(t *testing.T) {
	patch := RejectionPatch(RoleRestaurant, "")

	assert.Equal(t, map[Role]Status{RoleRestaurant: StatusInactive}, patch.RoleStatus)
	assert.Nil(t, patch.RejectionReason)
}

func TestSuspensionPatch_SingleRole(t *testing.T) {
	role := RoleCustomer
	patch := SuspensionPatch(&role, "chargeback abuse")

	assert.Equal(t, map[Role]Status{RoleCustomer: StatusSuspended}, patch.RoleStatus)
	assert.Nil(t, patch.Status, "a role-scoped suspension must not touch the account status")
	require.NotNil(t, patch.SuspensionReason)
	assert.Equal(t, "chargeback abuse", *patch.SuspensionReason)
}

func TestSuspensionPatch_WholeAccount(t *testing.T) {
	patch := SuspensionPatch(nil, "")

	require.NotNil(t, patch.Status)
	assert.Equal(t, StatusSuspended, *patch.Status)
	assert.Empty(t, patch.RoleStatus)
	assert.Nil(t, patch.SuspensionReason)
}

func TestRoleReinstatementPatch(t *testing.T) {
	tests := []struct {
		role Role
		want Status
	}{
		{RoleCustomer, StatusActive},
		{RoleRestaurant, StatusPending},
		{RoleDriver, StatusPending},
	}

	for _, tt := range tests {
		patch := RoleReinstatementPatch(tt.role)

		assert.Equal(t, map[Role]Status{tt.role: tt.want}, patch.RoleStatus)
		assert.Nil(t, patch.Status)
	}
}

func TestAccountReinstatementPatch_WithCustomerRole(t *testing.T) {
	patch := AccountReinstatementPatch(Roles{RoleCustomer, RoleDriver})

	require.NotNil(t, patch.Status)
	assert.Equal(t, StatusActive, *patch.Status)
	assert.Equal(t, map[Role]Status{
		RoleCustomer: StatusActive,
		RoleDriver:   StatusPending,
	}, patch.RoleStatus)
}

func TestAccountReinstatementPatch_WithoutCustomerRole(t *testing.T) {
	patch := AccountReinstatementPatch(Roles{RoleRestaurant})

	require.NotNil(t, patch.Status)
	assert.Equal(t, StatusPending, *patch.Status)
	assert.Equal(t, map[Role]Status{RoleRestaurant: StatusPending}, patch.RoleStatus)
}

func TestBanPatch_BansEveryHeldRole(t *testing.T) {
	bannedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	patch := BanPatch(Roles{RoleRestaurant, RoleDriver}, "fraud", bannedAt)

	require.NotNil(t, patch.Status)
	assert.Equal(t, StatusBanned, *patch.Status)
	assert.Equal(t, map[Role]Status{
		RoleRestaurant: StatusBanned,
		RoleDriver:     StatusBanned,
	}, patch.RoleStatus)
	require.NotNil(t, patch.BannedAt)
	assert.Equal(t, bannedAt, *patch.BannedAt)
	require.NotNil(t, patch.BanReason)
	assert.Equal(t, "fraud", *patch.BanReason)
}

func TestBanPatch_IsIdempotentOnBannedRoles(t *testing.T) {
	bannedAt := time.Now()
	first := BanPatch(Roles{RoleCustomer}, "", bannedAt)
	second := BanPatch(Roles{RoleCustomer}, "", bannedAt)

	assert.Equal(t, first.RoleStatus, second.RoleStatus)
	assert.Equal(t, *first.Status, *second.Status)
	assert.Nil(t, first.BanReason)
}

func TestRole_RequiresApproval(t *testing.T) {
	assert.False(t, RoleCustomer.RequiresApproval())
	assert.True(t, RoleRestaurant.RequiresApproval())
	assert.True(t, RoleDriver.RequiresApproval())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleRestaurant.IsValid())
	assert.True(t, RoleDriver.IsValid())
	assert.False(t, Role("merchant").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{StatusActive, StatusPending, StatusInactive, StatusSuspended, StatusBanned} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, Status("deleted").IsValid())
}
