package usecase

import (
	"context"

	"warden/internal/domain/entity"
	"warden/internal/domain/service"
)

// --- Input DTOs ---

// ListUsersInput defines the optional filters forwarded to the remote store.
type ListUsersInput struct {
	Role   string
	Status string
	Page   int
	Limit  int
}

// LifecycleActionInput defines the data for a user-lifecycle action.
// Role is required for approve/reject, optional for suspend/reinstate and
// ignored for ban. Reason is an optional audit note. AdminID identifies the
// acting admin for event attribution.
type LifecycleActionInput struct {
	UserID  string
	Role    string
	Reason  string
	AdminID string
}

// --- Output DTOs ---

// LifecycleActionOutput returns the updated user together with the
// human-readable message describing what happened.
type LifecycleActionOutput struct {
	Message string
	User    *entity.User
}

// PendingApprovals counts accounts waiting in the approval queue per role.
type PendingApprovals struct {
	Restaurants int `json:"restaurants"`
	Drivers     int `json:"drivers"`
}

// UserStatistics is a point-in-time aggregate over the fetched user set.
// It carries no consistency guarantee; users created mid-computation may or
// may not be counted.
type UserStatistics struct {
	TotalUsers       int                   `json:"totalUsers"`
	ByStatus         map[entity.Status]int `json:"byStatus"`
	ByRole           map[entity.Role]int   `json:"byRole"`
	PendingApprovals PendingApprovals      `json:"pendingApprovals"`
}

// UserManagementUsecase defines the interface for the admin-facing
// user-lifecycle operations. Every operation forwards the caller's
// Authorization header to the remote store untouched.
type UserManagementUsecase interface {
	ListUsers(ctx context.Context, authorization string, input *ListUsersInput) (*service.UserPage, error)
	GetUser(ctx context.Context, authorization string, userID string) (*entity.User, error)

	ApproveRole(ctx context.Context, authorization string, input *LifecycleActionInput) (*LifecycleActionOutput, error)
	RejectRole(ctx context.Context, authorization string, input *LifecycleActionInput) (*LifecycleActionOutput, error)
	Suspend(ctx context.Context, authorization string, input *LifecycleActionInput) (*LifecycleActionOutput, error)
	Reinstate(ctx context.Context, authorization string, input *LifecycleActionInput) (*LifecycleActionOutput, error)
	Ban(ctx context.Context, authorization string, input *LifecycleActionInput) (*LifecycleActionOutput, error)

	// ListPendingApplications lists users whose account status is pending.
	ListPendingApplications(ctx context.Context, authorization string, input *ListUsersInput) (*service.UserPage, error)

	// Statistics aggregates a snapshot over the user base.
	Statistics(ctx context.Context, authorization string) (*UserStatistics, error)
}
