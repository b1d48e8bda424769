package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"warden/config"
	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/constants"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"
	"warden/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const statisticsCacheKey = "warden:statistics:snapshot"

// userManagementService implements the UserManagementUsecase interface.
// It validates lifecycle actions locally, then forwards a single partial
// update to the remote store (plus one read for the role-less reinstate and
// ban flows, which need the account's current roles).
type userManagementService struct {
	directory  service.UserDirectory
	publisher  service.EventPublisher
	cache      service.SnapshotCache
	fetchLimit int
	cacheTTL   time.Duration
	logger     *slog.Logger
}

// UserManagementServiceParams holds dependencies for UserManagementService, injected by Fx.
type UserManagementServiceParams struct {
	fx.In

	Directory service.UserDirectory
	Publisher service.EventPublisher
	Cache     service.SnapshotCache
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserManagementService is the constructor for userManagementService.
func NewUserManagementService(params UserManagementServiceParams) usecase.UserManagementUsecase {
	return &userManagementService{
		directory:  params.Directory,
		publisher:  params.Publisher,
		cache:      params.Cache,
		fetchLimit: params.Config.Statistics.FetchLimit,
		cacheTTL:   params.Config.Statistics.CacheTTL,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userManagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers forwards the list query to the remote store.
func (srv *userManagementService) ListUsers(ctx context.Context, authorization string, input *usecase.ListUsersInput) (*service.UserPage, error) {
	page, err := srv.directory.ListUsers(ctx, authorization, service.ListUsersQuery{
		Role:   input.Role,
		Status: input.Status,
		Page:   input.Page,
		Limit:  input.Limit,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to list users", slog.Any("error", err))

		return nil, err
	}

	return page, nil
}

// GetUser fetches a single user from the remote store.
func (srv *userManagementService) GetUser(ctx context.Context, authorization string, userID string) (*entity.User, error) {
	user, err := srv.directory.GetUser(ctx, authorization, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to get user", slog.String("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

// ApproveRole activates a pending role application.
func (srv *userManagementService) ApproveRole(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	role := entity.Role(input.Role)
	if !role.RequiresApproval() {
		return nil, errors.Wrap(domainerrors.ErrApprovableRoleRequired, "approve requires an approvable role")
	}

	srv.log(ctx).Info("Approving role", slog.String("userID", input.UserID), slog.String("role", role.String()))

	user, err := srv.directory.PatchUser(ctx, authorization, input.UserID, entity.ApprovalPatch(role))
	if err != nil {
		srv.log(ctx).Warn("Failed to approve role", slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return &usecase.LifecycleActionOutput{
		Message: fmt.Sprintf("User %s role approved successfully", role),
		User:    user,
	}, nil
}

// RejectRole declines a pending role application, recording the reason if given.
func (srv *userManagementService) RejectRole(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	role := entity.Role(input.Role)
	if !role.RequiresApproval() {
		return nil, errors.Wrap(domainerrors.ErrApprovableRoleRequired, "reject requires an approvable role")
	}

	srv.log(ctx).Info("Rejecting role application", slog.String("userID", input.UserID), slog.String("role", role.String()))

	user, err := srv.directory.PatchUser(ctx, authorization, input.UserID, entity.RejectionPatch(role, input.Reason))
	if err != nil {
		srv.log(ctx).Warn("Failed to reject role application", slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, constants.ActionReject, input)

	return &usecase.LifecycleActionOutput{
		Message: fmt.Sprintf("User %s role application rejected", role),
		User:    user,
	}, nil
}

// Suspend suspends a single role, or the whole account when no role is given.
func (srv *userManagementService) Suspend(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	var rolePtr *entity.Role
	if input.Role != "" {
		role := entity.Role(input.Role)
		if !role.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrInvalidRole, "suspend received an unknown role")
		}
		rolePtr = &role
	}

	srv.log(ctx).Info("Suspending", slog.String("userID", input.UserID), slog.String("role", input.Role))

	user, err := srv.directory.PatchUser(ctx, authorization, input.UserID, entity.SuspensionPatch(rolePtr, input.Reason))
	if err != nil {
		srv.log(ctx).Warn("Failed to suspend", slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, constants.ActionSuspend, input)

	message := "User account suspended"
	if rolePtr != nil {
		message = fmt.Sprintf("User %s role suspended", *rolePtr)
	}

	return &usecase.LifecycleActionOutput{Message: message, User: user}, nil
}

// Reinstate lifts a suspension from a single role, or from the whole account
// when no role is given. The account-wide path reads the user first to learn
// which roles are held; the read and the patch are not atomic, so a
// concurrent update between them is resolved last-writer-wins.
func (srv *userManagementService) Reinstate(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	var patch *entity.UserPatch
	var message string

	if input.Role != "" {
		role := entity.Role(input.Role)
		if !role.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrInvalidRole, "reinstate received an unknown role")
		}

		patch = entity.RoleReinstatementPatch(role)
		message = fmt.Sprintf("User %s role reinstated", role)
	} else {
		current, err := srv.directory.GetUser(ctx, authorization, input.UserID)
		if err != nil {
			srv.log(ctx).Warn("Failed to load user for reinstatement", slog.String("userID", input.UserID), slog.Any("error", err))

			return nil, err
		}

		patch = entity.AccountReinstatementPatch(current.Roles)
		message = "User account reinstated"
	}

	srv.log(ctx).Info("Reinstating", slog.String("userID", input.UserID), slog.String("role", input.Role))

	user, err := srv.directory.PatchUser(ctx, authorization, input.UserID, patch)
	if err != nil {
		srv.log(ctx).Warn("Failed to reinstate", slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, constants.ActionReinstate, input)

	return &usecase.LifecycleActionOutput{Message: message, User: user}, nil
}

// Ban permanently bans an account: every held role and the account status
// become banned. Banning an already banned account is a no-op that reports
// success. Like the account-wide reinstate, the read and the patch are not
// atomic.
func (srv *userManagementService) Ban(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	current, err := srv.directory.GetUser(ctx, authorization, input.UserID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load user for ban", slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Banning account", slog.String("userID", input.UserID))

	user, err := srv.directory.PatchUser(ctx, authorization, input.UserID, entity.BanPatch(current.Roles, input.Reason, time.Now().UTC()))
	if err != nil {
		srv.log(ctx).Warn("Failed to ban account", slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, constants.ActionBan, input)

	return &usecase.LifecycleActionOutput{
		Message: "User account permanently banned",
		User:    user,
	}, nil
}

// ListPendingApplications lists users whose account status is pending.
func (srv *userManagementService) ListPendingApplications(ctx context.Context, authorization string, input *usecase.ListUsersInput) (*service.UserPage, error) {
	page, err := srv.directory.ListUsers(ctx, authorization, service.ListUsersQuery{
		Role:   input.Role,
		Status: entity.StatusPending.String(),
		Page:   input.Page,
		Limit:  input.Limit,
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to list pending applications", slog.Any("error", err))

		return nil, err
	}

	return page, nil
}

// Statistics aggregates a snapshot over the user base. The snapshot is
// cached under a single shared key for a short TTL and concurrent cold loads
// collapse into a single remote fetch, so a snapshot fetched with one admin's
// token is served to every admin until it expires. All callers are
// authenticated admins seeing the same aggregate.
func (srv *userManagementService) Statistics(ctx context.Context, authorization string) (*usecase.UserStatistics, error) {
	raw, err := srv.cache.GetOrLoad(ctx, statisticsCacheKey, srv.cacheTTL, func(loadCtx context.Context) ([]byte, error) {
		page, loadErr := srv.directory.ListUsers(loadCtx, authorization, service.ListUsersQuery{Limit: srv.fetchLimit})
		if loadErr != nil {
			return nil, loadErr
		}

		return json.Marshal(buildStatistics(page.Users))
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to compute statistics", slog.Any("error", err))

		return nil, err
	}

	var stats usecase.UserStatistics
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, errors.Wrap(err, "failed to decode statistics snapshot")
	}

	return &stats, nil
}

// buildStatistics computes the aggregate counters over a fetched user set.
// Every known status and role appears in the result, zero-valued when unused.
func buildStatistics(users []entity.User) *usecase.UserStatistics {
	stats := &usecase.UserStatistics{
		TotalUsers: len(users),
		ByStatus: map[entity.Status]int{
			entity.StatusActive:    0,
			entity.StatusPending:   0,
			entity.StatusInactive:  0,
			entity.StatusSuspended: 0,
			entity.StatusBanned:    0,
		},
		ByRole: map[entity.Role]int{
			entity.RoleCustomer:   0,
			entity.RoleRestaurant: 0,
			entity.RoleDriver:     0,
		},
	}

	for i := range users {
		user := &users[i]

		if user.Status.IsValid() {
			stats.ByStatus[user.Status]++
		}

		for _, role := range user.Roles {
			if role.IsValid() {
				stats.ByRole[role]++
			}
		}

		if user.Roles.Contains(entity.RoleRestaurant) && user.RoleStatus[entity.RoleRestaurant] == entity.StatusPending {
			stats.PendingApprovals.Restaurants++
		}
		if user.Roles.Contains(entity.RoleDriver) && user.RoleStatus[entity.RoleDriver] == entity.StatusPending {
			stats.PendingApprovals.Drivers++
		}
	}

	return stats
}

// publishEvent hands the lifecycle transition to the notification pipeline.
// Delivery is best-effort: a publish failure is logged and never fails the
// admin operation that triggered it.
func (srv *userManagementService) publishEvent(ctx context.Context, action string, input *usecase.LifecycleActionInput) {
	event := &service.LifecycleEvent{
		UserID:     input.UserID,
		Action:     action,
		Role:       input.Role,
		Reason:     input.Reason,
		AdminID:    input.AdminID,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishLifecycleEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish lifecycle event",
			slog.String("userID", input.UserID),
			slog.String("action", action),
			slog.Any("error", err))
	}
}
