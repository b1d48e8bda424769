package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/delivery/http/response"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserManagementHandler holds dependencies for the user-lifecycle handlers.
type UserManagementHandler struct {
	uc     usecase.UserManagementUsecase
	logger *slog.Logger
}

// NewUserManagementHandler is the constructor for UserManagementHandler, injected by Fx.
func NewUserManagementHandler(uc usecase.UserManagementUsecase, logger *slog.Logger) *UserManagementHandler {
	return &UserManagementHandler{uc: uc, logger: logger}
}

// lifecycleActionRequest carries the optional role and audit reason for a
// lifecycle action. Both fields are validated in the use case layer because
// the rules differ per action.
type lifecycleActionRequest struct {
	Role   string `json:"role"`
	Reason string `json:"reason"`
}

func listInputFromQuery(c echo.Context) *usecase.ListUsersInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return &usecase.ListUsersInput{
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
		Page:   page,
		Limit:  limit,
	}
}

func authorization(c echo.Context) string {
	return c.Request().Header.Get("Authorization")
}

func (h *UserManagementHandler) actionInput(c echo.Context) (*usecase.LifecycleActionInput, error) {
	var req lifecycleActionRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid action input")
	}

	input := &usecase.LifecycleActionInput{
		UserID: c.Param("userId"),
		Role:   req.Role,
		Reason: req.Reason,
	}
	if claims := deliverycontext.GetAdminClaims(c); claims != nil {
		input.AdminID = claims.AdminID.String()
	}

	return input, nil
}

// ListUsers handles the user listing request, forwarding filters upstream.
func (h *UserManagementHandler) ListUsers(c echo.Context) error {
	page, err := h.uc.ListUsers(c.Request().Context(), authorization(c), listInputFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Users retrieved successfully")
}

// GetUser handles the single-user fetch request.
func (h *UserManagementHandler) GetUser(c echo.Context) error {
	user, err := h.uc.GetUser(c.Request().Context(), authorization(c), c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// ApproveRole handles the role approval request.
func (h *UserManagementHandler) ApproveRole(c echo.Context) error {
	input, err := h.actionInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ApproveRole(c.Request().Context(), authorization(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.User, output.Message)
}

// RejectRole handles the role rejection request.
func (h *UserManagementHandler) RejectRole(c echo.Context) error {
	input, err := h.actionInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.RejectRole(c.Request().Context(), authorization(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.User, output.Message)
}

// Suspend handles the suspension request (role-scoped or account-wide).
func (h *UserManagementHandler) Suspend(c echo.Context) error {
	input, err := h.actionInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Suspend(c.Request().Context(), authorization(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.User, output.Message)
}

// Reinstate handles the reinstatement request (role-scoped or account-wide).
func (h *UserManagementHandler) Reinstate(c echo.Context) error {
	input, err := h.actionInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Reinstate(c.Request().Context(), authorization(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.User, output.Message)
}

// Ban handles the permanent ban request.
func (h *UserManagementHandler) Ban(c echo.Context) error {
	input, err := h.actionInput(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Ban(c.Request().Context(), authorization(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.User, output.Message)
}

// ListPendingApplications handles the pending-application listing request.
func (h *UserManagementHandler) ListPendingApplications(c echo.Context) error {
	page, err := h.uc.ListPendingApplications(c.Request().Context(), authorization(c), listInputFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "Pending applications retrieved successfully")
}

// Statistics handles the statistics snapshot request.
func (h *UserManagementHandler) Statistics(c echo.Context) error {
	stats, err := h.uc.Statistics(c.Request().Context(), authorization(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}
