package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"
	"warden/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserManagementUsecase struct {
	mock.Mock
}

func (m *mockUserManagementUsecase) ListUsers(ctx context.Context, authorization string, input *usecase.ListUsersInput) (*service.UserPage, error) {
	args := m.Called(ctx, authorization, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.UserPage), args.Error(1)
}

func (m *mockUserManagementUsecase) GetUser(ctx context.Context, authorization string, userID string) (*entity.User, error) {
	args := m.Called(ctx, authorization, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserManagementUsecase) ApproveRole(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	return m.actionCall("ApproveRole", ctx, authorization, input)
}

func (m *mockUserManagementUsecase) RejectRole(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	return m.actionCall("RejectRole", ctx, authorization, input)
}

func (m *mockUserManagementUsecase) Suspend(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	return m.actionCall("Suspend", ctx, authorization, input)
}

func (m *mockUserManagementUsecase) Reinstate(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	return m.actionCall("Reinstate", ctx, authorization, input)
}

func (m *mockUserManagementUsecase) Ban(ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	return m.actionCall("Ban", ctx, authorization, input)
}

func (m *mockUserManagementUsecase) actionCall(method string, ctx context.Context, authorization string, input *usecase.LifecycleActionInput) (*usecase.LifecycleActionOutput, error) {
	args := m.MethodCalled(method, ctx, authorization, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LifecycleActionOutput), args.Error(1)
}

func (m *mockUserManagementUsecase) ListPendingApplications(ctx context.Context, authorization string, input *usecase.ListUsersInput) (*service.UserPage, error) {
	args := m.Called(ctx, authorization, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.UserPage), args.Error(1)
}

func (m *mockUserManagementUsecase) Statistics(ctx context.Context, authorization string) (*usecase.UserStatistics, error) {
	args := m.Called(ctx, authorization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.UserStatistics), args.Error(1)
}

func newUserManagementEcho(uc usecase.UserManagementUsecase, claims *service.AdminClaims) *echo.Echo {
	e := newTestEcho()
	h := NewUserManagementHandler(uc, slog.New(slog.DiscardHandler))

	group := e.Group("/api/admin")
	if claims != nil {
		group.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetAdminClaims(c, claims)

				return next(c)
			}
		})
	}
	group.GET("/users", h.ListUsers)
	group.GET("/users/:userId", h.GetUser)
	group.POST("/users/:userId/approve", h.ApproveRole)
	group.POST("/users/:userId/suspend", h.Suspend)
	group.GET("/statistics", h.Statistics)

	return e
}

func TestUserManagementHandler_ListUsers_ForwardsFiltersAndAuthorization(t *testing.T) {
	uc := new(mockUserManagementUsecase)
	uc.On("ListUsers", mock.Anything, "Bearer admin-token", &usecase.ListUsersInput{
		Role:   "driver",
		Status: "active",
		Page:   2,
		Limit:  25,
	}).Return(&service.UserPage{
		Users: []entity.User{{ID: "user-1", Name: "Bob"}},
		Total: 51,
		Page:  2,
		Pages: 3,
	}, nil)

	e := newUserManagementEcho(uc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users?role=driver&status=active&page=2&limit=25", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Users retrieved successfully")
	assert.Contains(t, rec.Body.String(), "user-1")
	uc.AssertExpectations(t)
}

func TestUserManagementHandler_GetUser(t *testing.T) {
	uc := new(mockUserManagementUsecase)
	uc.On("GetUser", mock.Anything, "Bearer admin-token", "user-42").
		Return(&entity.User{ID: "user-42", Name: "Carol", Status: entity.StatusActive}, nil)

	e := newUserManagementEcho(uc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users/user-42", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Carol")
	uc.AssertExpectations(t)
}

func TestUserManagementHandler_ApproveRole_CarriesAdminID(t *testing.T) {
	adminID := uuid.New()
	uc := new(mockUserManagementUsecase)
	uc.On("ApproveRole", mock.Anything, "Bearer admin-token", &usecase.LifecycleActionInput{
		UserID:  "user-42",
		Role:    "restaurant",
		AdminID: adminID.String(),
	}).Return(&usecase.LifecycleActionOutput{
		Message: "User restaurant role approved successfully",
		User:    &entity.User{ID: "user-42"},
	}, nil)

	e := newUserManagementEcho(uc, &service.AdminClaims{AdminID: adminID, IsAdmin: true})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/user-42/approve",
		jsonBody(`{"role":"restaurant"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer admin-token")
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User restaurant role approved successfully")
	uc.AssertExpectations(t)
}

func TestUserManagementHandler_ApproveRole_MalformedBody(t *testing.T) {
	uc := new(mockUserManagementUsecase)

	e := newUserManagementEcho(uc, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/user-42/approve", jsonBody(`{`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer admin-token")
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "Invalid action input")
	uc.AssertNotCalled(t, "ApproveRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserManagementHandler_Suspend_MalformedBody(t *testing.T) {
	uc := new(mockUserManagementUsecase)

	e := newUserManagementEcho(uc, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/user-42/suspend", jsonBody(`{"role":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer admin-token")
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "Suspend", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserManagementHandler_Suspend_RemoteErrorForwardedVerbatim(t *testing.T) {
	upstreamBody := `{"error":"User not found","requestId":"abc-123"}`
	uc := new(mockUserManagementUsecase)
	uc.On("Suspend", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewRemoteError(http.StatusNotFound, []byte(upstreamBody)))

	e := newUserManagementEcho(uc, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/user-42/suspend", jsonBody(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer admin-token")
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, upstreamBody, rec.Body.String())
}

func TestUserManagementHandler_Statistics(t *testing.T) {
	uc := new(mockUserManagementUsecase)
	uc.On("Statistics", mock.Anything, "Bearer admin-token").
		Return(&usecase.UserStatistics{
			TotalUsers: 3,
			ByStatus:   map[entity.Status]int{entity.StatusActive: 2, entity.StatusPending: 1},
			ByRole:     map[entity.Role]int{entity.RoleCustomer: 3},
			PendingApprovals: usecase.PendingApprovals{
				Restaurants: 1,
			},
		}, nil)

	e := newUserManagementEcho(uc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/statistics", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalUsers":3`)
	assert.Contains(t, rec.Body.String(), `"restaurants":1`)
	uc.AssertExpectations(t)
}
