package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warden/config"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"
	"warden/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (service.UserDirectory, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Directory.BaseURL = server.URL
	cfg.Directory.Timeout = 5 * time.Second

	return NewHTTPClient(cfg, slog.New(slog.DiscardHandler)), server
}

func TestListUsers_ForwardsFiltersAndAuthorization(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"role":   r.URL.Query().Get("role"),
			"status": r.URL.Query().Get("status"),
			"page":   r.URL.Query().Get("page"),
			"limit":  r.URL.Query().Get("limit"),
		}

		_ = json.NewEncoder(w).Encode(service.UserPage{
			Users: []entity.User{{ID: "u1", Status: entity.StatusActive}},
			Total: 1,
			Page:  2,
			Pages: 3,
		})
	}))

	page, err := client.ListUsers(context.Background(), "Bearer tok", service.ListUsersQuery{
		Role:   "driver",
		Status: "pending",
		Page:   2,
		Limit:  50,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "driver", gotQuery["role"])
	assert.Equal(t, "pending", gotQuery["status"])
	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "50", gotQuery["limit"])

	require.Len(t, page.Users, 1)
	assert.Equal(t, "u1", page.Users[0].ID)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 3, page.Pages)
}

func TestListUsers_OmitsZeroValueFilters(t *testing.T) {
	var gotRawQuery string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(service.UserPage{})
	}))

	_, err := client.ListUsers(context.Background(), "", service.ListUsersQuery{})
	require.NoError(t, err)
	assert.Empty(t, gotRawQuery)
}

func TestGetUser_DecodesUserEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": entity.User{
				ID:     "u42",
				Status: entity.StatusSuspended,
				Roles:  entity.Roles{entity.RoleCustomer, entity.RoleDriver},
			},
		})
	}))

	user, err := client.GetUser(context.Background(), "Bearer tok", "u42")
	require.NoError(t, err)
	assert.Equal(t, "u42", user.ID)
	assert.Equal(t, entity.StatusSuspended, user.Status)
	assert.True(t, user.Roles.Contains(entity.RoleDriver))
}

func TestPatchUser_SendsPatchBody(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": entity.User{ID: "u1", Status: entity.StatusBanned},
		})
	}))

	patch := entity.BanPatch(entity.Roles{entity.RoleCustomer}, "fraud", time.Now())
	user, err := client.PatchUser(context.Background(), "Bearer tok", "u1", patch)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "banned", gotBody["status"])
	assert.Equal(t, "fraud", gotBody["banReason"])
	assert.Equal(t, entity.StatusBanned, user.Status)
}

func TestDo_Non2xxBecomesRemoteError(t *testing.T) {
	upstreamBody := `{"message":"User not found"}`

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(upstreamBody))
	}))

	_, err := client.GetUser(context.Background(), "Bearer tok", "missing")
	require.Error(t, err)

	var remoteErr *domainerrors.RemoteError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
	assert.Equal(t, upstreamBody, string(remoteErr.Body))
}

func TestDo_TransportFailureBecomesDirectoryUnavailable(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := client.GetUser(context.Background(), "Bearer tok", "u1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDirectoryUnavailable))
}
