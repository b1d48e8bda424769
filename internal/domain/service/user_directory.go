package service

import (
	"context"

	"warden/internal/domain/entity"
)

// ListUsersQuery carries the filter parameters forwarded to the remote
// store's list endpoint. Zero values are omitted from the query string.
type ListUsersQuery struct {
	Role   string
	Status string
	Page   int
	Limit  int
}

// UserPage is one page of users as returned by the remote store.
type UserPage struct {
	Users []entity.User `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

// UserDirectory is the client contract for the remote auth service that owns
// user records. Every call forwards the original caller's Authorization
// header value untouched; this service never derives credentials of its own.
//
// A failed reply (non-2xx) surfaces as *domainerrors.RemoteError carrying the
// upstream status and body; a transport failure surfaces as
// domainerrors.ErrDirectoryUnavailable.
type UserDirectory interface {
	// ListUsers fetches a page of users with optional role/status filters.
	ListUsers(ctx context.Context, authorization string, query ListUsersQuery) (*UserPage, error)

	// GetUser fetches a single user by ID.
	GetUser(ctx context.Context, authorization string, userID string) (*entity.User, error)

	// PatchUser submits a partial update and returns the updated user.
	PatchUser(ctx context.Context, authorization string, userID string, patch *entity.UserPatch) (*entity.User, error)
}
