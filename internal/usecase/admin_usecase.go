// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"warden/internal/domain/entity"
	"warden/internal/domain/service"
)

// --- Input DTOs ---

// CreateAdminInput defines the data required to create a new admin account.
type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// CreateAdminOutput returns the newly created admin's basic information.
type CreateAdminOutput struct {
	Admin *entity.Admin
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	Token string
	Admin *entity.Admin
}

// AdminUsecase defines the interface for admin-account business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AdminUsecase interface {
	CreateAdmin(ctx context.Context, input *CreateAdminInput) (*CreateAdminOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyAdmin checks that validated token claims carry admin privileges
	// and still reference an existing admin account.
	VerifyAdmin(ctx context.Context, claims *service.AdminClaims) (*entity.Admin, error)
}
