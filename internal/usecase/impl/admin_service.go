// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"warden/config"
	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager    repository.TransactionManager
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService. It receives all dependencies as interfaces.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAdmin orchestrates the complete admin account creation process.
func (srv *adminService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) (*usecase.CreateAdminOutput, error) {
	srv.log(ctx).Info("Starting admin creation", slog.String("email", input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during admin creation", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during admin creation")
	}

	newAdmin := &entity.Admin{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.NewAdminRepository()

		_, findErr := adminRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrAdminAlreadyExists, "admin email already registered")
		}
		if !errors.Is(findErr, repository.ErrAdminNotFound) {
			return errors.Wrap(findErr, "failed to check existing admin")
		}

		if createErr := adminRepo.Create(ctx, newAdmin); createErr != nil {
			return errors.Wrap(createErr, "failed to create admin")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute admin creation transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Admin creation completed", slog.Any("adminID", newAdmin.ID))

	return &usecase.CreateAdminOutput{Admin: newAdmin}, nil
}

// Login orchestrates the admin login process.
func (srv *adminService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting admin login", slog.String("email", input.Email))

	// Single query operation - use direct repository instance.
	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(admin)
	if err != nil {
		srv.log(ctx).Error("Failed to generate admin token", slog.Any("adminID", admin.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Admin logged in successfully", slog.Any("adminID", admin.ID))

	return &usecase.LoginOutput{Token: token, Admin: admin}, nil
}

// VerifyAdmin checks the claims' admin flag and confirms the referenced admin
// account still exists. Called by the auth middleware on every protected request.
func (srv *adminService) VerifyAdmin(ctx context.Context, claims *service.AdminClaims) (*entity.Admin, error) {
	if claims == nil || !claims.IsAdmin {
		return nil, errors.Wrap(domainerrors.ErrAdminPrivilegesRequired, "token does not carry admin privileges")
	}

	admin, err := srv.adminRepo.FindByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAdminNotFound, "admin referenced by token no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	return admin, nil
}
