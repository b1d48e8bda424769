package impl

import (
	"context"
	"time"

	"warden/internal/domain/entity"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- handwritten testify doubles for the domain contracts ---

type mockUserDirectory struct {
	mock.Mock
}

func (m *mockUserDirectory) ListUsers(ctx context.Context, authorization string, query service.ListUsersQuery) (*service.UserPage, error) {
	args := m.Called(ctx, authorization, query)
	if page, ok := args.Get(0).(*service.UserPage); ok {
		return page, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserDirectory) GetUser(ctx context.Context, authorization string, userID string) (*entity.User, error) {
	args := m.Called(ctx, authorization, userID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserDirectory) PatchUser(ctx context.Context, authorization string, userID string, patch *entity.UserPatch) (*entity.User, error) {
	args := m.Called(ctx, authorization, userID, patch)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockEventPublisher struct {
	mock.Mock
}

func (m *mockEventPublisher) PublishLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventPublisher) Close() error {
	return m.Called().Error(0)
}

// passthroughCache invokes load on every call, making cache behavior
// transparent in usecase tests.
type passthroughCache struct{}

func (passthroughCache) GetOrLoad(ctx context.Context, _ string, _ time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	return load(ctx)
}

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	args := m.Called(ctx, id)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	args := m.Called(ctx, email)
	if admin, ok := args.Get(0).(*entity.Admin); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

// stubTxManager runs the callback against a fixed repository factory,
// without any transactional behavior.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (tm *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

type stubRepoFactory struct {
	adminRepo repository.AdminRepository
}

func (f *stubRepoFactory) NewAdminRepository() repository.AdminRepository {
	return f.adminRepo
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateToken(admin *entity.Admin) (string, error) {
	args := m.Called(admin)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.AdminClaims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.AdminClaims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}
