package auth

import (
	"testing"
	"time"

	"warden/config"
	"warden/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)
	admin := &entity.Admin{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
	}

	token, err := svc.GenerateToken(admin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "secret-a", time.Hour)
	verifier := newTestTokenService(t, "secret-b", time.Hour)

	token, err := issuer.GenerateToken(&entity.Admin{ID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", -time.Minute)

	token, err := svc.GenerateToken(&entity.Admin{ID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
