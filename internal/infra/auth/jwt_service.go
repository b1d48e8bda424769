// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"warden/config"
	"warden/internal/domain/entity"
	"warden/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Shared secret for signing admin tokens.
	ttl    time.Duration // Time-to-live for admin tokens (7 days by default).
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		ttl:    cfg.JWT.TTL,
	}, nil
}

// GenerateToken creates a signed HS256 token carrying the admin's identity
// and the isAdmin flag.
func (s *jwtService) GenerateToken(admin *entity.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     admin.ID.String(),
		"name":    admin.Name,
		"email":   admin.Email,
		"isAdmin": true,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and extracts the admin claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, _ := mapClaims["sub"].(string)
	adminID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}

	name, _ := mapClaims["name"].(string)
	email, _ := mapClaims["email"].(string)
	isAdmin, _ := mapClaims["isAdmin"].(bool)

	return &service.AdminClaims{
		AdminID: adminID,
		Name:    name,
		Email:   email,
		IsAdmin: isAdmin,
	}, nil
}
