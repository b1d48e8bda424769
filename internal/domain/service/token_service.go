package service

import (
	"warden/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminClaims is the decoded identity carried by an admin access token.
type AdminClaims struct {
	AdminID uuid.UUID
	Name    string
	Email   string
	IsAdmin bool
}

// TokenService defines the interface for issuing and validating admin JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed token carrying the admin's identity and
	// the isAdmin flag.
	GenerateToken(admin *entity.Admin) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*AdminClaims, error)
}
