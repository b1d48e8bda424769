package middleware

import (
	"strings"

	deliverycontext "warden/internal/delivery/context"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"
	"warden/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for admin JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	adminUC  usecase.AdminUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, adminUC usecase.AdminUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, adminUC: adminUC}
}

// Authenticate validates the bearer token, requires the admin flag, and
// confirms the referenced admin account still exists. Errors flow to the
// central error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WithDetails("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WithDetails("Invalid or expired token")
		}

		if _, err := m.adminUC.VerifyAdmin(c.Request().Context(), claims); err != nil {
			return err
		}

		// Set admin info on the context for handlers to use
		deliverycontext.SetAdminClaims(c, claims)

		return next(c)
	}
}
