// Package middleware contains HTTP middleware for the echo server.
package middleware

import (
	"net/http"
	"strings"

	"kuliner/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// keyUserID is the echo context key carrying the authenticated user ID.
const keyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
// It puts the verified user ID on the echo context; handlers pass it onward
// explicitly, identity never rides inside usecase state.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(keyUserID, claims.UserID)

		return next(c)
	}
}

// UserID returns the authenticated user ID set by Authenticate, or "" when
// the request was not authenticated.
func UserID(c echo.Context) string {
	userID, _ := c.Get(keyUserID).(string)

	return userID
}
