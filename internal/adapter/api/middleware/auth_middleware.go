package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"swipemall/internal/infrastructure/auth"
)

type AuthMiddleware struct {
	tokenManager *auth.TokenManager
}

func NewAuthMiddleware(tokenManager *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tokenManager}
}

// Authenticate requires a valid full-account bearer token and puts the user
// id on the context as "uid". Guest tokens are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return err
		}

		if claims.IsGuest || claims.UserID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "A full account is required")
		}

		c.Set("uid", claims.UserID)
		return next(c)
	}
}

// OptionalAuth sets "uid" when a valid user token is present and passes
// through untouched otherwise.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err == nil && !claims.IsGuest && claims.UserID != "" {
			c.Set("uid", claims.UserID)
		}
		return next(c)
	}
}

func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*auth.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := m.tokenManager.Verify(parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	return claims, nil
}
