package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"swipemall/internal/domain/repository"
)

type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{userRepo: userRepo}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		if user.Role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		c.Set("role", user.Role)
		return next(c)
	}
}

// ResolveRole loads the caller's role onto the context for handlers that
// branch on owner-versus-admin access.
func (m *AdminMiddleware) ResolveRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if uid, ok := c.Get("uid").(string); ok {
			if user, err := m.userRepo.GetByID(c.Request().Context(), uid); err == nil {
				c.Set("role", user.Role)
			}
		}
		return next(c)
	}
}
