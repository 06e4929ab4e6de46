package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"performup_api/internal/models"
)

// RoleFromContext returns the effective role RequireAuth stored for the
// request (the impersonated role when impersonating)
func RoleFromContext(c echo.Context) models.Role {
	if role, ok := c.Get(CtxUserRole).(models.Role); ok {
		return role
	}
	return ""
}

// RequireAdmin rejects any request whose effective role is not ADMIN
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !RoleFromContext(c).IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// RequireStudentManager allows the roles that may create and edit students
func RequireStudentManager() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !RoleFromContext(c).CanManageStudents() {
				return echo.NewHTTPError(http.StatusForbidden, "student management access required")
			}
			return next(c)
		}
	}
}

// RequireRoles allows any of the given roles through
func RequireRoles(roles ...models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current := RoleFromContext(c)
			for _, role := range roles {
				if current == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}
