package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"performup_api/internal/middleware"
	"performup_api/internal/models"
)

func getUintFromContext(c echo.Context, key string) uint {
	if val := c.Get(key); val != nil {
		if u, ok := val.(uint); ok {
			return u
		}
	}
	return 0
}

// currentUserID returns the effective user id for the request (the
// impersonated target when an impersonation cookie is applied)
func currentUserID(c echo.Context) uint {
	return getUintFromContext(c, middleware.CtxUserID)
}

// currentRole returns the effective role for the request
func currentRole(c echo.Context) models.Role {
	return middleware.RoleFromContext(c)
}

// parseIDParam parses the :id path parameter
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
