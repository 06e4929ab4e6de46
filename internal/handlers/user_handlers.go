package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
	"performup_api/internal/services"
)

type UserHandler struct {
	db    *gorm.DB
	audit *services.AuditService
}

func NewUserHandler(db *gorm.DB, audit *services.AuditService) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

// ListUsers returns all user accounts
func (h *UserHandler) ListUsers(c echo.Context) error {
	query := h.db.Model(&models.User{})
	if role := c.QueryParam("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch users")
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateUserRole changes an account's role; audited
func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	var req UpdateUserRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	previous := user.Role
	user.Role = req.Role
	if err := h.db.Save(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update user")
	}

	h.audit.Log(currentUserID(c), models.AuditChangeRole, "user", user.ID, map[string]interface{}{
		"from": previous,
		"to":   user.Role,
	})

	return c.JSON(http.StatusOK, user)
}

// DeactivateUser disables an account; audited. Deactivated users can no
// longer authenticate and cannot be impersonated.
func (h *UserHandler) DeactivateUser(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	user.IsActive = false
	if err := h.db.Save(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to deactivate user")
	}

	h.audit.Log(currentUserID(c), models.AuditDeactivateUser, "user", user.ID, nil)

	return c.JSON(http.StatusOK, user)
}
