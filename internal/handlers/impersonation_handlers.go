package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/middleware"
	"performup_api/internal/models"
	"performup_api/internal/services"
)

type ImpersonationHandler struct {
	db            *gorm.DB
	impersonation *services.ImpersonationService
}

func NewImpersonationHandler(db *gorm.DB, impersonation *services.ImpersonationService) *ImpersonationHandler {
	return &ImpersonationHandler{db: db, impersonation: impersonation}
}

// StartImpersonation opens an audited impersonation session and installs the
// signed capability cookie. The route is admin gated; the caller's real
// identity (not an impersonated one) must be the admin.
func (h *ImpersonationHandler) StartImpersonation(c echo.Context) error {
	// Refuse nested impersonation: the capability must be minted for the
	// real authenticated admin
	if getUintFromContext(c, middleware.CtxImpersonatorID) != 0 {
		return echo.NewHTTPError(http.StatusForbidden, "end the current impersonation first")
	}

	var req ImpersonateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	adminID := currentUserID(c)
	session, token, err := h.impersonation.Start(adminID, req.TargetUserID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return err
	}

	middleware.SetImpersonationCookie(c, token)

	var target models.User
	if err := h.db.First(&target, session.TargetUserID).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load target user")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id":  session.ID,
		"target_user": target,
	})
}

// EndImpersonation closes the caller's impersonation session and clears the
// cookie. A cookie minted for a different admin is refused.
func (h *ImpersonationHandler) EndImpersonation(c echo.Context) error {
	claims, ok := c.Get(middleware.CtxImpersonation).(*services.ImpersonationClaims)
	if !ok || claims == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no active impersonation")
	}

	// The caller is the real admin when the middleware swapped identities
	callerID := getUintFromContext(c, middleware.CtxImpersonatorID)
	if callerID == 0 {
		callerID = currentUserID(c)
	}

	if err := h.impersonation.End(claims, callerID); err != nil {
		return err
	}

	middleware.ClearImpersonationCookie(c)

	return c.JSON(http.StatusOK, map[string]string{"status": "impersonation ended"})
}
