package middleware

import (
	"net/http"
	"os"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/models"
	"performup_api/internal/services"
)

// Cookie names. The impersonation cookie carries a signed capability token,
// not the session itself.
const (
	SessionCookie       = "session"
	ImpersonationCookie = "performup_impersonate"
)

// Context keys set by RequireAuth
const (
	CtxUserID         = "userID"
	CtxUserRole       = "userRole"
	CtxUserEmail      = "userEmail"
	CtxUserName       = "userName"
	CtxImpersonatorID = "impersonatorID"
	CtxImpersonation  = "impersonationClaims"
)

// ClearImpersonationCookie deletes the impersonation cookie on the response
func ClearImpersonationCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     ImpersonationCookie,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
}

// SetImpersonationCookie installs the signed capability token, expiring with
// the token itself
func SetImpersonationCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     ImpersonationCookie,
		Value:    token,
		MaxAge:   int(services.ImpersonationTTL.Seconds()),
		HttpOnly: true,
		Secure:   os.Getenv("ENV") == "production",
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireAuth verifies the Firebase session cookie, resolves the local user
// record for the authenticated email, and applies any valid impersonation
// cookie. An expired or tampered impersonation token is treated as absent
// and deleted (lazy expiry, no background sweep).
func RequireAuth(authClient *auth.Client, db *gorm.DB, impersonation *services.ImpersonationService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authClient == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "authentication is not configured")
			}

			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			decodedToken, err := authClient.VerifySessionCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid session, clear cookie
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    "",
					MaxAge:   -1,
					HttpOnly: true,
					Path:     "/",
				})
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			email, _ := decodedToken.Claims["email"].(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "session has no email claim")
			}

			var user models.User
			if err := db.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "no active account for this identity")
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxUserRole, user.Role)
			c.Set(CtxUserEmail, user.Email)
			c.Set(CtxUserName, user.Name)

			applyImpersonation(c, db, impersonation, user)

			return next(c)
		}
	}
}

// applyImpersonation swaps the request identity to the impersonated target
// when a valid capability cookie minted for the authenticated admin is
// present. Anything invalid deletes the cookie and leaves identity untouched.
func applyImpersonation(c echo.Context, db *gorm.DB, impersonation *services.ImpersonationService, user models.User) {
	if impersonation == nil {
		return
	}

	cookie, err := c.Cookie(ImpersonationCookie)
	if err != nil || cookie.Value == "" {
		return
	}

	claims, err := impersonation.ParseToken(cookie.Value)
	if err != nil {
		ClearImpersonationCookie(c)
		return
	}

	if claims.AdminID != user.ID || !user.Role.IsAdmin() {
		// Cookie minted for someone else; keep it so its owner can still
		// end the session, but do not apply it here
		c.Set(CtxImpersonation, claims)
		return
	}

	var target models.User
	if err := db.Where("id = ? AND is_active = ?", claims.TargetID, true).First(&target).Error; err != nil {
		ClearImpersonationCookie(c)
		return
	}

	c.Set(CtxImpersonatorID, user.ID)
	c.Set(CtxImpersonation, claims)
	c.Set(CtxUserID, target.ID)
	c.Set(CtxUserRole, target.Role)
	c.Set(CtxUserEmail, target.Email)
	c.Set(CtxUserName, target.Name)
}
