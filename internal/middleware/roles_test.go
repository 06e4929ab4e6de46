package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"performup_api/internal/models"
)

func callWithRole(t *testing.T, mw echo.MiddlewareFunc, role models.Role) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(CtxUserRole, role)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		role    models.Role
		allowed bool
	}{
		{models.RoleAdmin, true},
		{models.RoleExecutiveChef, false},
		{models.RoleStudent, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			err := callWithRole(t, RequireAdmin(), tt.role)
			if tt.allowed && err != nil {
				t.Errorf("role %s was rejected: %v", tt.role, err)
			}
			if !tt.allowed {
				he, ok := err.(*echo.HTTPError)
				if !ok || he.Code != http.StatusForbidden {
					t.Errorf("role %s got %v; want 403", tt.role, err)
				}
			}
		})
	}
}

func TestRequireStudentManager(t *testing.T) {
	tests := []struct {
		role    models.Role
		allowed bool
	}{
		{models.RoleAdmin, true},
		{models.RoleExecutiveChef, true},
		{models.RoleMentor, false},
		{models.RoleStudent, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			err := callWithRole(t, RequireStudentManager(), tt.role)
			if tt.allowed && err != nil {
				t.Errorf("role %s was rejected: %v", tt.role, err)
			}
			if !tt.allowed && err == nil {
				t.Errorf("role %s was allowed; want 403", tt.role)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	mw := RequireRoles(models.RoleMentor, models.RoleProfessor)

	if err := callWithRole(t, mw, models.RoleMentor); err != nil {
		t.Errorf("mentor was rejected: %v", err)
	}
	if err := callWithRole(t, mw, models.RoleProfessor); err != nil {
		t.Errorf("professor was rejected: %v", err)
	}
	if err := callWithRole(t, mw, models.RoleStudent); err == nil {
		t.Error("student was allowed; want 403")
	}
}
