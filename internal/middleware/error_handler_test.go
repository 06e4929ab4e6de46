package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/services"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	JSONErrorHandler(err, c)
	return rec
}

func TestJSONErrorHandlerStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "http error passes through",
			err:  echo.NewHTTPError(http.StatusUnauthorized, "authentication required"),
			want: http.StatusUnauthorized,
		},
		{
			name: "transition errors are forbidden",
			err:  services.NewTransitionError("only PENDING missions can be validated"),
			want: http.StatusForbidden,
		},
		{
			name: "allocation errors are bad requests",
			err:  services.NewAllocationError("allocation amount must be positive"),
			want: http.StatusBadRequest,
		},
		{
			name: "business rule violations are bad requests",
			err:  services.NewValidationError("pack 3 is retired and can no longer be quoted"),
			want: http.StatusBadRequest,
		},
		{
			name: "impersonation refusal is forbidden",
			err:  services.ErrImpersonationForbidden,
			want: http.StatusForbidden,
		},
		{
			name: "missing records are not found",
			err:  gorm.ErrRecordNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "unknown errors are internal",
			err:  errors.New("connection reset"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runErrorHandler(t, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d; want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestJSONErrorHandlerHidesInternalDetails(t *testing.T) {
	rec := runErrorHandler(t, errors.New("pq: password authentication failed"))

	body := rec.Body.String()
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
	if strings.Contains(body, "password") {
		t.Errorf("response body leaks internal error: %s", body)
	}
}
