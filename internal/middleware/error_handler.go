package middleware

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"performup_api/internal/services"
)

// JSONErrorHandler maps every error escaping a handler to the platform's
// error taxonomy. State-precondition failures are reported as 403 (a
// deliberate convention here, not 409); invalid allocations and validation
// failures as 400; unknown errors as a generic 500, logged server-side.
func JSONErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var message interface{} = "Something went wrong. Please try again later."

	var he *echo.HTTPError
	var transitionErr *services.TransitionError
	var allocationErr *services.AllocationError
	var validationErr *services.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &he):
		code = he.Code
		if msg, ok := he.Message.(string); ok && msg != "" {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	case errors.As(err, &fieldErrs):
		code = http.StatusBadRequest
		fields := make(map[string]string)
		for _, fe := range fieldErrs {
			fields[fe.Field()] = fe.Tag()
		}
		if jsonErr := c.JSON(code, map[string]interface{}{
			"error":  "validation failed",
			"fields": fields,
		}); jsonErr != nil {
			c.Logger().Error(jsonErr)
		}
		return
	case errors.As(err, &transitionErr):
		code = http.StatusForbidden
		message = transitionErr.Message
	case errors.As(err, &allocationErr):
		code = http.StatusBadRequest
		message = allocationErr.Message
	case errors.As(err, &validationErr):
		code = http.StatusBadRequest
		message = validationErr.Message
	case errors.Is(err, services.ErrImpersonationForbidden):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, gorm.ErrRecordNotFound):
		code = http.StatusNotFound
		message = "not found"
	default:
		// Log the original error, never leak it to the client
		c.Logger().Error(err)
	}

	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	if jsonErr := c.JSON(code, map[string]interface{}{"error": message}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
