package http

import (
	"errors"
	"net/http"

	"setralog/internal/core/application/usecases/commands"
	"setralog/internal/core/domain/model/order"
	"setralog/internal/core/domain/services"
	"setralog/internal/core/ports"
	"setralog/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error to its HTTP status code.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, ports.ErrInvalidToken),
		errors.Is(err, commands.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, services.ErrUserHasActiveOrders):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an ErrorResponse. Internal errors are logged and their details are
// not sent to the client.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = "internal server error"
	}

	return c.JSON(code, ErrorResponse{Code: code, Message: message})
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}
