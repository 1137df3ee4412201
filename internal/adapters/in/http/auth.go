package http

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const claimsKey = "claims"

// Authenticate validates the "Authorization: Bearer <token>" header and stores the access
// claims in the echo context for the handlers.
func (s *Server) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return s.fail(c, fmt.Errorf("%w: authorization header is required", ports.ErrInvalidToken))
		}
		scheme, token, found := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return s.fail(c, fmt.Errorf("%w: expected Bearer <token>", ports.ErrInvalidToken))
		}

		claims, err := s.tokens.ParseAccessToken(token)
		if err != nil {
			return s.fail(c, err)
		}
		c.Set(claimsKey, claims)
		return next(c)
	}
}

// RequireRole rejects requests whose token does not carry one of roles. It runs after
// Authenticate. The use cases re-check roles against the store, so a token issued before
// a demotion gains nothing.
func (s *Server) RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsKey).(ports.AccessClaims)
			if !ok {
				return s.fail(c, fmt.Errorf("%w: missing claims", ports.ErrInvalidToken))
			}
			if !slices.Contains(roles, claims.Role) {
				return s.fail(c, echo.NewHTTPError(http.StatusForbidden, "insufficient role"))
			}
			return next(c)
		}
	}
}

// actorID returns the authenticated user id set by Authenticate.
func actorID(c echo.Context) (kernel.UUID, error) {
	claims, ok := c.Get(claimsKey).(ports.AccessClaims)
	if !ok {
		return kernel.UUID{}, fmt.Errorf("%w: missing claims", ports.ErrInvalidToken)
	}
	return claims.UserID, nil
}
