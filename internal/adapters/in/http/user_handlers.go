package http

import (
	"net/http"

	"setralog/internal/core/application/usecases/commands"
	"setralog/internal/core/application/usecases/queries"
	"setralog/internal/core/domain/model/kernel"
	"setralog/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ListUsers handles GET /api/users?role=&search=.
func (s *Server) ListUsers(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListUsersQuery(actor, c.QueryParam("role"), c.QueryParam("search"))
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]UserResponse, len(views))
	for i, v := range views {
		response[i] = newUserResponse(v)
	}
	return c.JSON(http.StatusOK, response)
}

// ChangeUserRole handles PATCH /api/users/:id/role.
func (s *Server) ChangeUserRole(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	target, err := userIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req ChangeRoleRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, badRequest("invalid request body"))
	}

	cmd, err := commands.NewChangeUserRoleCommand(actor, target, req.Role)
	if err != nil {
		return s.fail(c, err)
	}
	updated, err := s.handlers.ChangeUserRole.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newUserResponse(queries.NewUserView(updated)))
}

// DeleteUser handles DELETE /api/users/:id.
func (s *Server) DeleteUser(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	target, err := userIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteUserCommand(actor, target)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func userIDParam(c echo.Context) (kernel.UUID, error) {
	var raw string
	if err := bindPathParam(c, "id", &raw); err != nil {
		return kernel.UUID{}, err
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}
