package http

import (
	"net/http"

	"setralog/internal/core/application/usecases/commands"
	"setralog/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetProfile handles GET /api/profile.
func (s *Server) GetProfile(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetProfileQuery(actor)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.GetProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newUserResponse(view))
}

// UpdateProfile handles PATCH /api/profile.
func (s *Server) UpdateProfile(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req UpdateProfileRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, badRequest("invalid request body"))
	}

	cmd, err := commands.NewUpdateProfileCommand(actor, commands.UpdateProfileInput{
		Name:                   req.Name,
		Email:                  req.Email,
		RUT:                    req.RUT,
		Phone:                  req.Phone,
		BusinessName:           req.BusinessName,
		BusinessAddress:        req.BusinessAddress,
		BusinessRepresentative: req.BusinessRepresentative.toInput(),
	})
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.handlers.UpdateProfile.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newUserResponse(queries.NewUserView(updated)))
}

// ChangePassword handles POST /api/profile/password.
func (s *Server) ChangePassword(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req ChangePasswordRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, badRequest("invalid request body"))
	}

	cmd, err := commands.NewChangePasswordCommand(actor, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.ChangePassword.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "password updated"})
}

// DeleteProfile handles DELETE /api/profile: users may close their own account.
func (s *Server) DeleteProfile(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteUserCommand(actor, actor)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
