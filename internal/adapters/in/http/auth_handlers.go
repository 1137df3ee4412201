package http

import (
	"net/http"

	"setralog/internal/core/application/usecases/commands"
	"setralog/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// RegisterUser handles POST /api/auth/register.
func (s *Server) RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, badRequest("invalid request body"))
	}

	cmd, err := commands.NewRegisterUserCommand(commands.RegisterUserInput{
		Email:                  req.Email,
		Password:               req.Password,
		ConfirmPassword:        req.ConfirmPassword,
		Name:                   req.Name,
		RUT:                    req.RUT,
		Phone:                  req.Phone,
		Role:                   req.Role,
		BusinessName:           req.BusinessName,
		BusinessAddress:        req.BusinessAddress,
		BusinessRepresentative: req.BusinessRepresentative.toInput(),
	})
	if err != nil {
		return s.fail(c, err)
	}

	registered, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, newUserResponse(queries.NewUserView(registered)))
}

// Login handles POST /api/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, badRequest("invalid request body"))
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, LoginResponse{
		Token: result.Token,
		User:  newUserResponse(queries.NewUserView(result.User)),
	})
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (s *Server) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, badRequest("invalid request body"))
	}

	cmd, err := commands.NewRequestPasswordResetCommand(req.Email)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.RequestPasswordReset.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "password reset link sent"})
}

// ResetPassword handles POST /api/auth/reset-password.
func (s *Server) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, badRequest("invalid request body"))
	}

	cmd, err := commands.NewResetPasswordCommand(req.Token, req.Password, req.ConfirmPassword)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.ResetPassword.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "password updated"})
}
