// Package http is the REST surface of the service. It translates JSON requests into
// commands and queries, runs them through their handlers and maps the results (and the
// errs/ports error kinds) back to HTTP.
package http

import (
	"log/slog"
	"net/http"

	"setralog/internal/core/application/usecases/commands"
	"setralog/internal/core/application/usecases/queries"
	"setralog/internal/core/domain/model/user"
	"setralog/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use case handlers the server dispatches to.
type Handlers struct {
	// Command handlers
	RegisterUser         commands.RegisterUserCommandHandler
	Login                commands.LoginCommandHandler
	RequestPasswordReset commands.RequestPasswordResetCommandHandler
	ResetPassword        commands.ResetPasswordCommandHandler
	UpdateProfile        commands.UpdateProfileCommandHandler
	ChangePassword       commands.ChangePasswordCommandHandler
	ChangeUserRole       commands.ChangeUserRoleCommandHandler
	DeleteUser           commands.DeleteUserCommandHandler
	CreateOrder          commands.CreateOrderCommandHandler
	ChangeOrderStatus    commands.ChangeOrderStatusCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	DeleteOrder          commands.DeleteOrderCommandHandler

	// Query handlers
	GetProfile queries.GetProfileQueryHandler
	ListUsers  queries.ListUsersQueryHandler
	ListOrders queries.ListOrdersQueryHandler
	GetOrder   queries.GetOrderQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers  Handlers
	tokens    ports.TokenIssuer
	metrics   *Metrics
	validator *RequestValidator
	logger    *slog.Logger
}

// NewServer creates the HTTP server. metrics may be nil to disable instrumentation.
func NewServer(handlers Handlers, tokens ports.TokenIssuer, metrics *Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		metrics:  metrics,
		logger:   logger.With("component", "http"),
	}
}

// WithRequestValidator checks every /api request against the OpenAPI document before
// it reaches a handler.
func (s *Server) WithRequestValidator(v *RequestValidator) *Server {
	s.validator = v
	return s
}

// RegisterRoutes mounts every route on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	if s.metrics != nil {
		e.Use(s.metrics.Middleware)
		e.GET("/metrics", s.metrics.Handler())
	}
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api")

	auth := api.Group("/auth", s.ValidateRequest)
	auth.POST("/register", s.RegisterUser)
	auth.POST("/login", s.Login)
	auth.POST("/forgot-password", s.ForgotPassword)
	auth.POST("/reset-password", s.ResetPassword)

	profile := api.Group("/profile", s.Authenticate, s.ValidateRequest)
	profile.GET("", s.GetProfile)
	profile.PATCH("", s.UpdateProfile)
	profile.POST("/password", s.ChangePassword)
	profile.DELETE("", s.DeleteProfile)

	users := api.Group("/users", s.Authenticate, s.RequireRole(user.Admin), s.ValidateRequest)
	users.GET("", s.ListUsers)
	users.PATCH("/:id/role", s.ChangeUserRole)
	users.DELETE("/:id", s.DeleteUser)

	orders := api.Group("/orders", s.Authenticate, s.ValidateRequest)
	orders.GET("", s.ListOrders)
	orders.POST("", s.CreateOrder)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id/status", s.ChangeOrderStatus)
	orders.POST("/:id/cancel", s.CancelOrder)
	orders.DELETE("/:id", s.DeleteOrder, s.RequireRole(user.Admin))
}
