package http

import (
	"net/http"

	"setralog/internal/core/application/usecases/commands"
	"setralog/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/orders?status=&search=.
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListOrdersQuery(actor, c.QueryParam("status"), c.QueryParam("search"))
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderResponse, len(views))
	for i, v := range views {
		response[i] = newOrderResponse(v)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := orderIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponse(view))
}

// CreateOrder handles POST /api/orders. The owner is always the authenticated user.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, badRequest("invalid request body"))
	}

	cmd, err := commands.NewCreateOrderCommand(actor, req.toParams())
	if err != nil {
		return s.fail(c, err)
	}
	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, newOrderResponse(queries.NewOrderView(created, "")))
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := orderIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, badRequest("invalid request body"))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, id, req.Status)
	if err != nil {
		return s.fail(c, err)
	}
	updated, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponse(queries.NewOrderView(updated, "")))
}

// CancelOrder handles POST /api/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := orderIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, id)
	if err != nil {
		return s.fail(c, err)
	}
	cancelled, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newOrderResponse(queries.NewOrderView(cancelled, "")))
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := orderIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(actor, id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func orderIDParam(c echo.Context) (int64, error) {
	var id int64
	if err := bindPathParam(c, "id", &id); err != nil {
		return 0, err
	}
	return id, nil
}
