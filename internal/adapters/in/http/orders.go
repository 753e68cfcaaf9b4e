package http

import (
	"net/http"

	"pharmadmin/internal/adapters/in/http/api"
	"pharmadmin/internal/core/application/usecases/commands"
	"pharmadmin/internal/core/application/usecases/queries"
	"pharmadmin/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params api.ListOrdersParams) error {
	opts, err := parseOrderListParams(params)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(opts.filter, opts.sortBy, opts.desc)
	if err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]api.OrderSummary, 0, len(rows))
	for _, r := range rows {
		response = append(response, toAPIOrderSummary(r))
	}
	return ctx.JSON(http.StatusOK, response)
}

// SyncOrders handles POST /api/v1/orders/sync.
func (s *Server) SyncOrders(ctx echo.Context) error {
	report, err := s.handlers.SyncOrders.Handle(ctx.Request().Context(), commands.NewSyncOrdersCommand())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPISyncReport(report))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	resp, err := s.getOrder(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrder(resp))
}

// GetOrderDetails handles GET /api/v1/orders/:id/details.
func (s *Server) GetOrderDetails(ctx echo.Context, id int64) error {
	resp, err := s.getOrder(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIOrderDetails(resp.Details))
}

// GetOrderPayment handles GET /api/v1/orders/:id/payment.
func (s *Server) GetOrderPayment(ctx echo.Context, id int64) error {
	resp, err := s.getOrder(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIPayment(resp.Payment))
}

func (s *Server) getOrder(ctx echo.Context, id int64) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}
	return s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewRemoveOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.RemoveOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return writeCancelResult(ctx, result)
}

// writeCancelResult keeps the user-facing message on refusals as well.
func writeCancelResult(ctx echo.Context, result services.CancelResult) error {
	switch result.Outcome {
	case services.Cancelled:
		return ctx.JSON(http.StatusOK, toAPICancelResult(result))
	case services.NotFound:
		return ctx.JSON(http.StatusNotFound, api.Error{Code: http.StatusNotFound, Message: result.Message})
	case services.AlreadyTerminal:
		return ctx.JSON(http.StatusConflict, api.Error{Code: http.StatusConflict, Message: result.Message})
	}
	return ctx.JSON(http.StatusInternalServerError, api.Error{
		Code:    http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	})
}
