package http

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"pharmadmin/internal/adapters/in/http/api"
	"pharmadmin/internal/core/application/usecases/commands"
	"pharmadmin/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListInTransitOrders handles GET /api/v1/in-transit-orders.
func (s *Server) ListInTransitOrders(ctx echo.Context, params api.ListInTransitOrdersParams) error {
	status, err := parseInTransitStatus(params.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewListInTransitOrdersQuery(status, params.OlderThan)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.ListInTransitOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]api.InTransitOrder, 0, len(views))
	for _, v := range views {
		response = append(response, toAPIInTransitOrder(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// SyncInTransitOrders handles POST /api/v1/in-transit-orders/sync.
func (s *Server) SyncInTransitOrders(ctx echo.Context) error {
	report, err := s.handlers.SyncInTransitOrders.Handle(ctx.Request().Context(),
		commands.NewSyncInTransitOrdersCommand())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPISyncReport(report))
}

// GetInTransitOrder handles GET /api/v1/in-transit-orders/:id.
func (s *Server) GetInTransitOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetInTransitOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetInTransitOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPIInTransitOrder(view))
}

// GetInTransitOrderProducts handles GET /api/v1/in-transit-orders/:id/products.
// Undecodable product details are reported as 422.
func (s *Server) GetInTransitOrderProducts(ctx echo.Context, id int64) error {
	query, err := queries.NewGetProductDetailsQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp, err := s.handlers.GetProductDetails.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeErrorWithParseStatus(ctx, err, http.StatusUnprocessableEntity)
	}
	return ctx.JSON(http.StatusOK, toAPIProductDetails(resp))
}

// DeleteInTransitOrder handles DELETE /api/v1/in-transit-orders/:id.
func (s *Server) DeleteInTransitOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewRemoveInTransitOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.RemoveInTransitOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelInTransitOrder handles POST /api/v1/in-transit-orders/:id/cancel.
func (s *Server) CancelInTransitOrder(ctx echo.Context, id int64) error {
	cmd, err := commands.NewCancelInTransitOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.handlers.CancelInTransitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return writeCancelResult(ctx, result)
}

// ExportInTransitOrders handles GET /api/v1/in-transit-orders/export and
// streams the report as CSV.
func (s *Server) ExportInTransitOrders(ctx echo.Context, params api.ExportInTransitOrdersParams) error {
	status, err := parseInTransitStatus(params.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewExportInTransitOrdersQuery(status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	report, err := s.handlers.ExportInTransitOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	header := ctx.Response().Header()
	header.Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.FileName))
	ctx.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(ctx.Response())
	if err = w.Write(queries.ExportColumns); err != nil {
		return err
	}
	for _, row := range report.Rows {
		if err = w.Write(row.Values()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
