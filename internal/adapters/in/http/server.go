package http

import (
	"log/slog"
	"net/http"

	"pharmadmin/internal/adapters/in/http/api"
	"pharmadmin/internal/core/application/usecases/commands"
	"pharmadmin/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

var _ api.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	// Command handlers
	SyncOrders           commands.SyncOrdersCommandHandler
	SyncInTransitOrders  commands.SyncInTransitOrdersCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	CancelInTransitOrder commands.CancelInTransitOrderCommandHandler
	RemoveOrder          commands.RemoveOrderCommandHandler
	RemoveInTransitOrder commands.RemoveInTransitOrderCommandHandler

	// Query handlers
	ListOrders            queries.ListOrdersQueryHandler
	GetOrder              queries.GetOrderQueryHandler
	ListInTransitOrders   queries.ListInTransitOrdersQueryHandler
	GetInTransitOrder     queries.GetInTransitOrderQueryHandler
	GetProductDetails     queries.GetProductDetailsQueryHandler
	GetStatusSummary      queries.GetStatusSummaryQueryHandler
	ExportInTransitOrders queries.ExportInTransitOrdersQueryHandler
}

// Server implements api.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.Health{Status: "Healthy"})
}

// GetSummary handles GET /api/v1/summary.
func (s *Server) GetSummary(ctx echo.Context) error {
	summary, err := s.handlers.GetStatusSummary.Handle(ctx.Request().Context(), queries.NewGetStatusSummaryQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toAPISummary(summary))
}

// GetOpenAPI handles GET /api/openapi.json.
func (s *Server) GetOpenAPI(ctx echo.Context) error {
	data, err := api.SwaggerJSON()
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSONBlob(http.StatusOK, data)
}
