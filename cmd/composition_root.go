package cmd

import (
	"log/slog"
	"net/http"

	httpadapter "pharmadmin/internal/adapters/in/http"
	"pharmadmin/internal/adapters/out/backend"
	"pharmadmin/internal/core/application/usecases/commands"
	"pharmadmin/internal/core/application/usecases/queries"
	"pharmadmin/internal/core/domain/services"
	"pharmadmin/internal/jobs"
)

// CompositionRoot owns the process-wide state: the two in-memory indexes,
// the sync bookkeeping and the backend client.
type CompositionRoot struct {
	config    Config
	logger    *slog.Logger
	orders    *services.OrderManager
	inTransit *services.InTransitOrderManager
	syncs     *services.SyncStatus
	backend   *backend.Client
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	client, err := backend.NewClient(config.BackendConfig(), &http.Client{}, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:    config,
		logger:    logger,
		orders:    services.NewOrderManager(),
		inTransit: services.NewInTransitOrderManager(),
		syncs:     services.NewSyncStatus(),
		backend:   client,
	}, nil
}

func (c *CompositionRoot) CreateSyncOrdersCommandHandler() commands.SyncOrdersCommandHandler {
	return commands.NewSyncOrdersCommandHandler(c.backend, c.orders, c.syncs, c.logger)
}

func (c *CompositionRoot) CreateSyncInTransitOrdersCommandHandler() commands.SyncInTransitOrdersCommandHandler {
	return commands.NewSyncInTransitOrdersCommandHandler(c.backend, c.inTransit, c.syncs, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders, c.logger)
}

func (c *CompositionRoot) CreateCancelInTransitOrderCommandHandler() commands.CancelInTransitOrderCommandHandler {
	return commands.NewCancelInTransitOrderCommandHandler(c.inTransit, c.logger)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateRemoveInTransitOrderCommandHandler() commands.RemoveInTransitOrderCommandHandler {
	return commands.NewRemoveInTransitOrderCommandHandler(c.inTransit)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListInTransitOrdersQueryHandler() queries.ListInTransitOrdersQueryHandler {
	return queries.NewListInTransitOrdersQueryHandler(c.inTransit)
}

func (c *CompositionRoot) CreateGetInTransitOrderQueryHandler() queries.GetInTransitOrderQueryHandler {
	return queries.NewGetInTransitOrderQueryHandler(c.inTransit)
}

func (c *CompositionRoot) CreateGetProductDetailsQueryHandler() queries.GetProductDetailsQueryHandler {
	return queries.NewGetProductDetailsQueryHandler(c.inTransit)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.orders, c.inTransit, c.syncs)
}

func (c *CompositionRoot) CreateExportInTransitOrdersQueryHandler() queries.ExportInTransitOrdersQueryHandler {
	return queries.NewExportInTransitOrdersQueryHandler(c.inTransit, c.logger)
}

// CreateJobManager wires the sync jobs to their own handler instances.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	orderSync := c.CreateSyncOrdersCommandHandler()
	inTransitSync := c.CreateSyncInTransitOrdersCommandHandler()
	return jobs.NewJobManager(&orderSync, &inTransitSync, c.config.SyncSchedule, c.logger)
}

// CreateHTTPServer builds the echo server implementing the API.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		SyncOrders:           c.CreateSyncOrdersCommandHandler(),
		SyncInTransitOrders:  c.CreateSyncInTransitOrdersCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		CancelInTransitOrder: c.CreateCancelInTransitOrderCommandHandler(),
		RemoveOrder:          c.CreateRemoveOrderCommandHandler(),
		RemoveInTransitOrder: c.CreateRemoveInTransitOrderCommandHandler(),

		ListOrders:            c.CreateListOrdersQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		ListInTransitOrders:   c.CreateListInTransitOrdersQueryHandler(),
		GetInTransitOrder:     c.CreateGetInTransitOrderQueryHandler(),
		GetProductDetails:     c.CreateGetProductDetailsQueryHandler(),
		GetStatusSummary:      c.CreateGetStatusSummaryQueryHandler(),
		ExportInTransitOrders: c.CreateExportInTransitOrdersQueryHandler(),
	}, c.logger)
}
