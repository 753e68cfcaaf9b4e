// Package api describes the HTTP surface of the order desk: the OpenAPI
// document, the wire types and the echo routing that binds path and query
// parameters before calling a ServerInterface implementation.
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders/sync)
	SyncOrders(ctx echo.Context) error
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id int64) error
	// (DELETE /api/v1/orders/{id})
	DeleteOrder(ctx echo.Context, id int64) error
	// (GET /api/v1/orders/{id}/details)
	GetOrderDetails(ctx echo.Context, id int64) error
	// (GET /api/v1/orders/{id}/payment)
	GetOrderPayment(ctx echo.Context, id int64) error
	// (POST /api/v1/orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id int64) error
	// (GET /api/v1/in-transit-orders)
	ListInTransitOrders(ctx echo.Context, params ListInTransitOrdersParams) error
	// (POST /api/v1/in-transit-orders/sync)
	SyncInTransitOrders(ctx echo.Context) error
	// (GET /api/v1/in-transit-orders/export)
	ExportInTransitOrders(ctx echo.Context, params ExportInTransitOrdersParams) error
	// (GET /api/v1/in-transit-orders/{id})
	GetInTransitOrder(ctx echo.Context, id int64) error
	// (DELETE /api/v1/in-transit-orders/{id})
	DeleteInTransitOrder(ctx echo.Context, id int64) error
	// (GET /api/v1/in-transit-orders/{id}/products)
	GetInTransitOrderProducts(ctx echo.Context, id int64) error
	// (POST /api/v1/in-transit-orders/{id}/cancel)
	CancelInTransitOrder(ctx echo.Context, id int64) error
	// (GET /api/v1/summary)
	GetSummary(ctx echo.Context) error
	// (GET /api/openapi.json)
	GetOpenAPI(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	query := ctx.QueryParams()

	for _, p := range []struct {
		name string
		dest **string
	}{
		{"status", &params.Status},
		{"payment_type", &params.PaymentType},
		{"payment_status", &params.PaymentStatus},
		{"min_amount", &params.MinAmount},
		{"max_amount", &params.MaxAmount},
		{"from", &params.From},
		{"to", &params.To},
		{"sort", &params.Sort},
		{"order", &params.Order},
	} {
		if err := runtime.BindQueryParameter("form", true, false, p.name, query, p.dest); err != nil {
			return invalidParameter(p.name, err)
		}
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) SyncOrders(ctx echo.Context) error {
	return w.Handler.SyncOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrderDetails(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderDetails(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrderPayment(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderPayment(ctx, id)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ListInTransitOrders(ctx echo.Context) error {
	var params ListInTransitOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return invalidParameter("status", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "older_than", ctx.QueryParams(), &params.OlderThan); err != nil {
		return invalidParameter("older_than", err)
	}

	return w.Handler.ListInTransitOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) SyncInTransitOrders(ctx echo.Context) error {
	return w.Handler.SyncInTransitOrders(ctx)
}

func (w *ServerInterfaceWrapper) ExportInTransitOrders(ctx echo.Context) error {
	var params ExportInTransitOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return invalidParameter("status", err)
	}

	return w.Handler.ExportInTransitOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetInTransitOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetInTransitOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteInTransitOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteInTransitOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetInTransitOrderProducts(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetInTransitOrderProducts(ctx, id)
}

func (w *ServerInterfaceWrapper) CancelInTransitOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelInTransitOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) GetSummary(ctx echo.Context) error {
	return w.Handler.GetSummary(ctx)
}

func (w *ServerInterfaceWrapper) GetOpenAPI(ctx echo.Context) error {
	return w.Handler.GetOpenAPI(ctx)
}

func bindID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, invalidParameter("id", err)
	}
	return id, nil
}

func invalidParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders/sync", wrapper.SyncOrders)
	router.GET(baseURL+"/api/v1/orders/:id", wrapper.GetOrder)
	router.DELETE(baseURL+"/api/v1/orders/:id", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:id/details", wrapper.GetOrderDetails)
	router.GET(baseURL+"/api/v1/orders/:id/payment", wrapper.GetOrderPayment)
	router.POST(baseURL+"/api/v1/orders/:id/cancel", wrapper.CancelOrder)
	router.GET(baseURL+"/api/v1/in-transit-orders", wrapper.ListInTransitOrders)
	router.POST(baseURL+"/api/v1/in-transit-orders/sync", wrapper.SyncInTransitOrders)
	router.GET(baseURL+"/api/v1/in-transit-orders/export", wrapper.ExportInTransitOrders)
	router.GET(baseURL+"/api/v1/in-transit-orders/:id", wrapper.GetInTransitOrder)
	router.DELETE(baseURL+"/api/v1/in-transit-orders/:id", wrapper.DeleteInTransitOrder)
	router.GET(baseURL+"/api/v1/in-transit-orders/:id/products", wrapper.GetInTransitOrderProducts)
	router.POST(baseURL+"/api/v1/in-transit-orders/:id/cancel", wrapper.CancelInTransitOrder)
	router.GET(baseURL+"/api/v1/summary", wrapper.GetSummary)
	router.GET(baseURL+"/api/openapi.json", wrapper.GetOpenAPI)
}
