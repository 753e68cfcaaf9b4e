package queries

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// ExportInTransitOrdersQueryHandler produces the in-transit report.
type ExportInTransitOrdersQueryHandler struct {
	reader InTransitOrderReader
	logger *slog.Logger
	now    func() time.Time
}

func NewExportInTransitOrdersQueryHandler(
	reader InTransitOrderReader,
	logger *slog.Logger,
) ExportInTransitOrdersQueryHandler {
	return ExportInTransitOrdersQueryHandler{
		reader: reader,
		logger: logger.With("component", "export_in_transit_orders"),
		now:    time.Now,
	}
}

// Handle names the file intransit_orders_<status>_<date>.csv, using "all"
// when no status is selected.
func (h ExportInTransitOrdersQueryHandler) Handle(
	ctx context.Context,
	query ExportInTransitOrdersQuery,
) (ExportInTransitOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportInTransitOrdersQueryResponse{}, err
	}

	label := "all"
	orders := h.reader.GetAllOrders()
	if status, ok := query.Status(); ok {
		label = status.Slug()
		orders = h.reader.GetOrdersByStatus(status)
	}

	rows := make([]ExportRow, 0, len(orders))
	for _, o := range orders {
		items := 0
		if details, err := o.ParsedProductDetails(); err != nil {
			h.logger.WarnContext(ctx, "Exporting record with unreadable product details",
				"order_id", o.ID, "error", err)
		} else {
			items = len(details)
		}

		orderDate := ""
		if !o.CreatedOn.IsZero() {
			orderDate = o.CreatedOn.Format(time.DateOnly)
		}

		rows = append(rows, ExportRow{
			OrderID:        o.ID,
			Status:         o.StatusLabel(),
			OrderDate:      orderDate,
			CustomerID:     o.UserID,
			PaymentMode:    o.PaymentMode,
			TotalAmount:    o.AmountPaid,
			DaysSinceOrder: o.DaysSinceOrder,
			NumberOfItems:  items,
		})
	}

	return ExportInTransitOrdersQueryResponse{
		FileName: fmt.Sprintf("intransit_orders_%s_%s.csv", label, h.now().UTC().Format(time.DateOnly)),
		Rows:     rows,
	}, nil
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
