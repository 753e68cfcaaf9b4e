package queries

import (
	"errors"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/pkg/guard"
)

var (
	ErrExportInTransitOrdersQueryIsNotConstructed = errors.New(
		"ExportInTransitOrdersQuery must be created via NewExportInTransitOrdersQuery constructor",
	)
)

// ExportColumns are the export headers in column order.
var ExportColumns = []string{
	"Order ID",
	"Status",
	"Order Date",
	"Customer ID",
	"Payment Mode",
	"Total Amount",
	"Days Since Order",
	"Number of Items",
}

// ExportInTransitOrdersQuery builds the report rows for one status, or for
// every record when status is nil.
type ExportInTransitOrdersQuery struct {
	status *shipment.Status

	guard guard.ConstructorGuard
}

func NewExportInTransitOrdersQuery(status *shipment.Status) (ExportInTransitOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ExportInTransitOrdersQuery{}, err
		}
	}
	return ExportInTransitOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ExportInTransitOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportInTransitOrdersQueryIsNotConstructed)
}

// Status returns the status filter and whether it is set.
func (q ExportInTransitOrdersQuery) Status() (shipment.Status, bool) {
	if q.status == nil {
		return shipment.Unknown, false
	}
	return *q.status, true
}

// ExportRow is one report line.
type ExportRow struct {
	OrderID        int64
	Status         string
	OrderDate      string
	CustomerID     int64
	PaymentMode    string
	TotalAmount    kernel.Money
	DaysSinceOrder int
	// NumberOfItems counts distinct product codes; it is 0 when the
	// product list cannot be decoded.
	NumberOfItems int
}

// Values returns the row as strings in ExportColumns order.
func (r ExportRow) Values() []string {
	return []string{
		formatInt(r.OrderID),
		r.Status,
		r.OrderDate,
		formatInt(r.CustomerID),
		r.PaymentMode,
		"KSh " + r.TotalAmount.String(),
		formatInt(int64(r.DaysSinceOrder)),
		formatInt(int64(r.NumberOfItems)),
	}
}

type ExportInTransitOrdersQueryResponse struct {
	FileName string
	Rows     []ExportRow
}
