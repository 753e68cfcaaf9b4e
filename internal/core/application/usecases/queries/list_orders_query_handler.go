package queries

import (
	"context"
	"time"

	"pharmadmin/internal/core/domain/services"
)

// ListOrdersQueryHandler filters and sorts the order index.
type ListOrdersQueryHandler struct {
	reader OrderReader
}

func NewListOrdersQueryHandler(reader OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle returns an empty slice, never nil, when nothing matches.
func (h ListOrdersQueryHandler) Handle(_ context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	matched := h.reader.Filter(query.Filter())
	services.SortOrders(matched, query.SortBy(), query.Desc())

	rows := make([]ListOrdersQueryResponse, 0, len(matched))
	for _, o := range matched {
		header := o.Header()
		payment := o.Payment()
		rows = append(rows, ListOrdersQueryResponse{
			ID:               header.ID,
			ReferenceNumber:  header.ReferenceNumber,
			Status:           header.StatusLabel(),
			Step:             header.Status.Step(),
			GrandTotal:       header.GrandTotal,
			TotalOrderAmount: payment.TotalOrderAmount,
			PaymentType:      payment.PaymentType,
			PaymentStatus:    payment.PaymentStatus,
			ItemCount:        o.ItemCount(),
			Created:          formatTime(header.Created),
			ModifiedAt:       formatTime(header.ModifiedAt),
		})
	}

	return rows, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
