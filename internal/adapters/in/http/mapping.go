package http

import (
	"time"

	"pharmadmin/internal/adapters/in/http/api"
	"pharmadmin/internal/core/application/usecases/commands"
	"pharmadmin/internal/core/application/usecases/queries"
	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/services"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func toAPIOrderSummary(r queries.ListOrdersQueryResponse) api.OrderSummary {
	return api.OrderSummary{
		ID:               r.ID,
		ReferenceNumber:  r.ReferenceNumber,
		Status:           r.Status,
		Step:             r.Step,
		GrandTotal:       r.GrandTotal.Float64(),
		TotalOrderAmount: r.TotalOrderAmount.Float64(),
		PaymentType:      r.PaymentType,
		PaymentStatus:    r.PaymentStatus,
		ItemCount:        r.ItemCount,
		Created:          r.Created,
		ModifiedAt:       r.ModifiedAt,
	}
}

func toAPIOrderHeader(h order.Header) api.OrderHeader {
	return api.OrderHeader{
		ID:                   h.ID,
		ReferenceNumber:      h.ReferenceNumber,
		Source:               h.Source,
		UserID:               h.UserID,
		GrandTotal:           h.GrandTotal.Float64(),
		Created:              formatTime(h.Created),
		Received:             formatTime(h.Received),
		StoreID:              h.StoreID,
		StoreProcessingOrder: h.StoreProcessingOrder,
		ModifiedAt:           formatTime(h.ModifiedAt),
		StatusID:             h.StatusID,
		StatusDescription:    h.StatusLabel(),
	}
}

func toAPIOrderDetails(details []order.Detail) []api.OrderDetail {
	out := make([]api.OrderDetail, 0, len(details))
	for _, d := range details {
		out = append(out, api.OrderDetail{
			ID:              d.ID,
			ReferenceNumber: d.ReferenceNumber,
			ProductID:       d.ProductID,
			ItemName:        d.ItemName,
			Quantity:        d.Quantity,
			UnitPrice:       d.UnitPrice.Float64(),
			SubTotal:        d.SubTotal.Float64(),
		})
	}
	return out
}

func toAPIPayment(p order.Payment) api.Payment {
	return api.Payment{
		ID:                  p.ID,
		ReferenceNumber:     p.ReferenceNumber,
		PaymentStatus:       p.PaymentStatus,
		PaymentType:         p.PaymentType,
		TransactionID:       p.TransactionID,
		DeliveryCharges:     p.DeliveryCharges.Float64(),
		PackagingCost:       p.PackagingCost.Float64(),
		PromotionalDiscount: p.PromotionalDiscount.Float64(),
		CustomDiscount:      p.CustomDiscount.Float64(),
		TotalOrderAmount:    p.TotalOrderAmount.Float64(),
	}
}

func toAPIOrder(r queries.GetOrderQueryResponse) api.Order {
	var mismatched []int64
	for _, d := range r.MismatchedDetails {
		mismatched = append(mismatched, d.ID)
	}

	return api.Order{
		Header:       toAPIOrderHeader(r.Header),
		Details:      toAPIOrderDetails(r.Details),
		DetailsTotal: r.DetailsTotal.Float64(),
		Payment:      toAPIPayment(r.Payment),
		Reconciliation: api.Reconciliation{
			Expected:   r.Reconciliation.Expected.Float64(),
			Charged:    r.Reconciliation.Charged.Float64(),
			Difference: r.Reconciliation.Difference.Float64(),
			Balanced:   r.Reconciliation.Balanced(),
		},
		MismatchedDetailIDs: mismatched,
		Step:                r.Step,
		Cancellable:         r.Cancellable,
	}
}

func toAPIInTransitOrder(v queries.InTransitOrderView) api.InTransitOrder {
	o := v.Order
	return api.InTransitOrder{
		ID:              o.ID,
		UserID:          o.UserID,
		CartID:          o.CartID,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		PaymentMode:     o.PaymentMode,
		AmountPaid:      o.AmountPaid.Float64(),
		Balance:         o.Balance.Float64(),
		ProductDetails:  o.ProductDetails,
		OrderStatus:     v.StatusLabel,
		StatusSlug:      v.StatusSlug,
		Step:            v.Step,
		Cancellable:     v.Cancellable,
		CreatedOn:       formatTime(o.CreatedOn),
		DaysSinceOrder:  o.DaysSinceOrder,
	}
}

func toAPIProductDetails(r queries.GetProductDetailsQueryResponse) api.ProductDetails {
	lines := make([]api.ProductLine, 0, len(r.Products))
	for _, p := range r.Products {
		lines = append(lines, api.ProductLine{
			Code:     p.Code,
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.Price.Float64(),
			Amount:   p.Amount.Float64(),
		})
	}
	return api.ProductDetails{OrderID: r.OrderID, Products: lines, Total: r.Total.Float64()}
}

func toAPICancelResult(r services.CancelResult) api.CancelResult {
	return api.CancelResult{Outcome: r.Outcome.String(), Message: r.Message}
}

func toAPISyncReport(r commands.SyncReport) api.SyncReport {
	return api.SyncReport{CycleID: r.CycleID, Loaded: r.Loaded, Skipped: r.Skipped}
}

func toAPICollectionSummary(c queries.CollectionSummary) api.CollectionSummary {
	byStatus := make([]api.StatusCount, 0, len(c.ByStatus))
	for _, s := range c.ByStatus {
		byStatus = append(byStatus, api.StatusCount{Status: s.Status, Count: s.Count})
	}
	return api.CollectionSummary{
		Total:    c.Total,
		ByStatus: byStatus,
		Sync: api.SyncState{
			Ran:         c.Sync.Ran,
			CycleID:     c.Sync.CycleID,
			LastSuccess: formatTime(c.Sync.LastSuccess),
			FinishedAt:  formatTime(c.Sync.FinishedAt),
			Loaded:      c.Sync.Loaded,
			Skipped:     c.Sync.Skipped,
			LastError:   c.Sync.LastError,
		},
	}
}

func toAPISummary(r queries.GetStatusSummaryQueryResponse) api.Summary {
	return api.Summary{
		Orders:          toAPICollectionSummary(r.Orders),
		InTransitOrders: toAPICollectionSummary(r.InTransitOrders),
	}
}
