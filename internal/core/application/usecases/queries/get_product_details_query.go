package queries

import (
	"errors"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/shipment"
	"pharmadmin/internal/pkg/guard"
)

var (
	ErrGetProductDetailsQueryIsNotConstructed = errors.New(
		"GetProductDetailsQuery must be created via NewGetProductDetailsQuery constructor",
	)
)

// GetProductDetailsQuery decodes the product list embedded in an in-transit record.
type GetProductDetailsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetProductDetailsQuery(orderID int64) (GetProductDetailsQuery, error) {
	if err := validateOrderID(orderID); err != nil {
		return GetProductDetailsQuery{}, err
	}
	return GetProductDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductDetailsQueryIsNotConstructed)
}

func (q GetProductDetailsQuery) OrderID() int64 {
	return q.orderID
}

// ProductLine is one decoded product, keyed by its code.
type ProductLine struct {
	Code     string
	Name     string
	Quantity int
	Price    kernel.Money
	Amount   kernel.Money
}

// GetProductDetailsQueryResponse lists the products in code order.
type GetProductDetailsQueryResponse struct {
	OrderID  int64
	Products []ProductLine
	Total    kernel.Money
}

func newProductDetailsResponse(orderID int64, details shipment.ProductDetailsMap) GetProductDetailsQueryResponse {
	lines := make([]ProductLine, 0, len(details))
	for _, code := range details.Codes() {
		p := details[code]
		lines = append(lines, ProductLine{
			Code:     code,
			Name:     p.Name,
			Quantity: p.Quantity,
			Price:    p.Price,
			Amount:   p.Price.Times(p.Quantity),
		})
	}
	return GetProductDetailsQueryResponse{
		OrderID:  orderID,
		Products: lines,
		Total:    details.Total(),
	}
}
