package queries

import (
	"context"
)

// GetProductDetailsQueryHandler decodes the product_details of one record.
type GetProductDetailsQueryHandler struct {
	reader InTransitOrderReader
}

func NewGetProductDetailsQueryHandler(reader InTransitOrderReader) GetProductDetailsQueryHandler {
	return GetProductDetailsQueryHandler{reader: reader}
}

// Handle fails with errs.ErrObjectNotFound for unknown ids and with
// errs.ErrPayloadIsMalformed when the stored JSON cannot be decoded.
func (h GetProductDetailsQueryHandler) Handle(
	_ context.Context,
	query GetProductDetailsQuery,
) (GetProductDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductDetailsQueryResponse{}, err
	}

	details, err := h.reader.GetParsedProductDetails(query.OrderID())
	if err != nil {
		return GetProductDetailsQueryResponse{}, err
	}
	return newProductDetailsResponse(query.OrderID(), details), nil
}
