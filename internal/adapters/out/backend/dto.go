package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"pharmadmin/internal/core/domain/model/kernel"
	"pharmadmin/internal/core/domain/model/order"
	"pharmadmin/internal/core/domain/model/shipment"
)

// looseString accepts a JSON string, number or null. The backend is not
// consistent about quoting reference numbers and phone numbers.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = looseString(n.String())
	return nil
}

// embeddedJSON accepts either a JSON string holding a document or the
// document itself, and keeps the document text.
type embeddedJSON string

func (e *embeddedJSON) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*e = embeddedJSON(v)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*e = ""
		return nil
	}
	*e = embeddedJSON(data)
	return nil
}

type orderDTO struct {
	Header  headerDTO   `json:"header"`
	Details []detailDTO `json:"details"`
	Payment *paymentDTO `json:"payment"`
}

type headerDTO struct {
	ID                   int64        `json:"id"`
	RFN                  looseString  `json:"rfn"`
	Src                  int          `json:"src"`
	UserID               int64        `json:"user_id"`
	GrandTotal           kernel.Money `json:"grand_total"`
	Created              string       `json:"created"`
	Received             string       `json:"received"`
	StoreID              looseString  `json:"store_id"`
	StoreProcessingOrder looseString  `json:"store_processing_order"`
	ModifiedAt           string       `json:"modified_at"`
	StatusID             int          `json:"status_id"`
	StatusDescription    string       `json:"status_description"`
}

type detailDTO struct {
	ID        int64        `json:"id"`
	RFN       looseString  `json:"rfn"`
	ProductID looseString  `json:"product_id"`
	ItemName  string       `json:"item_name"`
	Qty       int          `json:"qty"`
	UnitPrice kernel.Money `json:"unit_price"`
	SubTotal  kernel.Money `json:"sub_total"`
}

type paymentDTO struct {
	ID                   int64        `json:"id"`
	RFN                  looseString  `json:"rfn"`
	PaymentStatus        string       `json:"payment_status"`
	PaymentType          string       `json:"payment_type"`
	PaymentTransactionID looseString  `json:"payment_transaction_id"`
	DeliveryCharges      kernel.Money `json:"delivery_charges"`
	PackagingCost        kernel.Money `json:"packaging_cost"`
	PromotionalDiscount  kernel.Money `json:"promotional_discount"`
	CustomDiscount       kernel.Money `json:"custom_discount"`
	TotalOrderAmount     kernel.Money `json:"total_order_amount"`
}

type inTransitOrderDTO struct {
	ID              int64        `json:"id"`
	UserID          int64        `json:"user_id"`
	CartID          int64        `json:"cart_id"`
	CustomerPhone   looseString  `json:"customer_phone"`
	CustomerAddress string       `json:"customer_address"`
	PaymentMode     string       `json:"payment_mode"`
	AmountPaid      kernel.Money `json:"amount_paid"`
	Balance         kernel.Money `json:"balance"`
	ProductDetails  embeddedJSON `json:"product_details"`
	OrderStatus     string       `json:"order_status"`
	CreatedOn       string       `json:"created_on"`
	DaysSinceOrder  int          `json:"days_since_order"`
}

func (d orderDTO) toDomain() (*order.Order, error) {
	created, createdErr := kernel.ParseTimestamp("header.created", d.Header.Created)
	received, receivedErr := kernel.ParseTimestamp("header.received", d.Header.Received)
	modified, modifiedErr := kernel.ParseTimestamp("header.modified_at", d.Header.ModifiedAt)
	if err := errors.Join(createdErr, receivedErr, modifiedErr); err != nil {
		return nil, err
	}

	header := order.NewHeader(d.Header.ID, strings.TrimSpace(d.Header.StatusDescription))
	header.ReferenceNumber = string(d.Header.RFN)
	header.Source = d.Header.Src
	header.UserID = d.Header.UserID
	header.GrandTotal = d.Header.GrandTotal
	header.Created = created
	header.Received = received
	header.StoreID = string(d.Header.StoreID)
	header.StoreProcessingOrder = string(d.Header.StoreProcessingOrder)
	header.ModifiedAt = modified
	header.StatusID = d.Header.StatusID

	details := make([]order.Detail, 0, len(d.Details))
	for _, dd := range d.Details {
		details = append(details, order.Detail{
			ID:              dd.ID,
			ReferenceNumber: string(dd.RFN),
			ProductID:       string(dd.ProductID),
			ItemName:        dd.ItemName,
			Quantity:        dd.Qty,
			UnitPrice:       dd.UnitPrice,
			SubTotal:        dd.SubTotal,
		})
	}

	var payment order.Payment
	if p := d.Payment; p != nil {
		payment = order.Payment{
			ID:                  p.ID,
			ReferenceNumber:     string(p.RFN),
			PaymentStatus:       p.PaymentStatus,
			PaymentType:         p.PaymentType,
			TransactionID:       string(p.PaymentTransactionID),
			DeliveryCharges:     p.DeliveryCharges,
			PackagingCost:       p.PackagingCost,
			PromotionalDiscount: p.PromotionalDiscount,
			CustomDiscount:      p.CustomDiscount,
			TotalOrderAmount:    p.TotalOrderAmount,
		}
	}

	return order.NewOrder(header, details, payment)
}

func (d inTransitOrderDTO) toDomain() (shipment.InTransitOrder, error) {
	createdOn, err := kernel.ParseTimestamp("created_on", d.CreatedOn)
	if err != nil {
		return shipment.InTransitOrder{}, err
	}

	o := shipment.NewInTransitOrder(d.ID, strings.TrimSpace(d.OrderStatus))
	o.UserID = d.UserID
	o.CartID = d.CartID
	o.CustomerPhone = string(d.CustomerPhone)
	o.CustomerAddress = d.CustomerAddress
	o.PaymentMode = d.PaymentMode
	o.AmountPaid = d.AmountPaid
	o.Balance = d.Balance
	o.ProductDetails = string(d.ProductDetails)
	o.CreatedOn = createdOn
	o.DaysSinceOrder = d.DaysSinceOrder

	if err = o.Validate(); err != nil {
		return shipment.InTransitOrder{}, err
	}
	return o, nil
}
