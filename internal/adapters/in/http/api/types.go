package api

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Health struct {
	Status string `json:"status"`
}

type OrderSummary struct {
	ID               int64   `json:"id"`
	ReferenceNumber  string  `json:"reference_number,omitempty"`
	Status           string  `json:"status"`
	Step             int     `json:"step"`
	GrandTotal       float64 `json:"grand_total"`
	TotalOrderAmount float64 `json:"total_order_amount"`
	PaymentType      string  `json:"payment_type,omitempty"`
	PaymentStatus    string  `json:"payment_status,omitempty"`
	ItemCount        int     `json:"item_count"`
	Created          string  `json:"created,omitempty"`
	ModifiedAt       string  `json:"modified_at,omitempty"`
}

type OrderHeader struct {
	ID                   int64   `json:"id"`
	ReferenceNumber      string  `json:"reference_number,omitempty"`
	Source               int     `json:"source"`
	UserID               int64   `json:"user_id"`
	GrandTotal           float64 `json:"grand_total"`
	Created              string  `json:"created,omitempty"`
	Received             string  `json:"received,omitempty"`
	StoreID              string  `json:"store_id,omitempty"`
	StoreProcessingOrder string  `json:"store_processing_order,omitempty"`
	ModifiedAt           string  `json:"modified_at,omitempty"`
	StatusID             int     `json:"status_id"`
	StatusDescription    string  `json:"status_description"`
}

type OrderDetail struct {
	ID              int64   `json:"id"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	ProductID       string  `json:"product_id,omitempty"`
	ItemName        string  `json:"item_name,omitempty"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	SubTotal        float64 `json:"sub_total"`
}

type Payment struct {
	ID                  int64   `json:"id"`
	ReferenceNumber     string  `json:"reference_number,omitempty"`
	PaymentStatus       string  `json:"payment_status,omitempty"`
	PaymentType         string  `json:"payment_type,omitempty"`
	TransactionID       string  `json:"transaction_id,omitempty"`
	DeliveryCharges     float64 `json:"delivery_charges"`
	PackagingCost       float64 `json:"packaging_cost"`
	PromotionalDiscount float64 `json:"promotional_discount"`
	CustomDiscount      float64 `json:"custom_discount"`
	TotalOrderAmount    float64 `json:"total_order_amount"`
}

type Reconciliation struct {
	Expected   float64 `json:"expected"`
	Charged    float64 `json:"charged"`
	Difference float64 `json:"difference"`
	Balanced   bool    `json:"balanced"`
}

type Order struct {
	Header              OrderHeader    `json:"header"`
	Details             []OrderDetail  `json:"details"`
	DetailsTotal        float64        `json:"details_total"`
	Payment             Payment        `json:"payment"`
	Reconciliation      Reconciliation `json:"reconciliation"`
	MismatchedDetailIDs []int64        `json:"mismatched_detail_ids,omitempty"`
	Step                int            `json:"step"`
	Cancellable         bool           `json:"cancellable"`
}

type InTransitOrder struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	CartID          int64   `json:"cart_id"`
	CustomerPhone   string  `json:"customer_phone,omitempty"`
	CustomerAddress string  `json:"customer_address,omitempty"`
	PaymentMode     string  `json:"payment_mode,omitempty"`
	AmountPaid      float64 `json:"amount_paid"`
	Balance         float64 `json:"balance"`
	ProductDetails  string  `json:"product_details,omitempty"`
	OrderStatus     string  `json:"order_status"`
	StatusSlug      string  `json:"status_slug"`
	Step            int     `json:"step"`
	Cancellable     bool    `json:"cancellable"`
	CreatedOn       string  `json:"created_on,omitempty"`
	DaysSinceOrder  int     `json:"days_since_order"`
}

type ProductLine struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Amount   float64 `json:"amount"`
}

type ProductDetails struct {
	OrderID  int64         `json:"order_id"`
	Products []ProductLine `json:"products"`
	Total    float64       `json:"total"`
}

type CancelResult struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

type SyncReport struct {
	CycleID string `json:"cycle_id"`
	Loaded  int    `json:"loaded"`
	Skipped int    `json:"skipped"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type SyncState struct {
	Ran         bool   `json:"ran"`
	CycleID     string `json:"cycle_id,omitempty"`
	LastSuccess string `json:"last_success,omitempty"`
	FinishedAt  string `json:"finished_at,omitempty"`
	Loaded      int    `json:"loaded"`
	Skipped     int    `json:"skipped"`
	LastError   string `json:"last_error,omitempty"`
}

type CollectionSummary struct {
	Total    int           `json:"total"`
	ByStatus []StatusCount `json:"by_status"`
	Sync     SyncState     `json:"sync"`
}

type Summary struct {
	Orders          CollectionSummary `json:"orders"`
	InTransitOrders CollectionSummary `json:"in_transit_orders"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status        *string `form:"status,omitempty" json:"status,omitempty"`
	PaymentType   *string `form:"payment_type,omitempty" json:"payment_type,omitempty"`
	PaymentStatus *string `form:"payment_status,omitempty" json:"payment_status,omitempty"`
	MinAmount     *string `form:"min_amount,omitempty" json:"min_amount,omitempty"`
	MaxAmount     *string `form:"max_amount,omitempty" json:"max_amount,omitempty"`
	From          *string `form:"from,omitempty" json:"from,omitempty"`
	To            *string `form:"to,omitempty" json:"to,omitempty"`
	Sort          *string `form:"sort,omitempty" json:"sort,omitempty"`
	Order         *string `form:"order,omitempty" json:"order,omitempty"`
}

// ListInTransitOrdersParams defines parameters for ListInTransitOrders.
type ListInTransitOrdersParams struct {
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	OlderThan *int    `form:"older_than,omitempty" json:"older_than,omitempty"`
}

// ExportInTransitOrdersParams defines parameters for ExportInTransitOrders.
type ExportInTransitOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}
