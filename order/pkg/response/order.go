package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one entry of the read-only order history. Status is a lifecycle
// label owned by the remote service (pending, processing, completed, ...).
type Order struct {
	CreatedAt   time.Time       `json:"created_at"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	ID          int64           `json:"id"`
}

// OrderItem is a snapshot of the ordered line: product name and price as they
// were at checkout time.
type OrderItem struct {
	ProductName  string          `json:"product_name"`
	ImageUrl     string          `json:"image_url"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Quantity     int             `json:"quantity"`
}

type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}

type Orders struct {
	Orders []Order `json:"orders"`
}

type OrderDetailEnvelope struct {
	Order OrderDetail `json:"order"`
}
