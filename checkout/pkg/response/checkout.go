package response

import "github.com/shopspring/decimal"

// Confirmation is the order-creation reply: the new order id and the
// authoritative grand total computed server-side.
type Confirmation struct {
	OrderID    int64           `json:"order_id"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
