package render

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/anandita/storefront/order/pkg/response"
)

func pendingOrder() response.Order {
	return response.Order{
		ID:          2,
		CreatedAt:   time.Date(2026, time.August, 29, 10, 30, 0, 0, time.UTC),
		Status:      "pending",
		TotalAmount: decimal.RequireFromString("94.09"),
		TaxAmount:   decimal.RequireFromString("9.41"),
		GrandTotal:  decimal.RequireFromString("103.50"),
	}
}

func TestCard(t *testing.T) {
	html := Card(pendingOrder())

	assert.Contains(t, html, "Order #2")
	assert.Contains(t, html, "August 29, 2026 10:30 AM")
	// status is capitalized for display, raw for the css class
	assert.Contains(t, html, ">Pending</span>")
	assert.Contains(t, html, `order-status pending`)
	assert.Contains(t, html, "$103.50")
	assert.Contains(t, html, `href="/orders/2"`)
}

func TestList(t *testing.T) {
	assert.Contains(t, List(nil), "No orders yet")
	assert.Contains(t, List([]response.Order{pendingOrder()}), "Order #2")
}

func TestDetail(t *testing.T) {
	detail := response.OrderDetail{
		Order: pendingOrder(),
		Items: []response.OrderItem{
			{
				ProductName:  "Mug",
				ProductPrice: decimal.RequireFromString("12.00"),
				Subtotal:     decimal.RequireFromString("24.00"),
				Quantity:     2,
			},
		},
	}
	html := Detail(detail)

	assert.Contains(t, html, "Mug")
	assert.Contains(t, html, "$24.00")
	assert.Contains(t, html, "$103.50")
}
