package render

import (
	"fmt"
	"strings"

	"github.com/anandita/storefront/internal/markup"
	"github.com/anandita/storefront/internal/money"
	"github.com/anandita/storefront/order/pkg/response"
)

const itemPlaceholder = "https://via.placeholder.com/80x80?text=Product"

const dateLayout = "January 2, 2006 03:04 PM"

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Card renders one order of the history list.
func Card(order response.Order) string {
	return fmt.Sprintf(`<div class="order-card">
  <div class="order-header">
    <div>
      <div class="order-number">Order #%d</div>
      <div class="order-date">%s</div>
    </div>
    <span class="order-status %s">%s</span>
  </div>
  <div class="order-footer">
    <div class="order-total">
      <div class="order-total-row"><span>Subtotal:</span><span>%s</span></div>
      <div class="order-total-row"><span>Tax:</span><span>%s</span></div>
      <div class="order-total-row grand"><span>Grand Total:</span><span>%s</span></div>
    </div>
    <div class="order-actions">
      <a href="/orders/%d" class="btn btn-primary">View Details</a>
    </div>
  </div>
</div>`,
		order.ID,
		order.CreatedAt.Format(dateLayout),
		markup.Escape(order.Status),
		markup.Escape(capitalizeFirst(order.Status)),
		money.Format(order.TotalAmount),
		money.Format(order.TaxAmount),
		money.Format(order.GrandTotal),
		order.ID,
	)
}

// List renders the history, or the empty state for a customer without orders.
func List(orders []response.Order) string {
	if len(orders) == 0 {
		return `<div class="empty-state"><h2>No orders yet</h2><a href="/shop" class="btn btn-primary">Start Shopping</a></div>`
	}
	cards := make([]string, len(orders))
	for i, order := range orders {
		cards[i] = Card(order)
	}
	return `<div class="orders-list">` + strings.Join(cards, "\n") + `</div>`
}

func itemRow(item response.OrderItem) string {
	return fmt.Sprintf(`<div class="order-item-row">
  <div class="order-item-image"><img src=%q alt=%q></div>
  <div class="order-item-details">
    <h4>%s</h4>
    <div class="item-meta">Price: %s</div>
  </div>
  <div class="order-item-quantity">Qty: %d</div>
  <div class="order-item-price">%s</div>
</div>`,
		markup.OrPlaceholder(item.ImageUrl, itemPlaceholder),
		markup.Escape(item.ProductName),
		markup.Escape(item.ProductName),
		money.Format(item.ProductPrice),
		item.Quantity,
		money.Format(item.Subtotal),
	)
}

// Detail renders the full order view with its line-item snapshots.
func Detail(order response.OrderDetail) string {
	rows := make([]string, len(order.Items))
	for i, item := range order.Items {
		rows[i] = itemRow(item)
	}

	return fmt.Sprintf(`<div class="order-detail">
  <div class="order-detail-header">
    <h2>Order #%d</h2>
    <span class="order-status %s">%s</span>
  </div>
  <div class="order-detail-date">%s</div>
  <div class="order-items-section">
    <h3>Order Items</h3>
    <div class="order-items-list">%s</div>
  </div>
  <div class="order-summary-section">
    <div class="order-total">
      <div class="order-total-row"><span>Subtotal:</span><span>%s</span></div>
      <div class="order-total-row"><span>Tax (10%%):</span><span>%s</span></div>
      <div class="order-total-row grand"><span>Grand Total:</span><span>%s</span></div>
    </div>
  </div>
</div>`,
		order.ID,
		markup.Escape(order.Status),
		markup.Escape(capitalizeFirst(order.Status)),
		order.CreatedAt.Format(dateLayout),
		strings.Join(rows, "\n"),
		money.Format(order.TotalAmount),
		money.Format(order.TaxAmount),
		money.Format(order.GrandTotal),
	)
}
