package render

import (
	"fmt"

	"github.com/anandita/storefront/checkout/pkg/response"
	"github.com/anandita/storefront/internal/money"
)

// Confirmation renders the order-placed surface with the new order number
// and the server's grand total.
func Confirmation(confirmation response.Confirmation) string {
	return fmt.Sprintf(`<div class="success-popup">
  <h2>Order Placed Successfully!</h2>
  <p>Your order has been confirmed and is being processed.</p>
  <div class="order-summary-popup">
    <div class="summary-item"><span>Order Number:</span><strong>#%d</strong></div>
    <div class="summary-item"><span>Total Amount:</span><strong class="total-highlight">%s</strong></div>
  </div>
  <div class="popup-actions">
    <a href="/orders" class="btn btn-primary">View My Orders</a>
    <a href="/shop" class="btn btn-secondary">Continue Shopping</a>
  </div>
</div>`,
		confirmation.OrderID,
		money.Format(confirmation.GrandTotal),
	)
}
