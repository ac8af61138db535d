package render

import (
	"fmt"
	"strings"

	"github.com/anandita/storefront/cart/pkg/response"
	"github.com/anandita/storefront/internal/markup"
	"github.com/anandita/storefront/internal/money"
)

const itemPlaceholder = "https://via.placeholder.com/150x150?text=Product"

// Item renders one cart row. The quantity input is clamped to [1, stock] in
// the markup; the server clamp stays authoritative on reload. The +/- buttons
// post an op applied to the displayed quantity so a stale row can never skip
// ahead; the hidden leading submit keeps plain Enter from activating the
// minus button.
func Item(item response.CartItem) string {
	plusDisabled := ""
	if item.Quantity >= item.Stock {
		plusDisabled = " disabled"
	}

	return fmt.Sprintf(`<div class="cart-item" data-cart-id="%d">
  <div class="cart-item-image"><img src=%q alt=%q></div>
  <div class="cart-item-details">
    <h3>%s</h3>
    <p class="item-description">%s</p>
    <div class="item-price">%s</div>
  </div>
  <div class="cart-item-quantity">
    <form method="post" action="/cart/items/%d/quantity">
      <button type="submit" class="qty-default" hidden></button>
      <button type="submit" name="op" value="dec" class="qty-btn">-</button>
      <input type="number" name="quantity" value="%d" min="1" max="%d" class="qty-input">
      <button type="submit" name="op" value="inc" class="qty-btn"%s>+</button>
    </form>
    <div class="stock-info">Max: %d</div>
  </div>
  <div class="cart-item-subtotal">
    <div class="subtotal-label">Subtotal:</div>
    <div class="subtotal-amount">%s</div>
  </div>
  <div class="cart-item-remove">
    <form method="post" action="/cart/items/%d/remove">
      <button type="submit" class="btn-icon btn-delete">Remove</button>
    </form>
  </div>
</div>`,
		item.ID,
		markup.OrPlaceholder(item.ImageUrl, itemPlaceholder),
		markup.Escape(item.Name),
		markup.Escape(item.Name),
		markup.Escape(markup.Truncate(item.Description, 100)),
		money.Format(item.Price),
		item.ID,
		item.Quantity,
		item.Stock,
		plusDisabled,
		item.Stock,
		money.Format(item.Subtotal),
		item.ID,
	)
}

// Items renders all cart rows.
func Items(items []response.CartItem) string {
	rows := make([]string, len(items))
	for i, item := range items {
		rows[i] = Item(item)
	}
	return strings.Join(rows, "\n")
}

// SummaryBox renders the derived summary. The figures are advisory: the
// server's totals win at checkout time.
func SummaryBox(summary response.Summary) string {
	return fmt.Sprintf(`<div class="cart-summary">
  <div class="summary-row"><span>Items:</span><span id="itemCount">%d</span></div>
  <div class="summary-row"><span>Subtotal:</span><span id="subtotal">%s</span></div>
  <div class="summary-row"><span>Tax (10%%):</span><span id="tax">%s</span></div>
  <div class="summary-row grand"><span>Total:</span><span id="total">%s</span></div>
  <form method="post" action="/checkout">
    <button type="submit" id="checkoutBtn" class="btn btn-primary btn-large">Checkout</button>
  </form>
</div>`,
		summary.ItemCount,
		money.Format(summary.Subtotal),
		money.Format(summary.Tax),
		money.Format(summary.GrandTotal),
	)
}

// EmptyState renders the explicit empty-cart view.
func EmptyState() string {
	return `<div class="empty-cart">
  <h2>Your cart is empty</h2>
  <a href="/shop" class="btn btn-primary">Continue Shopping</a>
</div>`
}

// Page renders the whole cart content: rows plus summary, or the empty state.
func Page(cart response.Cart) string {
	if cart.IsEmpty() {
		return EmptyState()
	}
	return fmt.Sprintf(`<div class="cart-content">
<div id="cartItems">%s</div>
%s
</div>`, Items(cart.CartItems), SummaryBox(cart.Summary()))
}

// Badge renders the persistent item-count indicator shown on every screen.
// A zero count hides the badge.
func Badge(count int) string {
	display := "inline-block"
	if count <= 0 {
		display = "none"
	}
	return fmt.Sprintf(`<span id="cartBadge" class="cart-badge" style="display:%s">%d</span>`, display, count)
}
