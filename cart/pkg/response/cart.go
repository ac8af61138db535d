package response

import (
	"github.com/shopspring/decimal"
)

// TaxRate is the advisory client-side tax rate. The server recomputes the
// authoritative tax at checkout; this figure only drives the summary display.
var TaxRate = decimal.NewFromFloat(0.10)

// CartItem is one product line as the API returns it: denormalized with the
// product's name, price, stock and image at fetch time. Subtotal is computed
// server-side and trusted as returned.
type CartItem struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageUrl    string          `json:"image_url"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Quantity    int             `json:"quantity"`
	Stock       int             `json:"stock"`
}

// Cart is the full cart read for one user. It is never constructed
// client-side: every mutation ends in a fresh fetch of this shape.
type Cart struct {
	CartItems []CartItem      `json:"cart_items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

func (c Cart) IsEmpty() bool {
	return len(c.CartItems) == 0
}

// Summary is the derived display box: tax = subtotal x TaxRate,
// grand total = subtotal + tax.
type Summary struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
	ItemCount  int
}

func (c Cart) Summary() Summary {
	tax := c.Total.Mul(TaxRate)
	return Summary{
		Subtotal:   c.Total,
		Tax:        tax,
		GrandTotal: c.Total.Add(tax),
		ItemCount:  c.ItemCount,
	}
}
