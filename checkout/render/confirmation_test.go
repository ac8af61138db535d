package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/anandita/storefront/checkout/pkg/response"
)

func TestConfirmation(t *testing.T) {
	html := Confirmation(response.Confirmation{
		OrderID:    42,
		GrandTotal: decimal.RequireFromString("103.499"),
	})

	assert.Contains(t, html, "#42")
	assert.Contains(t, html, "$103.50")
	assert.Contains(t, html, `href="/orders"`)
	assert.Contains(t, html, `href="/shop"`)
}
