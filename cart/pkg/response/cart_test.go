package response

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/anandita/storefront/internal/money"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name               string
		total              string
		itemCount          int
		expectedTax        string
		expectedGrandTotal string
	}{
		{
			name:               "round figures",
			total:              "45",
			itemCount:          3,
			expectedTax:        "$4.50",
			expectedGrandTotal: "$49.50",
		},
		{
			name:               "tax rounds half up at display time",
			total:              "94.09",
			itemCount:          1,
			expectedTax:        "$9.41",
			expectedGrandTotal: "$103.50",
		},
		{
			name:               "empty cart",
			total:              "0",
			itemCount:          0,
			expectedTax:        "$0.00",
			expectedGrandTotal: "$0.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := decimal.NewFromString(tt.total)
			assert.NoError(t, err)

			summary := Cart{Total: total, ItemCount: tt.itemCount}.Summary()

			assert.True(t, summary.Subtotal.Equal(total))
			assert.True(t, summary.Tax.Equal(total.Mul(TaxRate)))
			assert.True(t, summary.GrandTotal.Equal(summary.Subtotal.Add(summary.Tax)))
			assert.Equal(t, tt.expectedTax, money.Format(summary.Tax))
			assert.Equal(t, tt.expectedGrandTotal, money.Format(summary.GrandTotal))
			assert.Equal(t, tt.itemCount, summary.ItemCount)
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Cart{}.IsEmpty())
	assert.True(t, Cart{ItemCount: 1}.IsEmpty())
	assert.False(t, Cart{CartItems: []CartItem{{ID: 1}}}.IsEmpty())
}
