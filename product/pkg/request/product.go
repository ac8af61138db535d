package request

import (
	"github.com/shopspring/decimal"
)

// UpsertProduct is the admin create/update payload. Price must be positive,
// stock non-negative; category and image are optional labels.
type UpsertProduct struct {
	Name        string          `validate:"required"       json:"name"`
	Description string          `                          json:"description"`
	Category    string          `                          json:"category"`
	ImageUrl    string          `validate:"omitempty,url"  json:"image_url"`
	Price       decimal.Decimal `validate:"required"       json:"price"`
	Stock       int             `validate:"gte=0"          json:"stock"`
}
