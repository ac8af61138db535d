package response

import (
	"github.com/shopspring/decimal"
)

// Product is immutable from the client's perspective; the remote service is
// the source of truth, including for stock.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ImageUrl    string          `json:"image_url"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

type Products struct {
	Products []Product `json:"products"`
}

type ProductDetail struct {
	Product Product `json:"product"`
}

// Message is the reply of the admin mutations, carrying either a success
// message or nothing useful beyond the status code.
type Message struct {
	Message string `json:"message"`
}
