package request

type AddCartItem struct {
	UserID    int64 `validate:"required"       json:"user_id"`
	ProductID int64 `validate:"required"       json:"product_id"`
	Quantity  int   `validate:"required,gte=1" json:"quantity"`
}

type UpdateCartItem struct {
	Quantity int `validate:"required,gte=1" json:"quantity"`
}
