package request

// Checkout carries only the user identity. The server re-derives the cart
// contents itself; the client cannot forge order contents.
type Checkout struct {
	UserID int64 `validate:"required" json:"user_id"`
}
