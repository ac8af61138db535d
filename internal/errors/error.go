package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// ApiError is a non-2xx reply from the storefront API. Message is the server's
// optional error field, surfaced to the user verbatim.
type ApiError struct {
	Message    string
	StatusCode int
}

func (e *ApiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status code=%d", e.StatusCode)
	}
	return fmt.Sprintf("api returned status code=%d with message=%s", e.StatusCode, e.Message)
}

// UserMessage picks the text shown in the toast for err: the server's message
// when the failure was an ApiError with one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	apiErr := &ApiError{}
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
