package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartService "github.com/anandita/storefront/cart/service"
	"github.com/anandita/storefront/cart/state"
	cartResponse "github.com/anandita/storefront/cart/pkg/response"
	inErrors "github.com/anandita/storefront/internal/errors"
	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/notification"
)

// checkoutAPI serves the cart endpoint plus the checkout endpoint. Checkout
// empties the cart, matching the server-side clear.
type checkoutAPI struct {
	mu           sync.Mutex
	cart         cartResponse.Cart
	requests     []string
	checkoutBody map[string]interface{}

	failCheckout bool
	failError    string
}

func (f *checkoutAPI) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.requests...)
}

func (f *checkoutAPI) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/cart/"):
			_ = json.NewEncoder(w).Encode(f.cart)
		case r.Method == http.MethodPost && r.URL.Path == "/orders/checkout":
			if err := json.NewDecoder(r.Body).Decode(&f.checkoutBody); err != nil {
				t.Fatalf("failed decoding checkout body with error: %s", err)
			}
			if f.failCheckout {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": f.failError})
				return
			}
			f.cart = cartResponse.Cart{}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"order_id":    42,
				"grand_total": "103.50",
			})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
}

func newTestCheckoutService(
	t *testing.T,
	api *checkoutAPI,
) (CheckoutService, *notification.Collector) {
	t.Helper()
	server := httptest.NewServer(api.handler(t))
	t.Cleanup(server.Close)

	client := httpx.NewClient(server.URL)
	toasts := &notification.Collector{}
	carts := cartService.NewCartService(client, state.NewStore(nil), toasts, notification.Confirmed{})
	return NewCheckoutService(client, carts, toasts, 0), toasts
}

func nonEmptyCart() cartResponse.Cart {
	return cartResponse.Cart{
		CartItems: []cartResponse.CartItem{{ID: 7, ProductID: 10, Name: "Mug", Quantity: 2}},
		Total:     decimal.RequireFromString("94.09"),
		ItemCount: 2,
	}
}

func TestCheckout(t *testing.T) {
	api := &checkoutAPI{cart: nonEmptyCart()}
	service, toasts := newTestCheckoutService(t, api)

	confirmation, err := service.Checkout(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(42), confirmation.OrderID)
	assert.True(t, confirmation.GrandTotal.Equal(decimal.RequireFromString("103.50")))

	// fresh verification read, the order request, then the post-checkout reload
	assert.Equal(t, []string{
		"GET /cart/1",
		"POST /orders/checkout",
		"GET /cart/1",
	}, api.recorded())
	// only the user id crosses the wire: items and totals are read server-side
	assert.Equal(t, map[string]interface{}{"user_id": float64(1)}, api.checkoutBody)

	assert.Equal(t, []notification.Toast{
		{Kind: "success", Message: "Order #42 placed successfully!"},
	}, toasts.Toasts())
}

func TestCheckoutEmptyCart(t *testing.T) {
	api := &checkoutAPI{}
	service, toasts := newTestCheckoutService(t, api)

	_, err := service.Checkout(context.Background(), 1)

	require.ErrorIs(t, err, inErrors.ErrEmptyCart)
	// nothing besides the verification read: no order request was sent
	assert.Equal(t, []string{"GET /cart/1"}, api.recorded())
	assert.Equal(t, []notification.Toast{
		{Kind: "error", Message: "Your cart is empty!"},
	}, toasts.Toasts())
}

func TestCheckoutFailure(t *testing.T) {
	api := &checkoutAPI{cart: nonEmptyCart(), failCheckout: true, failError: "Insufficient stock for Mug"}
	service, toasts := newTestCheckoutService(t, api)

	_, err := service.Checkout(context.Background(), 1)

	require.Error(t, err)
	// the cart was fetched before the attempt and stays on screen unchanged
	assert.Equal(t, []string{"GET /cart/1", "POST /orders/checkout"}, api.recorded())
	assert.Equal(t, []notification.Toast{
		{Kind: "error", Message: "Insufficient stock for Mug"},
	}, toasts.Toasts())
}
