package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartResponse "github.com/anandita/storefront/cart/pkg/response"
	"github.com/anandita/storefront/internal/config"
	"github.com/anandita/storefront/internal/httpx"
	productResponse "github.com/anandita/storefront/product/pkg/response"
)

// storefrontAPI fakes the remote REST service behind the web UI.
type storefrontAPI struct {
	mu          sync.Mutex
	products    []productResponse.Product
	cart        cartResponse.Cart
	requests    []string
	lastPutBody map[string]interface{}
}

func (f *storefrontAPI) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.requests...)
}

func (f *storefrontAPI) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/products":
			_ = json.NewEncoder(w).Encode(productResponse.Products{Products: f.products})
		case r.Method == http.MethodGet && r.URL.Path == "/products/1":
			_ = json.NewEncoder(w).Encode(productResponse.ProductDetail{Product: f.products[0]})
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/cart/"):
			_ = json.NewEncoder(w).Encode(f.cart)
		case r.Method == http.MethodPost && r.URL.Path == "/cart":
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/cart/"):
			if err := json.NewDecoder(r.Body).Decode(&f.lastPutBody); err != nil {
				t.Fatalf("failed decoding cart update body with error: %s", err)
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/cart/"):
			f.cart = cartResponse.Cart{}
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		case r.Method == http.MethodPost && r.URL.Path == "/orders/checkout":
			f.cart = cartResponse.Cart{}
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"order_id": 42, "grand_total": "103.50"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
}

func newTestUI(t *testing.T, api *storefrontAPI) *httptest.Server {
	t.Helper()
	apiServer := httptest.NewServer(api.handler(t))
	t.Cleanup(apiServer.Close)

	cfg := &config.Config{}
	cfg.Application.UserID = 1
	cfg.Api.BaseUrl = apiServer.URL
	cfg.Checkout.ReloadDelay = 0

	router := mux.NewRouter()
	AttachStorefrontController(router, httpx.NewClient(apiServer.URL), cfg)
	ui := httptest.NewServer(router)
	t.Cleanup(ui.Close)
	return ui
}

func get(t *testing.T, ui *httptest.Server, path string) string {
	t.Helper()
	resp, err := http.Get(ui.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func post(t *testing.T, ui *httptest.Server, path string, form url.Values) string {
	t.Helper()
	resp, err := http.PostForm(ui.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func uiFixture() *storefrontAPI {
	return &storefrontAPI{
		products: []productResponse.Product{
			{ID: 1, Name: "Ceramic Mug", Category: "Kitchen", Price: decimal.RequireFromString("12.50"), Stock: 5},
		},
		cart: cartResponse.Cart{
			CartItems: []cartResponse.CartItem{
				{ID: 7, ProductID: 1, Name: "Ceramic Mug", Quantity: 2, Stock: 5},
			},
			Total:     decimal.RequireFromString("25.00"),
			ItemCount: 2,
		},
	}
}

func TestShopPage(t *testing.T) {
	ui := newTestUI(t, uiFixture())

	body := get(t, ui, "/shop")

	assert.Contains(t, body, "Ceramic Mug")
	assert.Contains(t, body, "$12.50")
	// the badge reflects the cart read done for the shell
	assert.Contains(t, body, `id="cartBadge"`)
	assert.Contains(t, body, ">2</span>")
}

func TestShopPageFilters(t *testing.T) {
	ui := newTestUI(t, uiFixture())

	body := get(t, ui, "/shop?search=kettle")

	assert.Contains(t, body, "No products found.")
}

func TestCartPage(t *testing.T) {
	ui := newTestUI(t, uiFixture())

	body := get(t, ui, "/cart")

	assert.Contains(t, body, "Ceramic Mug")
	assert.Contains(t, body, "Tax (10%)")
	assert.Contains(t, body, "$27.50")
}

func TestAddCartItem(t *testing.T) {
	api := uiFixture()
	ui := newTestUI(t, api)

	body := post(t, ui, "/cart/items", url.Values{"product_id": {"1"}})

	assert.Contains(t, body, "Ceramic Mug added to cart!")
	assert.Contains(t, api.recorded(), "POST /cart")
}

func TestUpdateCartItemQuantity(t *testing.T) {
	t.Run("plus click increments the displayed quantity", func(t *testing.T) {
		api := uiFixture()
		ui := newTestUI(t, api)

		// the browser serializes the visible input before the clicked button
		_ = post(t, ui, "/cart/items/7/quantity", url.Values{
			"quantity": {"2"},
			"op":       {"inc"},
		})

		assert.Contains(t, api.recorded(), "PUT /cart/7")
		assert.Equal(t, map[string]interface{}{"quantity": float64(3)}, api.lastPutBody)
	})

	t.Run("minus click decrements", func(t *testing.T) {
		api := uiFixture()
		ui := newTestUI(t, api)

		_ = post(t, ui, "/cart/items/7/quantity", url.Values{
			"quantity": {"2"},
			"op":       {"dec"},
		})

		assert.Contains(t, api.recorded(), "PUT /cart/7")
		assert.Equal(t, map[string]interface{}{"quantity": float64(1)}, api.lastPutBody)
	})

	t.Run("typed value without an op is taken as-is", func(t *testing.T) {
		api := uiFixture()
		ui := newTestUI(t, api)

		_ = post(t, ui, "/cart/items/7/quantity", url.Values{"quantity": {"4"}})

		assert.Contains(t, api.recorded(), "PUT /cart/7")
		assert.Equal(t, map[string]interface{}{"quantity": float64(4)}, api.lastPutBody)
	})

	t.Run("minus at quantity one removes the item", func(t *testing.T) {
		api := uiFixture()
		api.cart.CartItems[0].Quantity = 1
		ui := newTestUI(t, api)

		body := post(t, ui, "/cart/items/7/quantity", url.Values{
			"quantity": {"1"},
			"op":       {"dec"},
		})

		assert.Contains(t, api.recorded(), "DELETE /cart/7")
		assert.NotContains(t, api.recorded(), "PUT /cart/7")
		assert.Contains(t, body, "Item removed from cart")
	})

	t.Run("non-integer quantity never reaches the server", func(t *testing.T) {
		api := uiFixture()
		ui := newTestUI(t, api)

		body := post(t, ui, "/cart/items/7/quantity", url.Values{"quantity": {"lots"}})

		assert.NotContains(t, api.recorded(), "PUT /cart/7")
		assert.Contains(t, body, "Failed to update quantity. Please try again.")
	})
}

func TestRemoveCartItem(t *testing.T) {
	api := uiFixture()
	ui := newTestUI(t, api)

	body := post(t, ui, "/cart/items/7/remove", url.Values{})

	assert.Contains(t, api.recorded(), "DELETE /cart/7")
	assert.Contains(t, body, "Item removed from cart")
	assert.Contains(t, body, "Your cart is empty")
}

func TestCheckout(t *testing.T) {
	api := uiFixture()
	ui := newTestUI(t, api)

	body := post(t, ui, "/checkout", url.Values{})

	assert.Contains(t, body, "Order Placed Successfully!")
	assert.Contains(t, body, "#42")
	assert.Contains(t, body, "$103.50")
}

func TestCheckoutEmptyCart(t *testing.T) {
	api := uiFixture()
	api.cart = cartResponse.Cart{}
	ui := newTestUI(t, api)

	body := post(t, ui, "/checkout", url.Values{})

	assert.Contains(t, body, "Your cart is empty!")
	assert.NotContains(t, api.recorded(), "POST /orders/checkout")
}

func TestRegisterValidationStaysLocal(t *testing.T) {
	api := uiFixture()
	ui := newTestUI(t, api)

	body := post(t, ui, "/register", url.Values{
		"fullName":        {"Ana Ndita"},
		"email":           {"ana@example.com"},
		"password":        {"abc123"},
		"confirmPassword": {"abc124"},
	})

	assert.Contains(t, body, "Passwords do not match!")
	for _, req := range api.recorded() {
		assert.NotContains(t, req, "/register")
	}
}
