package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anandita/storefront/cart/state"
	"github.com/anandita/storefront/cart/pkg/response"
	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/notification"
	productResponse "github.com/anandita/storefront/product/pkg/response"
)

// fakeAPI is a scripted storefront API: it serves whatever cart document it
// currently holds and records every mutating request it sees.
type fakeAPI struct {
	mu       sync.Mutex
	cart     response.Cart
	requests []string

	failNext   bool
	failStatus int
	failError  string
}

func (f *fakeAPI) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
}

func (f *fakeAPI) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.requests...)
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		f.mu.Lock()
		fail := f.failNext
		f.failNext = false
		f.mu.Unlock()
		if fail {
			w.WriteHeader(f.failStatus)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": f.failError})
			return
		}
		switch r.Method {
		case http.MethodGet:
			f.mu.Lock()
			cart := f.cart
			f.mu.Unlock()
			_ = json.NewEncoder(w).Encode(cart)
		case http.MethodPost, http.MethodPut:
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		case http.MethodDelete:
			f.mu.Lock()
			f.cart = response.Cart{}
			f.mu.Unlock()
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
}

func newTestCartService(
	t *testing.T,
	api *fakeAPI,
	prompter notification.Prompter,
) (CartService, *notification.Collector) {
	t.Helper()
	server := httptest.NewServer(api.handler(t))
	t.Cleanup(server.Close)

	toasts := &notification.Collector{}
	service := NewCartService(
		httpx.NewClient(server.URL),
		state.NewStore(nil),
		toasts,
		prompter,
	)
	return service, toasts
}

func cartWithMug(quantity int) response.Cart {
	return response.Cart{
		CartItems: []response.CartItem{
			{ID: 7, ProductID: 10, Name: "Mug", Quantity: quantity, Stock: 3},
		},
		ItemCount: quantity,
	}
}

func TestLoadCart(t *testing.T) {
	api := &fakeAPI{cart: cartWithMug(2)}
	service, toasts := newTestCartService(t, api, notification.Confirmed{})

	cart, err := service.LoadCart(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 2, cart.ItemCount)
	assert.Equal(t, []string{"GET /cart/1"}, api.recorded())
	assert.Empty(t, toasts.Toasts())

	view := service.View()
	assert.True(t, view.Loaded)
	assert.Equal(t, state.PhaseIdle, view.Phase)
	assert.Equal(t, cart, view.Cart)
}

func TestLoadCartFailure(t *testing.T) {
	tests := []struct {
		name            string
		failStatus      int
		failError       string
		expectedMessage string
	}{
		{
			name:            "server message is shown verbatim",
			failStatus:      http.StatusConflict,
			failError:       "Insufficient stock",
			expectedMessage: "Insufficient stock",
		},
		{
			name:            "missing message falls back to the generic toast",
			failStatus:      http.StatusInternalServerError,
			expectedMessage: "Failed to load cart. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{failNext: true, failStatus: tt.failStatus, failError: tt.failError}
			service, toasts := newTestCartService(t, api, notification.Confirmed{})

			_, err := service.LoadCart(context.Background(), 1)

			require.Error(t, err)
			assert.Equal(t, []notification.Toast{
				{Kind: "error", Message: tt.expectedMessage},
			}, toasts.Toasts())
			view := service.View()
			assert.Equal(t, state.PhaseError, view.Phase)
			assert.Equal(t, tt.expectedMessage, view.ErrMessage)
			assert.False(t, view.Loaded)
		})
	}
}

func TestAddItemReloadsCart(t *testing.T) {
	// the server holds the authoritative quantity: the reload after the add
	// shows 3 even though the client only ever sent one increment
	api := &fakeAPI{cart: cartWithMug(3)}
	service, toasts := newTestCartService(t, api, notification.Confirmed{})

	product := productResponse.Product{ID: 10, Name: "Mug", Stock: 3}
	err := service.AddItem(context.Background(), 1, product)

	require.NoError(t, err)
	assert.Equal(t, []string{"POST /cart", "GET /cart/1"}, api.recorded())
	assert.Equal(t, []notification.Toast{
		{Kind: "success", Message: "Mug added to cart!"},
	}, toasts.Toasts())
	assert.Equal(t, 3, service.View().Cart.CartItems[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	t.Run("positive quantity updates then reloads", func(t *testing.T) {
		api := &fakeAPI{cart: cartWithMug(2)}
		service, _ := newTestCartService(t, api, notification.Confirmed{})

		err := service.SetQuantity(context.Background(), 1, 7, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"PUT /cart/7", "GET /cart/1"}, api.recorded())
	})

	t.Run("zero quantity removes the item", func(t *testing.T) {
		api := &fakeAPI{cart: cartWithMug(1)}
		service, toasts := newTestCartService(t, api, notification.Confirmed{})

		err := service.SetQuantity(context.Background(), 1, 7, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"DELETE /cart/7", "GET /cart/1"}, api.recorded())
		assert.Equal(t, []notification.Toast{
			{Kind: "success", Message: "Item removed from cart"},
		}, toasts.Toasts())
	})

	t.Run("negative quantity is a silent no-op", func(t *testing.T) {
		api := &fakeAPI{cart: cartWithMug(1)}
		service, toasts := newTestCartService(t, api, notification.Confirmed{})

		err := service.SetQuantity(context.Background(), 1, 7, -1)

		require.NoError(t, err)
		assert.Empty(t, api.recorded())
		assert.Empty(t, toasts.Toasts())
	})

	t.Run("failed update keeps prior view and shows server message", func(t *testing.T) {
		api := &fakeAPI{cart: cartWithMug(2)}
		service, toasts := newTestCartService(t, api, notification.Confirmed{})
		_, err := service.LoadCart(context.Background(), 1)
		require.NoError(t, err)

		api.mu.Lock()
		api.failNext = true
		api.failStatus = http.StatusBadRequest
		api.failError = "Only 3 items available in stock"
		api.mu.Unlock()
		err = service.SetQuantity(context.Background(), 1, 7, 5)

		require.Error(t, err)
		assert.Equal(t, []notification.Toast{
			{Kind: "error", Message: "Only 3 items available in stock"},
		}, toasts.Toasts())
		// no optimistic patch: the item is still on screen with the old quantity
		view := service.View()
		assert.Equal(t, 2, view.Cart.CartItems[0].Quantity)
		assert.Equal(t, state.PhaseError, view.Phase)
	})
}

type decliner struct{}

func (decliner) Confirm(string) bool { return false }

func TestRemoveItem(t *testing.T) {
	t.Run("declined confirmation sends nothing", func(t *testing.T) {
		api := &fakeAPI{cart: cartWithMug(1)}
		service, toasts := newTestCartService(t, api, decliner{})

		err := service.RemoveItem(context.Background(), 1, 7)

		require.NoError(t, err)
		assert.Empty(t, api.recorded())
		assert.Empty(t, toasts.Toasts())
	})

	t.Run("confirmed removal deletes then reloads", func(t *testing.T) {
		api := &fakeAPI{cart: cartWithMug(1)}
		service, toasts := newTestCartService(t, api, notification.Confirmed{})

		err := service.RemoveItem(context.Background(), 1, 7)

		require.NoError(t, err)
		assert.Equal(t, []string{"DELETE /cart/7", "GET /cart/1"}, api.recorded())
		assert.Equal(t, []notification.Toast{
			{Kind: "success", Message: "Item removed from cart"},
		}, toasts.Toasts())
		assert.True(t, service.View().Cart.IsEmpty())
	})
}

func TestItemCount(t *testing.T) {
	t.Run("returns the server figure", func(t *testing.T) {
		api := &fakeAPI{cart: cartWithMug(2)}
		service, _ := newTestCartService(t, api, notification.Confirmed{})

		assert.Equal(t, 2, service.ItemCount(context.Background(), 1))
	})

	t.Run("degrades to zero on failure", func(t *testing.T) {
		api := &fakeAPI{failNext: true, failStatus: http.StatusBadGateway}
		service, toasts := newTestCartService(t, api, notification.Confirmed{})

		assert.Equal(t, 0, service.ItemCount(context.Background(), 1))
		assert.Empty(t, toasts.Toasts())
	})
}
