package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/product/pkg/request"
	"github.com/anandita/storefront/product/pkg/response"
)

func sampleProducts() []response.Product {
	return []response.Product{
		{ID: 1, Name: "Ceramic Mug", Description: "A mug for coffee", Category: "Kitchen", Price: decimal.NewFromInt(12), Stock: 5},
		{ID: 2, Name: "Electric Kettle", Description: "Boils water fast", Category: "Kitchen", Price: decimal.NewFromInt(40), Stock: 0},
		{ID: 3, Name: "Desk Lamp", Description: "Warm light", Category: "Office", Price: decimal.NewFromInt(25), Stock: 9},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category string
		expected []int64
	}{
		{name: "no filter returns everything", expected: []int64{1, 2, 3}},
		{name: "search matches name case-insensitively", search: "kettle", expected: []int64{2}},
		{name: "search matches description", search: "coffee", expected: []int64{1}},
		{name: "category is an exact match", category: "Kitchen", expected: []int64{1, 2}},
		{name: "category is case-sensitive", category: "kitchen", expected: []int64{}},
		{name: "search and category combine", search: "mug", category: "Office", expected: []int64{}},
		{name: "no match", search: "sofa", expected: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Filter(sampleProducts(), tt.search, tt.category)
			ids := []int64{}
			for _, p := range filtered {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

type productAPI struct {
	mu       sync.Mutex
	products []response.Product
	requests []string
	lastBody map[string]interface{}
}

func (f *productAPI) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.requests...)
}

func (f *productAPI) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/products":
			_ = json.NewEncoder(w).Encode(response.Products{Products: f.products})
		case r.Method == http.MethodGet && r.URL.Path == "/products/1":
			_ = json.NewEncoder(w).Encode(response.ProductDetail{Product: f.products[0]})
		case r.Method == http.MethodGet && r.URL.Path == "/products/99":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Product not found"})
		case r.Method == http.MethodPost && r.URL.Path == "/products":
			if err := json.NewDecoder(r.Body).Decode(&f.lastBody); err != nil {
				t.Fatalf("failed decoding product body with error: %s", err)
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Product created successfully"})
		case r.Method == http.MethodPut && r.URL.Path == "/products/1":
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Product updated successfully"})
		case r.Method == http.MethodDelete && r.URL.Path == "/products/1":
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Product deleted successfully"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
}

func newTestProductService(t *testing.T, api *productAPI) ProductService {
	t.Helper()
	server := httptest.NewServer(api.handler(t))
	t.Cleanup(server.Close)
	return NewProductService(httpx.NewClient(server.URL))
}

func TestFindProducts(t *testing.T) {
	api := &productAPI{products: sampleProducts()}
	service := newTestProductService(t, api)

	products, err := service.FindProducts(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, "Ceramic Mug", products[0].Name)
}

func TestFindProductById(t *testing.T) {
	api := &productAPI{products: sampleProducts()}
	service := newTestProductService(t, api)

	t.Run("found", func(t *testing.T) {
		product, err := service.FindProductById(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.True(t, product.InStock())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := service.FindProductById(context.Background(), 99)
		require.Error(t, err)
	})
}

func TestInsertProduct(t *testing.T) {
	t.Run("valid product is posted", func(t *testing.T) {
		api := &productAPI{}
		service := newTestProductService(t, api)

		message, err := service.InsertProduct(context.Background(), request.UpsertProduct{
			Name:  "Ceramic Mug",
			Price: decimal.RequireFromString("12.50"),
			Stock: 5,
		})

		require.NoError(t, err)
		assert.Equal(t, "Product created successfully", message)
		assert.Equal(t, []string{"POST /products"}, api.recorded())
		assert.Equal(t, "12.5", api.lastBody["price"])
	})

	t.Run("non-positive price never reaches the server", func(t *testing.T) {
		api := &productAPI{}
		service := newTestProductService(t, api)

		_, err := service.InsertProduct(context.Background(), request.UpsertProduct{
			Name:  "Ceramic Mug",
			Price: decimal.Zero,
		})

		require.Error(t, err)
		assert.Empty(t, api.recorded())
	})

	t.Run("missing name never reaches the server", func(t *testing.T) {
		api := &productAPI{}
		service := newTestProductService(t, api)

		_, err := service.InsertProduct(context.Background(), request.UpsertProduct{
			Price: decimal.NewFromInt(10),
		})

		require.Error(t, err)
		assert.Empty(t, api.recorded())
	})
}

func TestUpdateProduct(t *testing.T) {
	api := &productAPI{}
	service := newTestProductService(t, api)

	message, err := service.UpdateProduct(context.Background(), 1, request.UpsertProduct{
		Name:  "Ceramic Mug",
		Price: decimal.NewFromInt(15),
		Stock: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, "Product updated successfully", message)
	assert.Equal(t, []string{"PUT /products/1"}, api.recorded())
}

func TestRemoveProduct(t *testing.T) {
	api := &productAPI{}
	service := newTestProductService(t, api)

	message, err := service.RemoveProduct(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Product deleted successfully", message)
	assert.Equal(t, []string{"DELETE /products/1"}, api.recorded())
}
