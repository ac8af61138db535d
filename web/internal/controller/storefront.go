package controller

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	cartRender "github.com/anandita/storefront/cart/render"
	cartService "github.com/anandita/storefront/cart/service"
	"github.com/anandita/storefront/cart/state"
	checkoutRender "github.com/anandita/storefront/checkout/render"
	checkoutService "github.com/anandita/storefront/checkout/service"
	"github.com/anandita/storefront/internal/config"
	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/internal/log"
	"github.com/anandita/storefront/internal/markup"
	"github.com/anandita/storefront/internal/otel"
	"github.com/anandita/storefront/notification"
	orderRender "github.com/anandita/storefront/order/render"
	orderService "github.com/anandita/storefront/order/service"
	productRender "github.com/anandita/storefront/product/render"
	productService "github.com/anandita/storefront/product/service"
	productRequest "github.com/anandita/storefront/product/pkg/request"
	productResponse "github.com/anandita/storefront/product/pkg/response"
	userRender "github.com/anandita/storefront/user/render"
	userService "github.com/anandita/storefront/user/service"
	userRequest "github.com/anandita/storefront/user/pkg/request"
)

type StorefrontController struct {
	client *httpx.Client
	cfg    *config.Config
}

func AttachStorefrontController(router *mux.Router, client *httpx.Client, cfg *config.Config) {
	controller := StorefrontController{client: client, cfg: cfg}

	router.HandleFunc("/", controller.Home).Methods(http.MethodGet)
	router.HandleFunc("/static/styles.css", Stylesheet).Methods(http.MethodGet)

	router.HandleFunc("/shop", controller.Shop).Methods(http.MethodGet)
	router.HandleFunc("/shop/{productId}", controller.ProductDetail).Methods(http.MethodGet)

	router.HandleFunc("/cart", controller.CartPage).Methods(http.MethodGet)
	router.HandleFunc("/cart/items", controller.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/items/{cartItemId}/quantity", controller.UpdateCartItemQuantity).
		Methods(http.MethodPost)
	router.HandleFunc("/cart/items/{cartItemId}/remove", controller.RemoveCartItem).
		Methods(http.MethodPost)
	router.HandleFunc("/checkout", controller.Checkout).Methods(http.MethodPost)

	router.HandleFunc("/orders", controller.Orders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{orderId}", controller.OrderDetail).Methods(http.MethodGet)

	router.HandleFunc("/register", controller.RegisterForm).Methods(http.MethodGet)
	router.HandleFunc("/register", controller.Register).Methods(http.MethodPost)

	router.HandleFunc("/admin", controller.Admin).Methods(http.MethodGet)
	router.HandleFunc("/admin/products/new", controller.AdminNewProduct).Methods(http.MethodGet)
	router.HandleFunc("/admin/products", controller.AdminCreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/admin/products/{productId}/edit", controller.AdminEditProduct).
		Methods(http.MethodGet)
	router.HandleFunc("/admin/products/{productId}", controller.AdminUpdateProduct).
		Methods(http.MethodPost)
	router.HandleFunc("/admin/products/{productId}/delete", controller.AdminRemoveProduct).
		Methods(http.MethodPost)
}

// session bundles per-request state: every request gets its own toast
// collector and cart store so concurrent requests never share view state.
type session struct {
	toasts    *notification.Collector
	products  productService.ProductService
	carts     cartService.CartService
	checkouts checkoutService.CheckoutService
	orders    orderService.OrderService
	users     userService.UserService
}

func (p StorefrontController) newSession() session {
	toasts := &notification.Collector{}
	store := state.NewStore(nil)
	// the posted form is the confirmation surface for removals
	carts := cartService.NewCartService(p.client, store, toasts, notification.Confirmed{})
	return session{
		toasts:    toasts,
		products:  productService.NewProductService(p.client),
		carts:     carts,
		checkouts: checkoutService.NewCheckoutService(p.client, carts, toasts, p.cfg.Checkout.ReloadDelay),
		orders:    orderService.NewOrderService(p.client),
		users:     userService.NewUserService(p.client, toasts),
	}
}

func (p StorefrontController) writePage(
	w http.ResponseWriter,
	r *http.Request,
	s session,
	title string,
	active string,
	body string,
) {
	badge := cartRender.Badge(s.carts.ItemCount(r.Context(), p.cfg.Application.UserID))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, page(title, active, badge, s.toasts.Toasts(), body))
}

func (p StorefrontController) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/shop", http.StatusFound)
}

func filterBar(search string, category string, categories []string) string {
	options := make([]string, 0, len(categories)+1)
	options = append(options, `<option value="">All Categories</option>`)
	for _, c := range categories {
		selected := ""
		if c == category {
			selected = " selected"
		}
		options = append(options, fmt.Sprintf(
			`<option value=%q%s>%s</option>`,
			markup.Escape(c), selected, markup.Escape(c),
		))
	}
	return fmt.Sprintf(`<form method="get" action="/shop" class="filter-bar">
  <input type="text" name="search" placeholder="Search products..." value=%q>
  <select name="category">%s</select>
  <button type="submit" class="btn btn-secondary">Filter</button>
</form>`,
		markup.Escape(search),
		strings.Join(options, ""),
	)
}

func categoriesOf(products []productResponse.Product) []string {
	seen := map[string]struct{}{}
	categories := []string{}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

func (p StorefrontController) Shop(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController Shop")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController Shop").
		Logger()

	s := p.newSession()
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	logger = logger.With().Str(log.KeyProcess, "finding products").Logger()
	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	products, err := s.products.FindProducts(c)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to load products. Please try again.")
		p.writePage(w, r, s, "Shop", "/shop", productRender.Grid(nil))
		return
	}
	logger.Info().Msgf("found %d products", len(products))

	filtered := productService.Filter(products, search, category)
	body := filterBar(search, category, categoriesOf(products)) + productRender.Grid(filtered)
	p.writePage(w, r, s, "Shop", "/shop", body)
}

func (p StorefrontController) ProductDetail(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController ProductDetail")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController ProductDetail").
		Logger()

	s := p.newSession()
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	logger = logger.With().
		Int64(log.KeyProductID, productID).
		Str(log.KeyProcess, "finding product").
		Logger()
	logger.Info().Msg("finding product")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	product, err := s.products.FindProductById(c, productID)
	if err != nil {
		err = fmt.Errorf("failed finding productId=%d with error=%w", productID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to load product. Please try again.")
		body := `<div class="empty-state"><p>Product not found.</p><a href="/shop" class="btn btn-primary">Back to Shop</a></div>`
		p.writePage(w, r, s, "Product", "/shop", body)
		return
	}
	logger.Info().Msg("found product")

	p.writePage(w, r, s, product.Name, "/shop", productRender.Detail(product))
}

func (p StorefrontController) cartBody(s session) string {
	view := s.carts.View()
	if view.Phase == state.PhaseError && !view.Loaded {
		return fmt.Sprintf(
			`<div class="empty-state"><p>%s</p></div>`,
			markup.Escape(view.ErrMessage),
		)
	}
	return cartRender.Page(view.Cart)
}

func (p StorefrontController) CartPage(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController CartPage")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController CartPage").
		Logger()

	s := p.newSession()
	c = logger.WithContext(c)
	r = r.WithContext(c)
	_, _ = s.carts.LoadCart(c, p.cfg.Application.UserID)
	p.writePage(w, r, s, "Your Cart", "/cart", p.cartBody(s))
}

func (p StorefrontController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController AddCartItem").
		Logger()

	s := p.newSession()
	productID, err := strconv.ParseInt(r.FormValue("product_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	logger = logger.With().
		Int64(log.KeyProductID, productID).
		Str(log.KeyProcess, "adding cart item").
		Logger()
	logger.Info().Msg("adding cart item")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	product, err := s.products.FindProductById(c, productID)
	if err != nil {
		err = fmt.Errorf("failed finding productId=%d with error=%w", productID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to add item to cart. Please try again.")
		p.writePage(w, r, s, "Your Cart", "/cart", p.cartBody(s))
		return
	}
	_ = s.carts.AddItem(c, p.cfg.Application.UserID, product)
	logger.Info().Msg("added cart item")

	p.writePage(w, r, s, "Your Cart", "/cart", p.cartBody(s))
}

func (p StorefrontController) UpdateCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController UpdateCartItemQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController UpdateCartItemQuantity").
		Logger()

	s := p.newSession()
	cartItemID, err := strconv.ParseInt(mux.Vars(r)["cartItemId"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	c = logger.WithContext(c)
	r = r.WithContext(c)
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		logger.Warn().Msgf("rejecting non-integer quantity=%q", r.FormValue("quantity"))
		s.toasts.Error("Failed to update quantity. Please try again.")
		_, _ = s.carts.LoadCart(c, p.cfg.Application.UserID)
		p.writePage(w, r, s, "Your Cart", "/cart", p.cartBody(s))
		return
	}
	// the +/- buttons post the displayed quantity plus an op; a typed value
	// submitted with Enter carries no op and is taken as-is
	switch r.FormValue("op") {
	case "inc":
		quantity++
	case "dec":
		quantity--
	}

	logger = logger.With().
		Int64(log.KeyCartItemID, cartItemID).
		Int(log.KeyQuantity, quantity).
		Str(log.KeyProcess, "updating quantity").
		Logger()
	logger.Info().Msg("updating quantity")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	_ = s.carts.SetQuantity(c, p.cfg.Application.UserID, cartItemID, quantity)
	logger.Info().Msg("updated quantity")

	if !s.carts.View().Loaded {
		_, _ = s.carts.LoadCart(c, p.cfg.Application.UserID)
	}
	p.writePage(w, r, s, "Your Cart", "/cart", p.cartBody(s))
}

func (p StorefrontController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController RemoveCartItem").
		Logger()

	s := p.newSession()
	cartItemID, err := strconv.ParseInt(mux.Vars(r)["cartItemId"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	logger = logger.With().
		Int64(log.KeyCartItemID, cartItemID).
		Str(log.KeyProcess, "removing cart item").
		Logger()
	logger.Info().Msg("removing cart item")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	_ = s.carts.RemoveItem(c, p.cfg.Application.UserID, cartItemID)
	logger.Info().Msg("removed cart item")

	if !s.carts.View().Loaded {
		_, _ = s.carts.LoadCart(c, p.cfg.Application.UserID)
	}
	p.writePage(w, r, s, "Your Cart", "/cart", p.cartBody(s))
}

func (p StorefrontController) Checkout(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController Checkout").
		Str(log.KeyProcess, "checking out").
		Logger()

	s := p.newSession()
	logger.Info().Msg("checking out")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	confirmation, err := s.checkouts.Checkout(c, p.cfg.Application.UserID)
	if err != nil {
		err = fmt.Errorf("failed checking out with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		p.writePage(w, r, s, "Your Cart", "/cart", p.cartBody(s))
		return
	}
	logger.Info().Msgf("checked out orderId=%d", confirmation.OrderID)

	p.writePage(w, r, s, "Order Confirmed", "/cart", checkoutRender.Confirmation(confirmation))
}

func (p StorefrontController) Orders(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController Orders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController Orders").
		Str(log.KeyProcess, "finding orders").
		Logger()

	s := p.newSession()
	logger.Info().Msg("finding orders")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	orders, err := s.orders.FindOrders(c, p.cfg.Application.UserID)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to load orders. Please try again.")
		p.writePage(w, r, s, "My Orders", "/orders", orderRender.List(nil))
		return
	}
	logger.Info().Msgf("found %d orders", len(orders))

	p.writePage(w, r, s, "My Orders", "/orders", orderRender.List(orders))
}

func (p StorefrontController) OrderDetail(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController OrderDetail")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController OrderDetail").
		Logger()

	s := p.newSession()
	orderID, err := strconv.ParseInt(mux.Vars(r)["orderId"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	logger = logger.With().
		Int64(log.KeyOrderID, orderID).
		Str(log.KeyProcess, "finding order detail").
		Logger()
	logger.Info().Msg("finding order detail")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	detail, err := s.orders.FindOrderDetail(c, orderID)
	if err != nil {
		err = fmt.Errorf("failed finding orderId=%d with error=%w", orderID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to load order details. Please try again.")
		body := `<div class="empty-state"><p>Order not found.</p><a href="/orders" class="btn btn-primary">Back to Orders</a></div>`
		p.writePage(w, r, s, "Order", "/orders", body)
		return
	}
	logger.Info().Msg("found order detail")

	p.writePage(w, r, s, fmt.Sprintf("Order #%d", detail.ID), "/orders", orderRender.Detail(detail))
}

func (p StorefrontController) RegisterForm(w http.ResponseWriter, r *http.Request) {
	s := p.newSession()
	p.writePage(w, r, s, "Register", "/register", userRender.Form())
}

func (p StorefrontController) Register(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController Register")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController Register").
		Str(log.KeyProcess, "registering user").
		Logger()

	s := p.newSession()
	reqBody := userRequest.Register{
		FullName:        r.FormValue("fullName"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
		Phone:           r.FormValue("phone"),
	}

	logger = logger.With().Object(log.KeyRequestBody, reqBody).Logger()
	logger.Info().Msg("registering user")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	if err := s.users.Register(c, reqBody); err != nil {
		err = fmt.Errorf("failed registering user with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		p.writePage(w, r, s, "Register", "/register", userRender.Form())
		return
	}
	logger.Info().Msg("registered user")

	p.writePage(w, r, s, "Register", "/register", userRender.Form())
}

func adminBody(products []productResponse.Product) string {
	return fmt.Sprintf(`<div class="admin-header">
  <h2>Product Management</h2>
  <a href="/admin/products/new" class="btn btn-primary">Add New Product</a>
</div>
<table class="admin-table">
  <thead>
    <tr><th>ID</th><th>Name</th><th>Description</th><th>Price</th><th>Stock</th><th>Actions</th></tr>
  </thead>
  <tbody>
%s
  </tbody>
</table>`, productRender.AdminTable(products))
}

func (p StorefrontController) Admin(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController Admin")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController Admin").
		Str(log.KeyProcess, "finding products").
		Logger()

	s := p.newSession()
	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	products, err := s.products.FindProducts(c)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to load products. Please try again.")
		p.writePage(w, r, s, "Admin", "/admin", adminBody(nil))
		return
	}
	logger.Info().Msgf("found %d products", len(products))

	p.writePage(w, r, s, "Admin", "/admin", adminBody(products))
}

func (p StorefrontController) AdminNewProduct(w http.ResponseWriter, r *http.Request) {
	s := p.newSession()
	p.writePage(w, r, s, "Add Product", "/admin", productRender.Form(nil))
}

func (p StorefrontController) AdminEditProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController AdminEditProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController AdminEditProduct").
		Logger()

	s := p.newSession()
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	logger = logger.With().
		Int64(log.KeyProductID, productID).
		Str(log.KeyProcess, "finding product").
		Logger()
	logger.Info().Msg("finding product")
	c = logger.WithContext(c)
	r = r.WithContext(c)
	product, err := s.products.FindProductById(c, productID)
	if err != nil {
		err = fmt.Errorf("failed finding productId=%d with error=%w", productID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to load product. Please try again.")
		p.writePage(w, r, s, "Admin", "/admin", adminBody(nil))
		return
	}
	logger.Info().Msg("found product")

	p.writePage(w, r, s, "Edit Product", "/admin", productRender.Form(&product))
}

// parseUpsertForm turns the admin form into an upsert payload. Price and
// stock arrive as text and are parsed here, validation happens in the
// product service.
func parseUpsertForm(r *http.Request) (productRequest.UpsertProduct, error) {
	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		return productRequest.UpsertProduct{}, fmt.Errorf(
			"failed parsing price=%q with error=%w", r.FormValue("price"), err,
		)
	}
	stock := 0
	if raw := r.FormValue("stock"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil {
			return productRequest.UpsertProduct{}, fmt.Errorf(
				"failed parsing stock=%q with error=%w", raw, err,
			)
		}
	}
	return productRequest.UpsertProduct{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		ImageUrl:    r.FormValue("image_url"),
		Price:       price,
		Stock:       stock,
	}, nil
}

func (p StorefrontController) adminPage(w http.ResponseWriter, r *http.Request, s session) {
	products, err := s.products.FindProducts(r.Context())
	if err != nil {
		products = nil
	}
	p.writePage(w, r, s, "Admin", "/admin", adminBody(products))
}

func (p StorefrontController) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController AdminCreateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController AdminCreateProduct").
		Str(log.KeyProcess, "inserting product").
		Logger()

	s := p.newSession()
	c = logger.WithContext(c)
	r = r.WithContext(c)
	reqBody, err := parseUpsertForm(r)
	if err != nil {
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Please enter a valid price and stock.")
		p.writePage(w, r, s, "Add Product", "/admin", productRender.Form(nil))
		return
	}

	logger.Info().Msgf("inserting product name=%s", reqBody.Name)
	message, err := s.products.InsertProduct(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to save product. Please try again.")
		p.writePage(w, r, s, "Add Product", "/admin", productRender.Form(nil))
		return
	}
	logger.Info().Msg("inserted product")

	if message == "" {
		message = "Product created successfully!"
	}
	s.toasts.Success(message)
	p.adminPage(w, r, s)
}

func (p StorefrontController) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController AdminUpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController AdminUpdateProduct").
		Logger()

	s := p.newSession()
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	logger = logger.With().
		Int64(log.KeyProductID, productID).
		Str(log.KeyProcess, "updating product").
		Logger()
	c = logger.WithContext(c)
	r = r.WithContext(c)
	reqBody, err := parseUpsertForm(r)
	if err != nil {
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Please enter a valid price and stock.")
		p.adminPage(w, r, s)
		return
	}

	logger.Info().Msgf("updating productId=%d", productID)
	message, err := s.products.UpdateProduct(c, productID, reqBody)
	if err != nil {
		err = fmt.Errorf("failed updating productId=%d with error=%w", productID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to save product. Please try again.")
		p.adminPage(w, r, s)
		return
	}
	logger.Info().Msgf("updated productId=%d", productID)

	if message == "" {
		message = "Product updated successfully!"
	}
	s.toasts.Success(message)
	p.adminPage(w, r, s)
}

func (p StorefrontController) AdminRemoveProduct(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "StorefrontController AdminRemoveProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "StorefrontController AdminRemoveProduct").
		Logger()

	s := p.newSession()
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	logger = logger.With().
		Int64(log.KeyProductID, productID).
		Str(log.KeyProcess, "removing product").
		Logger()
	logger.Info().Msgf("removing productId=%d", productID)
	c = logger.WithContext(c)
	r = r.WithContext(c)
	message, err := s.products.RemoveProduct(c, productID)
	if err != nil {
		err = fmt.Errorf("failed removing productId=%d with error=%w", productID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.toasts.Error("Failed to delete product. Please try again.")
		p.adminPage(w, r, s)
		return
	}
	logger.Info().Msgf("removed productId=%d", productID)

	if message == "" {
		message = "Product deleted successfully!"
	}
	s.toasts.Success(message)
	p.adminPage(w, r, s)
}
