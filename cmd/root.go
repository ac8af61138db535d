package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cartService "github.com/anandita/storefront/cart/service"
	"github.com/anandita/storefront/cart/state"
	checkoutService "github.com/anandita/storefront/checkout/service"
	"github.com/anandita/storefront/internal/config"
	"github.com/anandita/storefront/internal/constants"
	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/internal/log"
	"github.com/anandita/storefront/internal/otel"
	"github.com/anandita/storefront/notification"
	orderService "github.com/anandita/storefront/order/service"
	productService "github.com/anandita/storefront/product/service"
	userService "github.com/anandita/storefront/user/service"
)

// app wires the API client and the services behind every subcommand.
type app struct {
	cfg       *config.Config
	client    *httpx.Client
	terminal  notification.Terminal
	products  productService.ProductService
	carts     cartService.CartService
	checkouts checkoutService.CheckoutService
	orders    orderService.OrderService
	users     userService.UserService

	assumeYes bool
}

func newApp(cfg *config.Config) *app {
	client := httpx.NewClient(cfg.Api.BaseUrl)
	terminal := notification.Terminal{Out: os.Stdout, In: os.Stdin}
	a := &app{cfg: cfg, client: client, terminal: terminal}
	a.products = productService.NewProductService(client)
	a.carts = cartService.NewCartService(client, state.NewStore(nil), terminal, a)
	a.checkouts = checkoutService.NewCheckoutService(
		client, a.carts, terminal, cfg.Checkout.ReloadDelay,
	)
	a.orders = orderService.NewOrderService(client)
	a.users = userService.NewUserService(client, terminal)
	return a
}

// Confirm defers to the terminal unless --yes was given.
func (a *app) Confirm(message string) bool {
	if a.assumeYes {
		return true
	}
	return a.terminal.Confirm(message)
}

func (a *app) userID() int64 {
	return a.cfg.Application.UserID
}

func Start() {
	c := context.Background()
	// config is loaded before the file logger exists, so its messages go to a
	// plain stderr logger instead of being discarded
	bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg := config.InitConfig(bootstrap.WithContext(c), constants.AppStorefront)

	logger := log.InitLogger(cfg.Application.LogFile, cfg.Application.Env).
		With().
		Str(log.KeyAppName, constants.AppStorefront).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(c, os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	logger.Info().Msg("initializing otel sdk")
	shutdownFuncs, err := otel.InitOtelSdk(c, constants.AppStorefront, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("initialized otel sdk")
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(c), 5*time.Second)
		defer cancel()
		if err := otel.ShutdownOtel(shutdownCtx, shutdownFuncs); err != nil {
			logger.Error().Err(err).Msgf("failed shutting down otel with error=%s", err.Error())
		}
	}()

	a := newApp(cfg)
	rootCmd := &cobra.Command{
		Use:   constants.AppStorefront,
		Short: "Storefront client for the ecommerce API",
	}
	rootCmd.AddCommand(
		newShopCommand(a),
		newCartCommand(a),
		newCheckoutCommand(a),
		newOrdersCommand(a),
		newRegisterCommand(a),
		newAdminCommand(a),
		newWebCommand(cfg),
	)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
