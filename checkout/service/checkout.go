package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	cartService "github.com/anandita/storefront/cart/service"
	"github.com/anandita/storefront/checkout/pkg/request"
	"github.com/anandita/storefront/checkout/pkg/response"
	"github.com/anandita/storefront/internal/errors"
	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/internal/log"
	"github.com/anandita/storefront/internal/otel"
	"github.com/anandita/storefront/notification"
)

// CheckoutService transitions a non-empty cart into a confirmed order.
//
// The sequence is not idempotent: there is no idempotency key, so re-invoking
// after an ambiguous failure (timeout after server-side commit) can create a
// duplicate order. That matches the storefront contract as it stands.
type CheckoutService struct {
	client      *httpx.Client
	carts       cartService.CartService
	notifier    notification.Notifier
	reloadDelay time.Duration
}

func NewCheckoutService(
	client *httpx.Client,
	carts cartService.CartService,
	notifier notification.Notifier,
	reloadDelay time.Duration,
) CheckoutService {
	return CheckoutService{
		client:      client,
		carts:       carts,
		notifier:    notifier,
		reloadDelay: reloadDelay,
	}
}

func (s CheckoutService) Checkout(
	c context.Context,
	userID int64,
) (response.Confirmation, error) {
	c, span := otel.Tracer.Start(c, "CheckoutService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CheckoutService Checkout").
		Int64(log.KeyUserID, userID).
		Logger()

	// fresh read, guards against a stale empty-check from prior view state
	logger = logger.With().Str(log.KeyProcess, "verifying cart").Logger()
	logger.Info().Msg("verifying cart before checkout")
	c = logger.WithContext(c)
	cart, err := s.carts.LoadCart(c, userID)
	if err != nil {
		err = fmt.Errorf("failed verifying cart before checkout with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Confirmation{}, err
	}
	if cart.IsEmpty() {
		err = errors.ErrEmptyCart
		otel.RecordError(err, span)
		logger.Info().Msg("cart is empty, no order request sent")
		s.notifier.Error("Your cart is empty!")
		return response.Confirmation{}, err
	}
	logger.Info().Msgf("verified cart with %d items", cart.ItemCount)

	logger = logger.With().Str(log.KeyProcess, "creating order").Logger()
	logger.Info().Msg("creating order")
	confirmation := response.Confirmation{}
	err = s.client.Post(c, "/orders/checkout", request.Checkout{UserID: userID}, &confirmation)
	if err != nil {
		err = fmt.Errorf("failed creating order for userId=%d with error=%w", userID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.notifier.Error(errors.UserMessage(err, "Checkout failed. Please try again."))
		return response.Confirmation{}, err
	}
	logger = logger.With().Int64(log.KeyOrderID, confirmation.OrderID).Logger()
	logger.Info().Msgf("created orderId=%d", confirmation.OrderID)
	s.notifier.Success(
		fmt.Sprintf("Order #%d placed successfully!", confirmation.OrderID),
	)

	// the server clears the cart on checkout; reload after a beat so the
	// confirmation stays on screen first
	logger = logger.With().Str(log.KeyProcess, "reloading cart").Logger()
	logger.Info().Msgf("reloading cart after %s", s.reloadDelay)
	if s.reloadDelay > 0 {
		select {
		case <-time.After(s.reloadDelay):
		case <-c.Done():
			return confirmation, nil
		}
	}
	c = logger.WithContext(c)
	if _, err := s.carts.LoadCart(c, userID); err != nil {
		logger.Info().Msgf("failed reloading cart after checkout with error=%s", err.Error())
	}

	return confirmation, nil
}
