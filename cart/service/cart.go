package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/anandita/storefront/cart/state"
	"github.com/anandita/storefront/cart/pkg/request"
	"github.com/anandita/storefront/cart/pkg/response"
	"github.com/anandita/storefront/internal/errors"
	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/internal/log"
	"github.com/anandita/storefront/internal/otel"
	"github.com/anandita/storefront/notification"
	productResponse "github.com/anandita/storefront/product/pkg/response"
)

// CartService keeps the on-screen cart consistent with server state. The cart
// has no client-held authoritative state: every mutation is followed by a full
// reload, so the displayed stock bounds and totals always reflect the last
// server response.
type CartService struct {
	client   *httpx.Client
	store    *state.Store
	notifier notification.Notifier
	prompter notification.Prompter
}

func NewCartService(
	client *httpx.Client,
	store *state.Store,
	notifier notification.Notifier,
	prompter notification.Prompter,
) CartService {
	return CartService{client: client, store: store, notifier: notifier, prompter: prompter}
}

func (s CartService) View() state.View {
	return s.store.View()
}

func (s CartService) LoadCart(c context.Context, userID int64) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService LoadCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService LoadCart").
		Int64(log.KeyUserID, userID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "fetching cart").Logger()
	logger.Info().Msg("fetching cart")
	s.store.Dispatch(state.LoadStarted{})
	c = logger.WithContext(c)
	cart := response.Cart{}
	err := s.client.Get(c, fmt.Sprintf("/cart/%d", userID), &cart)
	if err != nil {
		err = fmt.Errorf("failed fetching cart for userId=%d with error=%w", userID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		message := errors.UserMessage(err, "Failed to load cart. Please try again.")
		s.store.Dispatch(state.LoadFailed{Message: message})
		s.notifier.Error(message)
		return response.Cart{}, err
	}
	logger = logger.With().
		Int(log.KeyItemCount, cart.ItemCount).
		Any(log.KeyCart, cart).
		Logger()
	logger.Info().Msgf("fetched cart with %d items", cart.ItemCount)

	s.store.Dispatch(state.Loaded{Cart: cart})
	return cart, nil
}

// AddItem puts one unit of product into the user's cart. The server upserts:
// an existing line for the product is incremented rather than duplicated.
func (s CartService) AddItem(
	c context.Context,
	userID int64,
	product productResponse.Product,
) error {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Int64(log.KeyUserID, userID).
		Int64(log.KeyProductID, product.ID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating request").Logger()
	logger.Info().Msg("validating request")
	reqBody := request.AddCartItem{UserID: userID, ProductID: product.ID, Quantity: 1}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating add request with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		s.notifier.Error("Failed to add to cart. Please try again.")
		return err
	}
	logger.Info().Msg("validated request")

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	logger.Info().Msg("adding cart item")
	s.store.Dispatch(state.MutationStarted{})
	c = logger.WithContext(c)
	err := s.client.Post(c, "/cart", reqBody, nil)
	if err != nil {
		err = fmt.Errorf("failed adding productId=%d to cart with error=%w", product.ID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		message := errors.UserMessage(err, "Failed to add to cart. Please try again.")
		s.store.Dispatch(state.MutationFailed{Message: message})
		s.notifier.Error(message)
		return err
	}
	logger.Info().Msg("added cart item")
	s.notifier.Success(fmt.Sprintf("%s added to cart!", product.Name))

	_, err = s.LoadCart(c, userID)
	return err
}

// SetQuantity issues an update for one cart item, then resynchronizes with a
// full reload. Zero delegates to removal; negative input is ignored without an
// error (documented behavior of the storefront).
func (s CartService) SetQuantity(
	c context.Context,
	userID int64,
	cartItemID int64,
	quantity int,
) error {
	c, span := otel.Tracer.Start(c, "CartService SetQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService SetQuantity").
		Int64(log.KeyUserID, userID).
		Int64(log.KeyCartItemID, cartItemID).
		Int(log.KeyQuantity, quantity).
		Logger()

	if quantity < 0 {
		logger.Info().Msgf("ignoring negative quantity=%d", quantity)
		return nil
	}
	if quantity == 0 {
		logger.Info().Msg("quantity is zero, delegating to removal")
		c = logger.WithContext(c)
		return s.RemoveItem(c, userID, cartItemID)
	}

	logger = logger.With().Str(log.KeyProcess, "updating quantity").Logger()
	logger.Info().Msgf("updating cartItemId=%d to quantity=%d", cartItemID, quantity)
	s.store.Dispatch(state.MutationStarted{})
	c = logger.WithContext(c)
	reqBody := request.UpdateCartItem{Quantity: quantity}
	err := s.client.Put(c, fmt.Sprintf("/cart/%d", cartItemID), reqBody, nil)
	if err != nil {
		err = fmt.Errorf(
			"failed updating cartItemId=%d to quantity=%d with error=%w",
			cartItemID,
			quantity,
			err,
		)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		message := errors.UserMessage(err, "Failed to update quantity. Please try again.")
		s.store.Dispatch(state.MutationFailed{Message: message})
		s.notifier.Error(message)
		return err
	}
	logger.Info().Msgf("updated cartItemId=%d", cartItemID)

	_, err = s.LoadCart(c, userID)
	return err
}

// RemoveItem deletes one cart line after a blocking confirmation. A declined
// prompt is a no-op. On failure the previously displayed item stays on
// screen; there is no optimistic removal.
func (s CartService) RemoveItem(c context.Context, userID int64, cartItemID int64) error {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Int64(log.KeyUserID, userID).
		Int64(log.KeyCartItemID, cartItemID).
		Logger()

	if !s.prompter.Confirm("Remove this item from cart?") {
		logger.Info().Msg("removal not confirmed")
		return nil
	}

	logger = logger.With().Str(log.KeyProcess, "removing cart item").Logger()
	logger.Info().Msgf("removing cartItemId=%d", cartItemID)
	s.store.Dispatch(state.MutationStarted{})
	c = logger.WithContext(c)
	err := s.client.Delete(c, fmt.Sprintf("/cart/%d", cartItemID), nil)
	if err != nil {
		err = fmt.Errorf("failed removing cartItemId=%d with error=%w", cartItemID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		message := errors.UserMessage(err, "Failed to remove item. Please try again.")
		s.store.Dispatch(state.MutationFailed{Message: message})
		s.notifier.Error(message)
		return err
	}
	logger.Info().Msgf("removed cartItemId=%d", cartItemID)
	s.notifier.Success("Item removed from cart")

	_, err = s.LoadCart(c, userID)
	return err
}

// ItemCount is the header badge figure. Failures degrade to zero silently so
// the badge never blocks a page render.
func (s CartService) ItemCount(c context.Context, userID int64) int {
	c, span := otel.Tracer.Start(c, "CartService ItemCount")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ItemCount").
		Int64(log.KeyUserID, userID).
		Logger()

	cart := response.Cart{}
	err := s.client.Get(c, fmt.Sprintf("/cart/%d", userID), &cart)
	if err != nil {
		logger.Info().Msgf("failed fetching cart badge with error=%s", err.Error())
		return 0
	}
	return cart.ItemCount
}
