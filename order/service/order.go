package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/internal/log"
	"github.com/anandita/storefront/internal/otel"
	"github.com/anandita/storefront/order/pkg/response"
)

// OrderService reads the order history. Orders are immutable from the
// client's view; there are no mutations here.
type OrderService struct {
	client *httpx.Client
}

func NewOrderService(client *httpx.Client) OrderService {
	return OrderService{client: client}
}

func (s OrderService) FindOrders(c context.Context, userID int64) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrders").
		Int64(log.KeyUserID, userID).
		Str(log.KeyProcess, "fetching orders").
		Logger()

	logger.Info().Msgf("fetching orders for userId=%d", userID)
	c = logger.WithContext(c)
	list := response.Orders{}
	err := s.client.Get(c, fmt.Sprintf("/orders/%d", userID), &list)
	if err != nil {
		err = fmt.Errorf("failed fetching orders for userId=%d with error=%w", userID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("fetched %d orders", len(list.Orders))

	return list.Orders, nil
}

func (s OrderService) FindOrderDetail(
	c context.Context,
	orderID int64,
) (response.OrderDetail, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderDetail")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrderDetail").
		Int64(log.KeyOrderID, orderID).
		Str(log.KeyProcess, "fetching order detail").
		Logger()

	logger.Info().Msgf("fetching orderId=%d", orderID)
	c = logger.WithContext(c)
	envelope := response.OrderDetailEnvelope{}
	err := s.client.Get(c, fmt.Sprintf("/orders/detail/%d", orderID), &envelope)
	if err != nil {
		err = fmt.Errorf("failed fetching orderId=%d with error=%w", orderID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.OrderDetail{}, err
	}
	logger.Info().Msgf("fetched orderId=%d with %d items", orderID, len(envelope.Order.Items))

	return envelope.Order, nil
}
