package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/anandita/storefront/internal/httpx"
	"github.com/anandita/storefront/internal/log"
	"github.com/anandita/storefront/internal/otel"
	"github.com/anandita/storefront/product/pkg/request"
	"github.com/anandita/storefront/product/pkg/response"
)

var errInvalidPrice = errors.New("price must be positive")

type ProductService struct {
	client *httpx.Client
}

func NewProductService(client *httpx.Client) ProductService {
	return ProductService{client: client}
}

func (s ProductService) FindProducts(c context.Context) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProducts").
		Str(log.KeyProcess, "fetching products").
		Logger()

	logger.Info().Msg("fetching products")
	c = logger.WithContext(c)
	list := response.Products{}
	err := s.client.Get(c, "/products", &list)
	if err != nil {
		err = fmt.Errorf("failed fetching products with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Msgf("fetched %d products", len(list.Products))

	return list.Products, nil
}

func (s ProductService) FindProductById(c context.Context, productID int64) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Int64(log.KeyProductID, productID).
		Str(log.KeyProcess, "fetching product").
		Logger()

	logger.Info().Msgf("fetching productId=%d", productID)
	c = logger.WithContext(c)
	detail := response.ProductDetail{}
	err := s.client.Get(c, fmt.Sprintf("/products/%d", productID), &detail)
	if err != nil {
		err = fmt.Errorf("failed fetching productId=%d with error=%w", productID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msgf("fetched productId=%d", productID)

	return detail.Product, nil
}

// Filter narrows a fetched product list the way the shop page does: search
// matches name or description case-insensitively, category matches exactly,
// empty category matches everything.
func Filter(products []response.Product, search string, category string) []response.Product {
	search = strings.ToLower(strings.TrimSpace(search))
	filtered := []response.Product{}
	for _, p := range products {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Description), search)
		matchesCategory := category == "" || p.Category == category
		if matchesSearch && matchesCategory {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (s ProductService) InsertProduct(
	c context.Context,
	param request.UpsertProduct,
) (string, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService InsertProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating request").Logger()
	logger.Info().Msg("validating request")
	if err := s.validateUpsert(c, param); err != nil {
		err = fmt.Errorf("failed validating product with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("validated request")

	logger = logger.With().Str(log.KeyProcess, "inserting product").Logger()
	logger.Info().Msgf("inserting product name=%s", param.Name)
	c = logger.WithContext(c)
	reply := response.Message{}
	err := s.client.Post(c, "/products", param, &reply)
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("inserted product")

	return reply.Message, nil
}

func (s ProductService) UpdateProduct(
	c context.Context,
	productID int64,
	param request.UpsertProduct,
) (string, error) {
	c, span := otel.Tracer.Start(c, "ProductService UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService UpdateProduct").
		Int64(log.KeyProductID, productID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating request").Logger()
	logger.Info().Msg("validating request")
	if err := s.validateUpsert(c, param); err != nil {
		err = fmt.Errorf("failed validating product with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("validated request")

	logger = logger.With().Str(log.KeyProcess, "updating product").Logger()
	logger.Info().Msgf("updating productId=%d", productID)
	c = logger.WithContext(c)
	reply := response.Message{}
	err := s.client.Put(c, fmt.Sprintf("/products/%d", productID), param, &reply)
	if err != nil {
		err = fmt.Errorf("failed updating productId=%d with error=%w", productID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msgf("updated productId=%d", productID)

	return reply.Message, nil
}

func (s ProductService) RemoveProduct(c context.Context, productID int64) (string, error) {
	c, span := otel.Tracer.Start(c, "ProductService RemoveProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService RemoveProduct").
		Int64(log.KeyProductID, productID).
		Str(log.KeyProcess, "removing product").
		Logger()

	logger.Info().Msgf("removing productId=%d", productID)
	c = logger.WithContext(c)
	reply := response.Message{}
	err := s.client.Delete(c, fmt.Sprintf("/products/%d", productID), &reply)
	if err != nil {
		err = fmt.Errorf("failed removing productId=%d with error=%w", productID, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msgf("removed productId=%d", productID)

	return reply.Message, nil
}

func (s ProductService) validateUpsert(c context.Context, param request.UpsertProduct) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, param); err != nil {
		return err
	}
	if !param.Price.IsPositive() {
		return errInvalidPrice
	}
	return nil
}
