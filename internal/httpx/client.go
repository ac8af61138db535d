package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/anandita/storefront/internal/errors"
	"github.com/anandita/storefront/internal/log"
	"github.com/anandita/storefront/internal/otel"
)

const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-Id"
	ValueJson         = "application/json"
)

// Client talks to the remote storefront API. Every call goes through the
// otel-instrumented transport and carries a request id. Responses are JSON;
// non-2xx replies are mapped to *errors.ApiError with the server's error
// message intact. No retries and no client-side timeout: a failed call is
// surfaced once and the user re-triggers the action.
type Client struct {
	baseUrl string
	http    *http.Client
}

func NewClient(baseUrl string) *Client {
	return &Client{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
}

func (t *Client) Get(c context.Context, path string, out interface{}) error {
	return t.do(c, http.MethodGet, path, nil, out)
}

func (t *Client) Post(c context.Context, path string, body interface{}, out interface{}) error {
	return t.do(c, http.MethodPost, path, body, out)
}

func (t *Client) Put(c context.Context, path string, body interface{}, out interface{}) error {
	return t.do(c, http.MethodPut, path, body, out)
}

func (t *Client) Delete(c context.Context, path string, out interface{}) error {
	return t.do(c, http.MethodDelete, path, nil, out)
}

func (t *Client) do(
	c context.Context,
	method string,
	path string,
	body interface{},
	out interface{},
) error {
	c, span := otel.Tracer.Start(c, fmt.Sprintf("Client %s %s", method, path))
	defer span.End()

	url := t.baseUrl + path
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Client do").
		Str(log.KeyRequestMethod, method).
		Str(log.KeyRequestURL, url).
		Logger()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			err = fmt.Errorf("failed marshaling request body with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(c, method, url, reader)
	if err != nil {
		err = fmt.Errorf("failed creating request to %s with error=%w", url, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if body != nil {
		req.Header.Add(HeaderContentType, ValueJson)
	}
	requestId := log.RequestIDFromContext(c)
	if requestId == "" {
		requestId = uuid.NewString()
	}
	req.Header.Add(HeaderRequestID, requestId)
	logger = logger.With().Str(log.KeyRequestID, requestId).Logger()

	logger.Info().Msgf("sending %s request to %s", method, url)
	resp, err := t.http.Do(req)
	if err != nil {
		err = fmt.Errorf("failed sending %s request to %s with error=%w", method, url, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	defer resp.Body.Close()
	logger = logger.With().Int(log.KeyStatusCode, resp.StatusCode).Logger()
	logger.Info().Msgf("received status code=%d from %s", resp.StatusCode, url)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiBody := struct {
			Error string `json:"error"`
		}{}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiBody); decodeErr != nil {
			logger.Info().Msgf("response body is not json with error=%s", decodeErr.Error())
		}
		err = &errors.ApiError{StatusCode: resp.StatusCode, Message: apiBody.Error}
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	if out == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		err = fmt.Errorf("failed decoding response body from %s with error=%w", url, err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	return nil
}
