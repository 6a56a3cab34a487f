package cryptomkt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	. "github.com/deforceHK/gocryptomkt"
)

const (
	ENDPOINT    = "https://api.cryptomkt.com"
	API_VERSION = "v1"

	/*
	  http headers
	*/
	X_MKT_APIKEY    = "X-MKT-APIKEY"
	X_MKT_SIGNATURE = "X-MKT-SIGNATURE"
	X_MKT_TIMESTAMP = "X-MKT-TIMESTAMP"

	CONTENT_TYPE = "Content-Type"
	ACCEPT       = "Accept"

	APPLICATION_JSON = "application/json"
	APPLICATION_FORM = "application/x-www-form-urlencoded"

	/*
	  public endpoints
	*/
	MARKET_URI = "market"
	TICKER_URI = "ticker"
	BOOK_URI   = "book"
	TRADES_URI = "trades"

	/*
	  private endpoints
	*/
	BALANCE_URI               = "balance"
	ACCOUNT_URI               = "account"
	ORDERS_CREATE_URI         = "orders/create"
	ORDERS_CANCEL_URI         = "orders/cancel"
	ORDERS_STATUS_URI         = "orders/status"
	ORDERS_ACTIVE_URI         = "orders/active"
	ORDERS_EXECUTED_URI       = "orders/executed"
	ORDERS_INSTANT_GET_URI    = "orders/instant/get"
	ORDERS_INSTANT_CREATE_URI = "orders/instant/create"
	PAYMENT_NEW_ORDER_URI     = "payment/new_order"
	PAYMENT_STATUS_URI        = "payment/status"
	PAYMENT_ORDERS_URI        = "payment/orders"

	/**
	  paging params
	*/
	DEFAULT_PAGE_LIMIT = 20
	MAX_PAGE_LIMIT     = 100
)

type Client struct {
	config *APIConfig
	signer *Signer
	logger *slog.Logger
}

// New builds the client, no request is made. The config is copied, missing
// pieces get defaults.
func New(config *APIConfig) *Client {
	var cfg APIConfig
	if config != nil {
		cfg = *config
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = ENDPOINT
	}
	cfg.Endpoint = strings.TrimRight(cfg.Endpoint, "/")
	if cfg.HttpClient == nil {
		cfg.HttpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.Transport == nil {
		cfg.Transport = NewHttpTransport(cfg.HttpClient)
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		config: &cfg,
		signer: NewSigner(cfg.ApiKey, cfg.ApiSecretKey),
		logger: cfg.Logger.With("exchange", CRYPTOMKT),
	}
}

func NewClient(apiKey, apiSecretKey string) *Client {
	return New(&APIConfig{
		ApiKey:       apiKey,
		ApiSecretKey: apiSecretKey,
	})
}

func (c *Client) GetExchangeName() string {
	return CRYPTOMKT
}

// DoRequest calls a public endpoint, the params go to the query string.
// The data member of the response envelope is decoded into response.
func (c *Client) DoRequest(
	ctx context.Context,
	uri string,
	params url.Values,
	response interface{},
) ([]byte, error) {
	return c.doRequest(ctx, uri, params, response, nil)
}

func (c *Client) doRequest(
	ctx context.Context,
	uri string,
	params url.Values,
	response interface{},
	pagination *Pagination,
) ([]byte, error) {
	headers := map[string]string{
		ACCEPT: APPLICATION_JSON,
	}
	return c.do(ctx, http.MethodGet, uri, c.buildUrl(uri, params), "", headers, response, pagination)
}

// DoSignRequest calls a private endpoint. GET params go to the query string,
// for other methods they are sent as a form body.
func (c *Client) DoSignRequest(
	ctx context.Context,
	httpMethod,
	uri string,
	params url.Values,
	response interface{},
) ([]byte, error) {
	return c.doSignRequest(ctx, httpMethod, uri, params, response, nil)
}

func (c *Client) doSignRequest(
	ctx context.Context,
	httpMethod,
	uri string,
	params url.Values,
	response interface{},
	pagination *Pagination,
) ([]byte, error) {
	if c.config.ApiKey == "" || c.config.ApiSecretKey == "" {
		return nil, NewInvalidArgument("%s needs an api key and a secret key", uri)
	}

	headers := c.signer.Headers(httpMethod, uri, params)
	headers[ACCEPT] = APPLICATION_JSON

	if httpMethod == http.MethodGet {
		return c.do(ctx, httpMethod, uri, c.buildUrl(uri, params), "", headers, response, pagination)
	}
	headers[CONTENT_TYPE] = APPLICATION_FORM
	return c.do(ctx, httpMethod, uri, c.buildUrl(uri, nil), params.Encode(), headers, response, pagination)
}

func (c *Client) buildUrl(uri string, params url.Values) string {
	reqUrl := c.config.Endpoint + "/" + API_VERSION + "/" + uri
	if len(params) > 0 {
		reqUrl += "?" + params.Encode()
	}
	return reqUrl
}

func (c *Client) do(
	ctx context.Context,
	httpMethod,
	uri,
	reqUrl,
	reqBody string,
	headers map[string]string,
	response interface{},
	pagination *Pagination,
) ([]byte, error) {
	resp, err := c.config.Transport.Do(ctx, httpMethod, reqUrl, reqBody, headers)
	if err != nil {
		if KindOf(err) == 0 {
			err = NewNetworkError(err, "%s %s", httpMethod, uri)
		}
		c.logger.Error("request failed", "method", httpMethod, "uri", uri, "error", err)
		return nil, err
	}
	c.logger.Debug("request", "method", httpMethod, "uri", uri, "status", resp.StatusCode)

	if err := decodeEnvelope(resp, response, pagination); err != nil {
		c.logger.Error(
			"bad response",
			"method", httpMethod,
			"uri", uri,
			"status", resp.StatusCode,
			"kind", KindOf(err).String(),
			"error", err,
		)
		return resp.Body, err
	}
	return resp.Body, nil
}

/*
The exchange wraps every answer:

	{"status": "success", "data": ..., "pagination": {...}}
	{"status": "error", "message": "invalid_request"}

The pagination member is decoded into pagination when both are present.
*/
func decodeEnvelope(resp *HttpResponse, response interface{}, pagination *Pagination) error {
	if !gjson.ValidBytes(resp.Body) {
		if resp.StatusCode != http.StatusOK {
			return NewError(resp.StatusCode, "HttpStatusCode:%d ,Desc:%s", resp.StatusCode, abbreviate(resp.Body))
		}
		return NewDecodeError(nil, "response is not json: %s", abbreviate(resp.Body))
	}

	result := gjson.ParseBytes(resp.Body)
	status := result.Get("status").String()
	if status == "error" || resp.StatusCode != http.StatusOK {
		message := result.Get("message").String()
		if message == "" {
			message = fmt.Sprintf("HttpStatusCode:%d ,Desc:%s", resp.StatusCode, abbreviate(resp.Body))
		}
		return NewError(resp.StatusCode, message)
	}
	if status != "success" {
		return NewDecodeError(nil, "unexpected response status %q", status)
	}

	data := result.Get("data")
	if !data.Exists() {
		return NewDecodeError(nil, "response has no data member")
	}
	if response != nil {
		if err := json.Unmarshal([]byte(data.Raw), response); err != nil {
			return NewDecodeError(err, "can not decode data member")
		}
	}
	if page := result.Get("pagination"); pagination != nil && page.IsObject() {
		if err := json.Unmarshal([]byte(page.Raw), pagination); err != nil {
			return NewDecodeError(err, "can not decode pagination member")
		}
	}
	return nil
}

func abbreviate(body []byte) string {
	if len(body) > 256 {
		return string(body[:256]) + "..."
	}
	return string(body)
}
