package cryptomkt

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/deforceHK/gocryptomkt"
	"github.com/deforceHK/gocryptomkt/cryptomkttest"
)

func newTestClient(t *testing.T) (*Client, *cryptomkttest.Exchange) {
	t.Helper()
	exchange := cryptomkttest.NewExchange()
	t.Cleanup(exchange.Close)

	client := New(&APIConfig{
		Endpoint:     exchange.URL,
		HttpClient:   exchange.Client(),
		ApiKey:       cryptomkttest.API_KEY,
		ApiSecretKey: cryptomkttest.API_SECRET_KEY,
		Location:     time.UTC,
	})
	return client, exchange
}

func TestNew_Defaults(t *testing.T) {
	client := New(nil)
	assert.Equal(t, ENDPOINT, client.config.Endpoint)
	assert.NotNil(t, client.config.HttpClient)
	assert.NotNil(t, client.config.Transport)
	assert.NotNil(t, client.config.Logger)
	assert.Equal(t, time.Local, client.config.Location)
	assert.Equal(t, CRYPTOMKT, client.GetExchangeName())

	config := &APIConfig{Endpoint: "http://127.0.0.1:1/"}
	client = New(config)
	assert.Equal(t, "http://127.0.0.1:1", client.config.Endpoint)
	assert.Nil(t, config.Transport, "the caller config must not be touched")
	assert.Equal(t, "http://127.0.0.1:1/v1/ticker?market=ETHCLP", client.buildUrl(TICKER_URI, map[string][]string{"market": {"ETHCLP"}}))
}

func TestClient_DoSignRequest_NoCredentials(t *testing.T) {
	_, exchange := newTestClient(t)
	client := New(&APIConfig{Endpoint: exchange.URL, HttpClient: exchange.Client()})

	_, _, err := client.GetBalance(context.Background())
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
	assert.Empty(t, exchange.Requests())
}

/**
 *
 * The envelope decoding test step is:
 * 1. error envelope with a 4xx status
 * 2. error envelope with a 200 status
 * 3. non json body with a 5xx status
 * 4. non json body with a 200 status
 * 5. unknown status and missing data member
 * 6. data member of the wrong shape
 *
 **/
func TestClient_DoRequest_Envelope(t *testing.T) {
	client, exchange := newTestClient(t)
	ctx := context.Background()

	exchange.Reply(http.MethodGet, "/v1/market", http.StatusBadRequest, `{"status":"error","message":"invalid_request"}`)
	_, resp, err := client.GetMarkets(ctx)
	require.Error(t, err)
	assert.True(t, IsApiError(err))
	assert.Equal(t, http.StatusBadRequest, err.(Error).Code())
	assert.Contains(t, err.Error(), "invalid_request")
	assert.Contains(t, string(resp), "invalid_request")

	exchange.Reply(http.MethodGet, "/v1/market", http.StatusOK, `{"status":"error","message":"market_closed"}`)
	_, _, err = client.GetMarkets(ctx)
	assert.True(t, IsApiError(err))
	assert.Equal(t, http.StatusOK, err.(Error).Code())

	exchange.Reply(http.MethodGet, "/v1/market", http.StatusBadGateway, `<html>bad gateway</html>`)
	_, _, err = client.GetMarkets(ctx)
	assert.True(t, IsApiError(err))
	assert.Equal(t, http.StatusBadGateway, err.(Error).Code())
	assert.Contains(t, err.Error(), "bad gateway")

	exchange.Reply(http.MethodGet, "/v1/market", http.StatusOK, `<html>maintenance</html>`)
	_, _, err = client.GetMarkets(ctx)
	assert.True(t, IsDecodeError(err))

	exchange.Reply(http.MethodGet, "/v1/market", http.StatusOK, `{"status":"pending","data":[]}`)
	_, _, err = client.GetMarkets(ctx)
	assert.True(t, IsDecodeError(err))

	exchange.Reply(http.MethodGet, "/v1/market", http.StatusOK, `{"status":"success"}`)
	_, _, err = client.GetMarkets(ctx)
	assert.True(t, IsDecodeError(err))

	exchange.Reply(http.MethodGet, "/v1/market", http.StatusOK, `{"status":"success","data":{"ETHCLP":true}}`)
	_, _, err = client.GetMarkets(ctx)
	assert.True(t, IsDecodeError(err))

	exchange.Reply(http.MethodGet, "/v1/market", http.StatusOK, `{"status":"success","data":["ETHCLP",""]}`)
	_, _, err = client.GetMarkets(ctx)
	assert.True(t, IsDecodeError(err))
}

func TestClient_NetworkError(t *testing.T) {
	exchange := cryptomkttest.NewExchange()
	endpoint := exchange.URL
	exchange.Close()

	client := New(&APIConfig{Endpoint: endpoint, HttpClient: &http.Client{Timeout: time.Second}})
	markets, resp, err := client.GetMarkets(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.Nil(t, markets)
	assert.Nil(t, resp)
}

func TestClient_CancelledContext(t *testing.T) {
	client, exchange := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := client.GetMarkets(ctx)
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.Empty(t, exchange.Requests())
}

func TestAbbreviate(t *testing.T) {
	assert.Equal(t, "short", abbreviate([]byte("short")))
	long := strings.Repeat("x", 300)
	assert.Equal(t, strings.Repeat("x", 256)+"...", abbreviate([]byte(long)))
}
