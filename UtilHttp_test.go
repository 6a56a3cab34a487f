package gocryptomkt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func echoServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if r.URL.Path == "/slow" {
			time.Sleep(300 * time.Millisecond)
		}
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-Agent", r.Header.Get("User-Agent"))
		w.Header().Set("X-Custom", r.Header.Get("X-Custom"))
		if r.URL.Path == "/teapot" {
			w.WriteHeader(http.StatusTeapot)
		}
		_, _ = w.Write(append([]byte(r.Method+" "+r.URL.RequestURI()+" "), body...))
	}))
	t.Cleanup(server.Close)
	return server
}

func transports() map[string]Transport {
	return map[string]Transport{
		"net/http": NewHttpTransport(&http.Client{Timeout: 5 * time.Second}),
		"fasthttp": NewFastHttpTransport(&fasthttp.Client{}),
	}
}

func TestTransport_Do(t *testing.T) {
	server := echoServer(t)

	for name, transport := range transports() {
		t.Run(name, func(t *testing.T) {
			resp, err := transport.Do(
				context.Background(),
				http.MethodPost,
				server.URL+"/v1/orders/create?x=1",
				"amount=0.3",
				map[string]string{"X-Custom": "yes", "Content-Type": "application/x-www-form-urlencoded"},
			)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "POST /v1/orders/create?x=1 amount=0.3", string(resp.Body))

			resp, err = transport.Do(context.Background(), http.MethodGet, server.URL+"/teapot", "", nil)
			require.NoError(t, err)
			assert.Equal(t, http.StatusTeapot, resp.StatusCode)
		})
	}
}

func TestTransport_NetworkError(t *testing.T) {
	server := echoServer(t)
	closedUrl := server.URL
	server.Close()

	for name, transport := range transports() {
		t.Run(name, func(t *testing.T) {
			_, err := transport.Do(context.Background(), http.MethodGet, closedUrl+"/v1/market", "", nil)
			require.Error(t, err)
			assert.True(t, IsNetworkError(err), err.Error())
		})
	}
}

func TestTransport_ContextDeadline(t *testing.T) {
	server := echoServer(t)

	for name, transport := range transports() {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			_, err := transport.Do(ctx, http.MethodGet, server.URL+"/slow", "", nil)
			require.Error(t, err)
			assert.True(t, IsNetworkError(err), err.Error())
		})
	}
}

func TestTransport_CancelledContext(t *testing.T) {
	server := echoServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, transport := range transports() {
		t.Run(name, func(t *testing.T) {
			_, err := transport.Do(ctx, http.MethodGet, server.URL+"/v1/market", "", nil)
			require.Error(t, err)
			assert.True(t, IsNetworkError(err))
		})
	}
}

func TestNewHttpRequest_BadUrl(t *testing.T) {
	_, err := NewHttpRequest(context.Background(), http.DefaultClient, "GET", "://bad", "", nil)
	assert.True(t, IsInvalidArgument(err))
}
