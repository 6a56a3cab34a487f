package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deforceHK/gocryptomkt/cryptomkt"
	"github.com/deforceHK/gocryptomkt/cryptomkttest"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, cryptomkt.ENDPOINT, cfg.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, "http", cfg.Transport)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoint: http://127.0.0.1:8080
api_key: file-key
api_secret_key: file-secret
timeout: 3s
transport: fasthttp
location: UTC
logging:
  level: debug
  format: json
`), 0o600))

	t.Setenv("CRYPTOMKT_API_KEY", "env-key")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Endpoint)
	assert.Equal(t, "env-key", cfg.ApiKey)
	assert.Equal(t, "file-secret", cfg.ApiSecretKey)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "fasthttp", cfg.Transport)
	assert.Equal(t, "json", cfg.Logging.Format)

	api := cfg.APIConfig(cfg.NewLogger(&bytes.Buffer{}))
	assert.NotNil(t, api.Transport)
	assert.Equal(t, time.UTC, api.Location)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("transport: carrier-pigeon\n"), 0o600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func newTestCommand(t *testing.T, transport string) (*Command, *bytes.Buffer) {
	t.Helper()
	exchange := cryptomkttest.NewExchange()
	t.Cleanup(exchange.Close)

	cfg := defaultConfig()
	cfg.Endpoint = exchange.URL
	cfg.ApiKey = cryptomkttest.API_KEY
	cfg.ApiSecretKey = cryptomkttest.API_SECRET_KEY
	cfg.Transport = transport
	cfg.Location = "UTC"

	logs := &bytes.Buffer{}
	out := &bytes.Buffer{}
	client := cryptomkt.New(cfg.APIConfig(cfg.NewLogger(logs)))
	return NewCommand(client, out, false), out
}

func TestCommand_Run(t *testing.T) {
	for _, transport := range []string{"http", "fasthttp"} {
		t.Run(transport, func(t *testing.T) {
			c, out := newTestCommand(t, transport)
			ctx := context.Background()
			opts := &Options{Market: "ethclp", Side: "sell", Start: "2018-05-15", End: "2018-05-16", Limit: 5}

			require.NoError(t, c.Run(ctx, "markets", opts))
			assert.Contains(t, out.String(), "XLMCLP\tXLM / CLP")

			out.Reset()
			require.NoError(t, c.Run(ctx, "ticker", opts))
			assert.Contains(t, out.String(), "ETHCLP\tlast 264900\tbid 259000\task 266150")

			out.Reset()
			require.NoError(t, c.Run(ctx, "ticker", &Options{}))
			assert.Equal(t, len(cryptomkttest.Markets), bytes.Count(out.Bytes(), []byte("\n")))

			out.Reset()
			require.NoError(t, c.Run(ctx, "book", opts))
			assert.Equal(t, 5, bytes.Count(out.Bytes(), []byte("\n")))
			assert.Contains(t, out.String(), "sell\t266150\t0.01")

			out.Reset()
			require.NoError(t, c.Run(ctx, "trades", opts))
			assert.Contains(t, out.String(), "2018-05-15 00:00:00\tbuy\t262100\t0.2")

			out.Reset()
			require.NoError(t, c.Run(ctx, "balance", opts))
			assert.Contains(t, out.String(), "ETH\tavailable 10.3399\tbalance 11.3399")

			assert.Error(t, c.Run(ctx, "withdraw", opts))
			assert.Error(t, c.Run(ctx, "book", &Options{Market: "ETHCLP", Side: "both", Limit: 5}))
		})
	}
}
