package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"gopkg.in/yaml.v3"

	. "github.com/deforceHK/gocryptomkt"
	"github.com/deforceHK/gocryptomkt/cryptomkt"
)

type Config struct {
	Endpoint     string        `yaml:"endpoint"`
	ApiKey       string        `yaml:"api_key"`
	ApiSecretKey string        `yaml:"api_secret_key"`
	Proxy        string        `yaml:"proxy"`
	Timeout      time.Duration `yaml:"timeout"`
	// http or fasthttp
	Transport string `yaml:"transport"`
	Location  string `yaml:"location"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

func defaultConfig() *Config {
	cfg := &Config{
		Endpoint:  cryptomkt.ENDPOINT,
		Timeout:   15 * time.Second,
		Transport: "http",
		Location:  "Local",
	}
	cfg.Logging.Level = "warn"
	cfg.Logging.Format = "text"
	return cfg
}

// LoadConfig reads the yaml file at path over the defaults, an empty path
// keeps the defaults. The environment overrides both.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	applyEnvOverrides(cfg)

	if cfg.Transport != "http" && cfg.Transport != "fasthttp" {
		return nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
	if _, err := time.LoadLocation(cfg.Location); err != nil {
		return nil, fmt.Errorf("unknown location %q: %w", cfg.Location, err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CRYPTOMKT_API_KEY"); v != "" {
		cfg.ApiKey = v
	}
	if v := os.Getenv("CRYPTOMKT_API_SECRET"); v != "" {
		cfg.ApiSecretKey = v
	}
	if v := os.Getenv("CRYPTOMKT_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
}

func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c *Config) APIConfig(logger *slog.Logger) *APIConfig {
	loc, _ := time.LoadLocation(c.Location)
	config := &APIConfig{
		Endpoint:     c.Endpoint,
		HttpClient:   getHttpClient(c.Proxy, c.Timeout),
		ApiKey:       c.ApiKey,
		ApiSecretKey: c.ApiSecretKey,
		Location:     loc,
		Logger:       logger,
	}
	if c.Transport == "fasthttp" {
		config.Transport = NewFastHttpTransport(&fasthttp.Client{
			Name:         USER_AGENT,
			ReadTimeout:  c.Timeout,
			WriteTimeout: c.Timeout,
		})
	}
	return config
}

func getHttpClient(proxyUrl string, timeout time.Duration) *http.Client {
	if proxyUrl == "" {
		return &http.Client{
			Timeout: timeout,
		}
	}

	return &http.Client{
		Transport: &http.Transport{
			Proxy: func(req *http.Request) (*url.URL, error) {
				return url.Parse(proxyUrl)
			},
		},
		Timeout: timeout,
	}
}
