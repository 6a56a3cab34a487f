// Package cryptomkttest runs an in-process fake of the CryptoMarket v1 REST
// api for tests. It serves fixtures, checks the signature of private calls
// and records every request.
package cryptomkttest

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

const (
	API_KEY        = "test-api-key"
	API_SECRET_KEY = "test-api-secret"
)

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
	Header http.Header
}

type reply struct {
	status int
	body   string
}

type Exchange struct {
	*httptest.Server
	ApiKey       string
	ApiSecretKey string

	mu       sync.Mutex
	requests []Request
	replies  map[string]reply
	nonces   map[string]bool
	orders   map[string]map[string]interface{}
	payments []map[string]interface{}
	seq      int
}

func NewExchange() *Exchange {
	return NewExchangeWithKeys(API_KEY, API_SECRET_KEY)
}

func NewExchangeWithKeys(apiKey, apiSecretKey string) *Exchange {
	e := &Exchange{
		ApiKey:       apiKey,
		ApiSecretKey: apiSecretKey,
		replies:      make(map[string]reply),
		nonces:       make(map[string]bool),
		orders:       make(map[string]map[string]interface{}),
	}
	for _, order := range executedOrders {
		e.orders[order["id"].(string)] = order
	}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Use(e.record)
	v1.HandleFunc("/market", e.getMarkets).Methods(http.MethodGet)
	v1.HandleFunc("/ticker", e.getTicker).Methods(http.MethodGet)
	v1.HandleFunc("/book", e.getBook).Methods(http.MethodGet)
	v1.HandleFunc("/trades", e.getTrades).Methods(http.MethodGet)

	private := v1.NewRoute().Subrouter()
	private.Use(e.authenticate)
	private.HandleFunc("/balance", e.getBalance).Methods(http.MethodGet)
	private.HandleFunc("/account", e.getAccount).Methods(http.MethodGet)
	private.HandleFunc("/orders/create", e.createOrder).Methods(http.MethodPost)
	private.HandleFunc("/orders/cancel", e.cancelOrder).Methods(http.MethodPost)
	private.HandleFunc("/orders/status", e.getOrderStatus).Methods(http.MethodGet)
	private.HandleFunc("/orders/active", e.getOrders("active")).Methods(http.MethodGet)
	private.HandleFunc("/orders/executed", e.getOrders("executed")).Methods(http.MethodGet)
	private.HandleFunc("/orders/instant/get", e.getInstant).Methods(http.MethodPost)
	private.HandleFunc("/orders/instant/create", e.createInstant).Methods(http.MethodPost)
	private.HandleFunc("/payment/new_order", e.createPayment).Methods(http.MethodPost)
	private.HandleFunc("/payment/status", e.getPaymentStatus).Methods(http.MethodGet)
	private.HandleFunc("/payment/orders", e.getPayments).Methods(http.MethodGet)

	e.Server = httptest.NewServer(router)
	return e
}

// Reply makes every later method+path request answer status and body,
// ahead of routing and authentication. path is like /v1/ticker.
func (e *Exchange) Reply(method, path string, status int, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.replies[method+" "+path] = reply{status, body}
}

func (e *Exchange) Requests() []Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Request(nil), e.requests...)
}

func (e *Exchange) LastRequest() (Request, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.requests) == 0 {
		return Request{}, false
	}
	return e.requests[len(e.requests)-1], true
}

func (e *Exchange) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request")
			return
		}

		e.mu.Lock()
		e.requests = append(e.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Form:   r.PostForm,
			Header: r.Header.Clone(),
		})
		fixed, exist := e.replies[r.Method+" "+r.URL.Path]
		e.mu.Unlock()

		if exist {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(fixed.status)
			_, _ = w.Write([]byte(fixed.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (e *Exchange) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-MKT-APIKEY") != e.ApiKey {
			writeError(w, http.StatusUnauthorized, "invalid_api_key")
			return
		}

		timestamp := r.Header.Get("X-MKT-TIMESTAMP")
		if _, err := strconv.ParseInt(timestamp, 10, 64); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_timestamp")
			return
		}

		msg := timestamp + r.URL.Path
		if r.Method != http.MethodGet {
			keys := make([]string, 0, len(r.PostForm))
			for k := range r.PostForm {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				msg += strings.Join(r.PostForm[k], "")
			}
		}
		mac := hmac.New(sha512.New384, []byte(e.ApiSecretKey))
		mac.Write([]byte(msg))
		expected := hex.EncodeToString(mac.Sum(nil))
		if !hmac.Equal([]byte(expected), []byte(r.Header.Get("X-MKT-SIGNATURE"))) {
			writeError(w, http.StatusUnauthorized, "invalid_signature")
			return
		}

		e.mu.Lock()
		replayed := e.nonces[timestamp]
		e.nonces[timestamp] = true
		e.mu.Unlock()
		if replayed {
			writeError(w, http.StatusUnauthorized, "invalid_nonce")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeData(w http.ResponseWriter, data interface{}, pagination map[string]interface{}) {
	envelope := map[string]interface{}{
		"status": "success",
		"data":   data,
	}
	if pagination != nil {
		envelope["pagination"] = pagination
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(envelope)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": message,
	})
}

// paging reads page and limit, limit is 20 by default and at most 100.
func paging(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	page, limit := 0, 20
	var err error
	if v := r.Form.Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil || page < 0 {
			writeError(w, http.StatusBadRequest, "invalid_page")
			return 0, 0, false
		}
	}
	if v := r.Form.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit <= 0 || limit > 100 {
			writeError(w, http.StatusBadRequest, "invalid_limit")
			return 0, 0, false
		}
	}
	return page, limit, true
}

func paginate[T any](items []T, page, limit int) ([]T, map[string]interface{}) {
	from := page * limit
	if from > len(items) {
		from = len(items)
	}
	to := from + limit
	if to > len(items) {
		to = len(items)
	}

	var previous, next interface{}
	if page > 0 {
		previous = page - 1
	}
	if to < len(items) {
		next = page + 1
	}
	return items[from:to], map[string]interface{}{
		"previous": previous,
		"next":     next,
		"page":     page,
		"limit":    limit,
	}
}
