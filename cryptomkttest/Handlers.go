package cryptomkttest

import (
	"fmt"
	"maps"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const fixtureTime = "2018-05-16T14:01:36.327000"

func (e *Exchange) getMarkets(w http.ResponseWriter, r *http.Request) {
	writeData(w, Markets, nil)
}

func (e *Exchange) getTicker(w http.ResponseWriter, r *http.Request) {
	market := r.Form.Get("market")
	if market == "" {
		tickers := make([]map[string]interface{}, 0, len(Markets))
		for _, name := range Markets {
			tickers = append(tickers, Tickers[name])
		}
		writeData(w, tickers, nil)
		return
	}

	ticker, exist := Tickers[market]
	if !exist {
		writeError(w, http.StatusBadRequest, "invalid_market")
		return
	}
	writeData(w, []map[string]interface{}{ticker}, nil)
}

// getBook answers BOOK_DEPTH records per side around the ticker, buy prices
// descending and sell prices ascending.
func (e *Exchange) getBook(w http.ResponseWriter, r *http.Request) {
	ticker, exist := Tickers[r.Form.Get("market")]
	if !exist {
		writeError(w, http.StatusBadRequest, "invalid_market")
		return
	}
	side := r.Form.Get("type")
	if side != "buy" && side != "sell" {
		writeError(w, http.StatusBadRequest, "invalid_type")
		return
	}
	page, limit, ok := paging(w, r)
	if !ok {
		return
	}

	records := make([]map[string]interface{}, 0, BOOK_DEPTH)
	tick := decimal.NewFromInt(50)
	for i := 0; i < BOOK_DEPTH; i++ {
		var price decimal.Decimal
		if side == "buy" {
			price = decimal.RequireFromString(ticker["bid"].(string)).Sub(tick.Mul(decimal.NewFromInt(int64(i))))
		} else {
			price = decimal.RequireFromString(ticker["ask"].(string)).Add(tick.Mul(decimal.NewFromInt(int64(i))))
		}
		records = append(records, map[string]interface{}{
			"price":     price.String(),
			"amount":    decimal.NewFromFloat(0.01).Mul(decimal.NewFromInt(int64(i + 1))).String(),
			"timestamp": fixtureTime,
		})
	}

	data, pagination := paginate(records, page, limit)
	writeData(w, data, pagination)
}

// getTrades filters by the inclusive day range and answers newest first.
func (e *Exchange) getTrades(w http.ResponseWriter, r *http.Request) {
	market := r.Form.Get("market")
	if _, exist := Tickers[market]; !exist {
		writeError(w, http.StatusBadRequest, "invalid_market")
		return
	}
	page, limit, ok := paging(w, r)
	if !ok {
		return
	}

	var start, end string
	if v := r.Form.Get("start"); v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_start")
			return
		}
		start = v
	}
	if v := r.Form.Get("end"); v != "" {
		if _, err := time.Parse("2006-01-02", v); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_end")
			return
		}
		end = v
	}

	selected := make([]map[string]interface{}, 0)
	for _, trade := range Trades {
		if trade["market"] != market {
			continue
		}
		day := trade["timestamp"].(string)[:10]
		if start != "" && day < start {
			continue
		}
		if end != "" && day > end {
			continue
		}
		selected = append(selected, trade)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i]["timestamp"].(string) > selected[j]["timestamp"].(string)
	})

	data, pagination := paginate(selected, page, limit)
	writeData(w, data, pagination)
}

func (e *Exchange) getBalance(w http.ResponseWriter, r *http.Request) {
	writeData(w, Balances, nil)
}

func (e *Exchange) getAccount(w http.ResponseWriter, r *http.Request) {
	writeData(w, AccountInfo, nil)
}

func (e *Exchange) createOrder(w http.ResponseWriter, r *http.Request) {
	market := r.PostForm.Get("market")
	if _, exist := Tickers[market]; !exist {
		writeError(w, http.StatusBadRequest, "invalid_market")
		return
	}
	side := r.PostForm.Get("type")
	if side != "buy" && side != "sell" {
		writeError(w, http.StatusBadRequest, "invalid_type")
		return
	}
	amount, err := decimal.NewFromString(r.PostForm.Get("amount"))
	if err != nil || !amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "invalid_amount")
		return
	}
	price, err := decimal.NewFromString(r.PostForm.Get("price"))
	if err != nil || !price.IsPositive() {
		writeError(w, http.StatusBadRequest, "invalid_price")
		return
	}
	if side == "buy" && amount.Mul(price).GreaterThan(decimal.RequireFromString("1000000")) {
		writeError(w, http.StatusPaymentRequired, "insuficient_funds")
		return
	}

	e.mu.Lock()
	e.seq++
	order := map[string]interface{}{
		"id":              fmt.Sprintf("M%d", 104000+e.seq),
		"status":          "active",
		"type":            side,
		"market":          market,
		"price":           price.String(),
		"execution_price": nil,
		"amount": map[string]interface{}{
			"original":  amount.String(),
			"remaining": amount.String(),
		},
		"created_at": time.Now().UTC().Format("2006-01-02T15:04:05.000000"),
		"updated_at": time.Now().UTC().Format("2006-01-02T15:04:05.000000"),
	}
	e.orders[order["id"].(string)] = order
	answer := maps.Clone(order)
	e.mu.Unlock()

	writeData(w, answer, nil)
}

func (e *Exchange) cancelOrder(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, exist := e.orders[r.PostForm.Get("id")]
	if !exist {
		writeError(w, http.StatusNotFound, "order_not_found")
		return
	}
	if order["status"] != "active" {
		writeError(w, http.StatusBadRequest, "order_not_active")
		return
	}
	order["status"] = "cancelled"
	writeData(w, order, nil)
}

func (e *Exchange) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	defer e.mu.Unlock()

	order, exist := e.orders[r.Form.Get("id")]
	if !exist {
		writeError(w, http.StatusNotFound, "order_not_found")
		return
	}
	writeData(w, order, nil)
}

func (e *Exchange) getOrders(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, ok := paging(w, r)
		if !ok {
			return
		}
		market := r.Form.Get("market")

		e.mu.Lock()
		orders := make([]map[string]interface{}, 0)
		for _, order := range e.orders {
			if order["status"] == status && order["market"] == market {
				orders = append(orders, maps.Clone(order))
			}
		}
		e.mu.Unlock()
		sort.Slice(orders, func(i, j int) bool {
			return orders[i]["id"].(string) < orders[j]["id"].(string)
		})

		data, pagination := paginate(orders, page, limit)
		writeData(w, data, pagination)
	}
}

func (e *Exchange) getInstant(w http.ResponseWriter, r *http.Request) {
	ticker, exist := Tickers[r.PostForm.Get("market")]
	if !exist {
		writeError(w, http.StatusBadRequest, "invalid_market")
		return
	}
	amount, err := decimal.NewFromString(r.PostForm.Get("amount"))
	if err != nil || !amount.IsPositive() {
		writeError(w, http.StatusBadRequest, "invalid_amount")
		return
	}

	// buy spends amount of the counter currency, sell spends amount of the basis
	var obtained decimal.Decimal
	switch r.PostForm.Get("type") {
	case "buy":
		obtained = amount.Div(decimal.RequireFromString(ticker["ask"].(string))).Round(8)
	case "sell":
		obtained = amount.Mul(decimal.RequireFromString(ticker["bid"].(string)))
	default:
		writeError(w, http.StatusBadRequest, "invalid_type")
		return
	}
	writeData(w, map[string]interface{}{
		"obtained": obtained.String(),
		"required": amount.String(),
	}, nil)
}

func (e *Exchange) createInstant(w http.ResponseWriter, r *http.Request) {
	if _, exist := Tickers[r.PostForm.Get("market")]; !exist {
		writeError(w, http.StatusBadRequest, "invalid_market")
		return
	}
	writeData(w, "orden creada", nil)
}

func (e *Exchange) createPayment(w http.ResponseWriter, r *http.Request) {
	toReceive, err := decimal.NewFromString(r.PostForm.Get("to_receive"))
	if err != nil || !toReceive.IsPositive() {
		writeError(w, http.StatusBadRequest, "invalid_to_receive")
		return
	}
	for _, required := range []string{"to_receive_currency", "payment_receiver"} {
		if r.PostForm.Get(required) == "" {
			writeError(w, http.StatusBadRequest, "missing_"+required)
			return
		}
	}

	now := time.Now().UTC()
	e.mu.Lock()
	e.seq++
	id := fmt.Sprintf("P%d", 2023000+e.seq)
	payment := map[string]interface{}{
		"id":                  id,
		"external_id":         r.PostForm.Get("external_id"),
		"status":              0,
		"to_receive":          toReceive.String(),
		"to_receive_currency": strings.ToUpper(r.PostForm.Get("to_receive_currency")),
		"expected_amount":     toReceive.Div(decimal.RequireFromString(Tickers["ETHCLP"]["ask"].(string))).Round(8).String(),
		"expected_currency":   "ETH",
		"deposit_address":     "0x1c02b2b04c5fb2a5a1e7e1d6a58e5e5b7a5f1d3e",
		"refund_email":        r.PostForm.Get("refund_email"),
		"qr":                  "https://www.cryptomkt.com/invoice/" + id + "/qr",
		"obs":                 "",
		"callback_url":        r.PostForm.Get("callback_url"),
		"error_url":           r.PostForm.Get("error_url"),
		"success_url":         r.PostForm.Get("success_url"),
		"payment_url":         "https://www.cryptomkt.com/invoice/" + id,
		"created_at":          now.Format("2006-01-02T15:04:05.000000"),
		"updated_at":          now.Format("2006-01-02T15:04:05.000000"),
	}
	e.payments = append(e.payments, payment)
	e.mu.Unlock()

	writeData(w, payment, nil)
}

func (e *Exchange) getPaymentStatus(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, payment := range e.payments {
		if payment["id"] == r.Form.Get("id") {
			writeData(w, payment, nil)
			return
		}
	}
	writeError(w, http.StatusNotFound, "payment_not_found")
}

func (e *Exchange) getPayments(w http.ResponseWriter, r *http.Request) {
	if r.Form.Get("start_date") == "" || r.Form.Get("end_date") == "" {
		writeError(w, http.StatusBadRequest, "invalid_date")
		return
	}
	page, limit, ok := paging(w, r)
	if !ok {
		return
	}

	e.mu.Lock()
	payments := append([]map[string]interface{}(nil), e.payments...)
	e.mu.Unlock()

	data, pagination := paginate(payments, page, limit)
	writeData(w, data, pagination)
}
