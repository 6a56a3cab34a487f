package cryptomkt

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	. "github.com/deforceHK/gocryptomkt"
)

type orderRecord struct {
	Id     string `json:"id"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Market string `json:"market"`
	Amount struct {
		Original  decimal.NullDecimal `json:"original"`
		Remaining decimal.NullDecimal `json:"remaining"`
		Executed  decimal.NullDecimal `json:"executed"`
	} `json:"amount"`
	Price          decimal.NullDecimal `json:"price"`
	ExecutionPrice decimal.NullDecimal `json:"execution_price"`
	Fee            decimal.NullDecimal `json:"fee"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
}

func (c *Client) toOrder(record *orderRecord) (*Order, error) {
	fc := fieldCheck{}
	order := &Order{
		OrderId:         fc.str("id", record.Id),
		Market:          fc.str("market", record.Market),
		Side:            ParseTradeSide(fc.str("type", record.Type)),
		Status:          ParseTradeStatus(fc.str("status", record.Status)),
		Amount:          fc.decimal("amount.original", record.Amount.Original),
		RemainingAmount: record.Amount.Remaining.Decimal,
		ExecutedAmount:  record.Amount.Executed.Decimal,
		Price:           record.Price.Decimal,
		ExecutionPrice:  record.ExecutionPrice.Decimal,
		Fee:             record.Fee.Decimal,
	}
	order.CreatedAt, order.OrderDate = c.toMillisecond(fc.time("created_at", record.CreatedAt))
	if record.UpdatedAt != "" {
		order.UpdatedAt, _ = c.toMillisecond(fc.time("updated_at", record.UpdatedAt))
	}
	if err := fc.err("order"); err != nil {
		return nil, err
	}
	return order, nil
}

func (c *Client) toOrders(records []orderRecord) ([]*Order, error) {
	orders := make([]*Order, 0, len(records))
	for i := range records {
		order, err := c.toOrder(&records[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// PlaceOrder places a limit order. It is not idempotent and never retried,
// a failed call may still have placed the order.
func (m *Market) PlaceOrder(
	ctx context.Context,
	side TradeSide,
	amount,
	price decimal.Decimal,
) (*Order, []byte, error) {
	if !side.Valid() {
		return nil, nil, NewInvalidArgument("unknown order side %d", side)
	}
	if !amount.IsPositive() || !price.IsPositive() {
		return nil, nil, NewInvalidArgument("amount %s and price %s must be positive", amount, price)
	}

	params := url.Values{}
	params.Set("amount", amount.String())
	params.Set("market", m.name)
	params.Set("price", price.String())
	params.Set("type", side.String())

	var response orderRecord
	resp, err := m.DoSignRequest(ctx, http.MethodPost, ORDERS_CREATE_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}
	order, err := m.toOrder(&response)
	return order, resp, err
}

func (m *Market) CancelOrder(ctx context.Context, orderId string) (*Order, []byte, error) {
	if orderId == "" {
		return nil, nil, NewInvalidArgument("order id is empty")
	}

	params := url.Values{}
	params.Set("id", orderId)

	var response orderRecord
	resp, err := m.DoSignRequest(ctx, http.MethodPost, ORDERS_CANCEL_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}
	order, err := m.toOrder(&response)
	return order, resp, err
}

func (m *Market) GetOrderStatus(ctx context.Context, orderId string) (*Order, []byte, error) {
	if orderId == "" {
		return nil, nil, NewInvalidArgument("order id is empty")
	}

	params := url.Values{}
	params.Set("id", orderId)

	var response orderRecord
	resp, err := m.DoSignRequest(ctx, http.MethodGet, ORDERS_STATUS_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}
	order, err := m.toOrder(&response)
	return order, resp, err
}

func (m *Market) GetActiveOrders(ctx context.Context, page, limit int) ([]*Order, *Pagination, []byte, error) {
	return m.getOrders(ctx, ORDERS_ACTIVE_URI, page, limit)
}

func (m *Market) GetExecutedOrders(ctx context.Context, page, limit int) ([]*Order, *Pagination, []byte, error) {
	return m.getOrders(ctx, ORDERS_EXECUTED_URI, page, limit)
}

func (m *Market) getOrders(ctx context.Context, uri string, page, limit int) ([]*Order, *Pagination, []byte, error) {
	if err := checkPaging(page, limit); err != nil {
		return nil, nil, nil, err
	}

	params := url.Values{}
	params.Set("market", m.name)
	pagingParams(params, page, limit)

	var response []orderRecord
	pagination := newPagination(page, limit)
	resp, err := m.doSignRequest(ctx, http.MethodGet, uri, params, &response, pagination)
	if err != nil {
		return nil, nil, resp, err
	}
	orders, err := m.toOrders(response)
	if err != nil {
		return nil, nil, resp, err
	}
	return orders, pagination, resp, nil
}

// GetInstantQuote estimates an instant order of amount, nothing is placed.
func (m *Market) GetInstantQuote(
	ctx context.Context,
	side TradeSide,
	amount decimal.Decimal,
) (*InstantQuote, []byte, error) {
	params, err := m.instantParams(side, amount)
	if err != nil {
		return nil, nil, err
	}

	var response struct {
		Obtained decimal.NullDecimal `json:"obtained"`
		Required decimal.NullDecimal `json:"required"`
	}
	resp, err := m.DoSignRequest(ctx, http.MethodPost, ORDERS_INSTANT_GET_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}

	fc := fieldCheck{}
	quote := &InstantQuote{
		Obtained: fc.decimal("obtained", response.Obtained),
		Required: fc.decimal("required", response.Required),
	}
	if err := fc.err("instant quote"); err != nil {
		return nil, resp, err
	}
	return quote, resp, nil
}

// PlaceInstantOrder buys or sells amount at the market. Like PlaceOrder it is
// never retried.
func (m *Market) PlaceInstantOrder(ctx context.Context, side TradeSide, amount decimal.Decimal) ([]byte, error) {
	params, err := m.instantParams(side, amount)
	if err != nil {
		return nil, err
	}
	return m.DoSignRequest(ctx, http.MethodPost, ORDERS_INSTANT_CREATE_URI, params, nil)
}

func (m *Market) instantParams(side TradeSide, amount decimal.Decimal) (url.Values, error) {
	if !side.Valid() {
		return nil, NewInvalidArgument("unknown order side %d", side)
	}
	if !amount.IsPositive() {
		return nil, NewInvalidArgument("amount %s must be positive", amount)
	}

	params := url.Values{}
	params.Set("market", m.name)
	params.Set("type", side.String())
	params.Set("amount", amount.String())
	return params, nil
}
