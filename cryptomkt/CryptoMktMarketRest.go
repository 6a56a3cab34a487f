package cryptomkt

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	. "github.com/deforceHK/gocryptomkt"
)

// Market is one tradable pair. Handles share the client config read only,
// any number of them can be used concurrently.
type Market struct {
	*Client
	name string
	pair Pair
}

var _ MarketRestAPI = (*Market)(nil)
var _ AccountRestAPI = (*Client)(nil)

func (c *Client) newMarket(name string) *Market {
	return &Market{Client: c, name: name, pair: ParseMarket(name)}
}

// GetMarkets lists the markets of the exchange.
func (c *Client) GetMarkets(ctx context.Context) ([]*Market, []byte, error) {
	var names []string
	resp, err := c.DoRequest(ctx, MARKET_URI, nil, &names)
	if err != nil {
		return nil, resp, err
	}

	markets := make([]*Market, 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, resp, NewDecodeError(nil, "market list holds an empty name")
		}
		markets = append(markets, c.newMarket(name))
	}
	return markets, resp, nil
}

// CreateMarket returns the handle of a market by name, no request is made.
func (c *Client) CreateMarket(name string) (*Market, error) {
	if name == "" {
		return nil, NewInvalidArgument("market name is empty")
	}
	return c.newMarket(name), nil
}

// GetTickers requests the tickers of the markets concurrently. The tickers
// are in the order of markets. The first failure cancels the requests still
// in flight and is returned.
func (c *Client) GetTickers(ctx context.Context, markets ...*Market) ([]*Ticker, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tickers := make([]*Ticker, len(markets))
	var once sync.Once
	var firstErr error

	wg := sync.WaitGroup{}
	wg.Add(len(markets))
	for i, m := range markets {
		go func(i int, m *Market) {
			defer wg.Done()
			ticker, _, err := m.GetCurrentTicker(ctx)
			if err != nil {
				once.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			tickers[i] = ticker
		}(i, m)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return tickers, nil
}

func (m *Market) GetName() string {
	return m.name
}

func (m *Market) GetPair() Pair {
	return m.pair
}

func (m *Market) String() string {
	return m.name
}

func (m *Market) GetCurrentTicker(ctx context.Context) (*Ticker, []byte, error) {
	params := url.Values{}
	params.Set("market", m.name)

	var response []struct {
		Market    string              `json:"market"`
		LastPrice decimal.NullDecimal `json:"last_price"`
		Bid       decimal.NullDecimal `json:"bid"`
		Ask       decimal.NullDecimal `json:"ask"`
		High      decimal.NullDecimal `json:"high"`
		Low       decimal.NullDecimal `json:"low"`
		Volume    decimal.NullDecimal `json:"volume"`
		Timestamp string              `json:"timestamp"`
	}
	resp, err := m.DoRequest(ctx, TICKER_URI, params, &response)
	if err != nil {
		return nil, resp, err
	}

	for _, item := range response {
		if item.Market != m.name {
			continue
		}

		fc := fieldCheck{}
		ticker := &Ticker{
			Pair:   m.pair,
			Market: item.Market,
			Last:   fc.decimal("last_price", item.LastPrice),
			Buy:    item.Bid.Decimal,
			Sell:   item.Ask.Decimal,
			High:   item.High.Decimal,
			Low:    item.Low.Decimal,
			Vol:    item.Volume.Decimal,
		}
		ticker.Timestamp, ticker.Date = m.toMillisecond(fc.time("timestamp", item.Timestamp))
		if err := fc.err("ticker"); err != nil {
			return nil, resp, err
		}
		return ticker, resp, nil
	}

	return nil, resp, NewDecodeError(nil, "no ticker of %s in the response", m.name)
}

// GetOrdersBook returns one side of the book, at most limit records in the
// exchange order.
func (m *Market) GetOrdersBook(
	ctx context.Context,
	side TradeSide,
	page,
	limit int,
) (DepthRecords, *Pagination, []byte, error) {
	if !side.Valid() {
		return nil, nil, nil, NewInvalidArgument("unknown book side %d", side)
	}
	if err := checkPaging(page, limit); err != nil {
		return nil, nil, nil, err
	}

	params := url.Values{}
	params.Set("market", m.name)
	params.Set("type", side.String())
	pagingParams(params, page, limit)

	var response []struct {
		Price     decimal.NullDecimal `json:"price"`
		Amount    decimal.NullDecimal `json:"amount"`
		Timestamp string              `json:"timestamp"`
	}
	pagination := newPagination(page, limit)
	resp, err := m.doRequest(ctx, BOOK_URI, params, &response, pagination)
	if err != nil {
		return nil, nil, resp, err
	}

	if len(response) > limit {
		response = response[:limit]
	}

	records := make(DepthRecords, 0, len(response))
	for _, item := range response {
		fc := fieldCheck{}
		record := DepthRecord{
			Side:   side,
			Price:  fc.decimal("price", item.Price),
			Amount: fc.decimal("amount", item.Amount),
		}
		if item.Timestamp != "" {
			record.Timestamp, _ = m.toMillisecond(fc.time("timestamp", item.Timestamp))
		}
		if err := fc.err("book record"); err != nil {
			return nil, nil, resp, err
		}
		records = append(records, record)
	}
	return records, pagination, resp, nil
}

// GetTrades returns the trades between start and end, yyyy-mm-dd, either may be
// empty. The result is in ascending time order. A trade outside the days asked
// for is a DecodeError, the response is not trusted to have filtered them.
func (m *Market) GetTrades(
	ctx context.Context,
	start,
	end string,
	page,
	limit int,
) ([]*Trade, *Pagination, []byte, error) {
	if err := CheckDateRange(start, end); err != nil {
		return nil, nil, nil, err
	}
	if err := checkPaging(page, limit); err != nil {
		return nil, nil, nil, err
	}

	params := url.Values{}
	params.Set("market", m.name)
	var from, to time.Time
	if start != "" {
		params.Set("start", start)
		from, _ = ParseDate(start)
	}
	if end != "" {
		params.Set("end", end)
		to, _ = ParseDate(end)
		to = to.AddDate(0, 0, 1)
	}
	pagingParams(params, page, limit)

	var response []struct {
		Market      string              `json:"market"`
		MarketTaker string              `json:"market_taker"`
		Price       decimal.NullDecimal `json:"price"`
		Amount      decimal.NullDecimal `json:"amount"`
		Timestamp   string              `json:"timestamp"`
	}
	pagination := newPagination(page, limit)
	resp, err := m.doRequest(ctx, TRADES_URI, params, &response, pagination)
	if err != nil {
		return nil, nil, resp, err
	}

	trades := make([]*Trade, 0, len(response))
	for _, item := range response {
		fc := fieldCheck{}
		trade := &Trade{
			Market: item.Market,
			Side:   ParseTradeSide(item.MarketTaker),
			Price:  fc.decimal("price", item.Price),
			Amount: fc.decimal("amount", item.Amount),
		}
		if trade.Market == "" {
			trade.Market = m.name
		}
		tradeTime := fc.time("timestamp", item.Timestamp)
		trade.Timestamp, trade.Date = m.toMillisecond(tradeTime)
		if err := fc.err("trade"); err != nil {
			return nil, nil, resp, err
		}
		if (!from.IsZero() && tradeTime.Before(from)) || (!to.IsZero() && !tradeTime.Before(to)) {
			return nil, nil, resp, NewDecodeError(nil, "trade at %s is outside %s..%s", item.Timestamp, start, end)
		}
		trades = append(trades, trade)
	}
	return GetAscTrades(trades), pagination, resp, nil
}
