package gocryptomkt

import (
	"context"

	"github.com/shopspring/decimal"
)

// api interface of one market
type MarketRestAPI interface {

	// public api
	GetName() string
	GetPair() Pair
	GetCurrentTicker(ctx context.Context) (*Ticker, []byte, error)
	GetOrdersBook(ctx context.Context, side TradeSide, page, limit int) (DepthRecords, *Pagination, []byte, error)
	GetTrades(ctx context.Context, start, end string, page, limit int) ([]*Trade, *Pagination, []byte, error)

	// private api
	PlaceOrder(ctx context.Context, side TradeSide, amount, price decimal.Decimal) (*Order, []byte, error)
	CancelOrder(ctx context.Context, orderId string) (*Order, []byte, error)
	GetOrderStatus(ctx context.Context, orderId string) (*Order, []byte, error)
	GetActiveOrders(ctx context.Context, page, limit int) ([]*Order, *Pagination, []byte, error)
	GetExecutedOrders(ctx context.Context, page, limit int) ([]*Order, *Pagination, []byte, error)
	GetInstantQuote(ctx context.Context, side TradeSide, amount decimal.Decimal) (*InstantQuote, []byte, error)
	PlaceInstantOrder(ctx context.Context, side TradeSide, amount decimal.Decimal) ([]byte, error)
}

// api interface of the account
type AccountRestAPI interface {
	GetExchangeName() string
	GetBalance(ctx context.Context) ([]*Balance, []byte, error)
	GetAccount(ctx context.Context) (*Account, []byte, error)
	CreatePaymentOrder(ctx context.Context, req *PaymentRequest) (*Payment, []byte, error)
	GetPaymentStatus(ctx context.Context, id string) (*Payment, []byte, error)
	GetPaymentOrders(ctx context.Context, start, end string, page, limit int) ([]*Payment, *Pagination, []byte, error)
}
