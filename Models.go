package gocryptomkt

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

/**
 * models about market
 **/

type Ticker struct {
	Pair      Pair            `json:"-"`
	Market    string          `json:"market"`
	Last      decimal.Decimal `json:"last"`
	Buy       decimal.Decimal `json:"buy"`  // best bid
	Sell      decimal.Decimal `json:"sell"` // best ask
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Vol       decimal.Decimal `json:"vol"`
	Timestamp int64           `json:"timestamp"` // unit:ms
	Date      string          `json:"date"`      // date: format yyyy-mm-dd HH:MM:SS, the timezone define in apiconfig
}

// record
type Trade struct {
	Market    string          `json:"market"`
	Side      TradeSide       `json:"side"` // the taker side
	Amount    decimal.Decimal `json:"amount"`
	Price     decimal.Decimal `json:"price"`
	Timestamp int64           `json:"timestamp"` // unit:ms
	Date      string          `json:"date"`
}

type DepthRecord struct {
	Side      TradeSide       `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp int64           `json:"timestamp"`
}

type DepthRecords []DepthRecord

func (dr DepthRecords) Len() int {
	return len(dr)
}

func (dr DepthRecords) Swap(i, j int) {
	dr[i], dr[j] = dr[j], dr[i]
}

func (dr DepthRecords) Less(i, j int) bool {
	return dr[i].Price.LessThan(dr[j].Price)
}

type Pagination struct {
	Previous *int `json:"previous"`
	Next     *int `json:"next"`
	Page     int  `json:"page"`
	Limit    int  `json:"limit"`
}

/**
 *
 * models about trade
 *
 **/
type Order struct {
	OrderId         string          `json:"id"`
	Market          string          `json:"market"`
	Side            TradeSide       `json:"side"`
	Status          TradeStatus     `json:"status"`
	Price           decimal.Decimal `json:"price"`
	Amount          decimal.Decimal `json:"amount"`           // original amount
	RemainingAmount decimal.Decimal `json:"remaining_amount"` // not executed yet
	ExecutedAmount  decimal.Decimal `json:"executed_amount"`
	ExecutionPrice  decimal.Decimal `json:"execution_price"` // average price of the executed part
	Fee             decimal.Decimal `json:"fee"`
	CreatedAt       int64           `json:"created_at"` // unit:ms
	UpdatedAt       int64           `json:"updated_at"`
	OrderDate       string          `json:"order_date"`
}

// The estimation of an instant order, no order is placed.
type InstantQuote struct {
	Obtained decimal.Decimal `json:"obtained"`
	Required decimal.Decimal `json:"required"`
}

/**
 *
 * models about account
 *
 **/
type Balance struct {
	Currency  Currency        `json:"currency"`
	Available decimal.Decimal `json:"available"`
	Balance   decimal.Decimal `json:"balance"`
	Wallet    string          `json:"wallet"`
}

type BankAccount struct {
	Id       int64  `json:"id"`
	Bank     string `json:"bank"`
	Number   string `json:"number"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	Country  string `json:"country"`
}

type Account struct {
	Exchange     string          `json:"exchange"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	MarketMaker  decimal.Decimal `json:"market_maker"`
	MarketTaker  decimal.Decimal `json:"market_taker"`
	BankAccounts []BankAccount   `json:"bank_accounts"`
}

// The params of a new payment order.
type PaymentRequest struct {
	ToReceive         decimal.Decimal
	ToReceiveCurrency string
	PaymentReceiver   string // email of the receiver
	ExternalId        string // generated when empty
	CallbackUrl       string
	ErrorUrl          string
	SuccessUrl        string
	RefundEmail       string
	Language          string
}

type Payment struct {
	Id                string          `json:"id"`
	ExternalId        string          `json:"external_id"`
	Status            int             `json:"status"`
	ToReceive         decimal.Decimal `json:"to_receive"`
	ToReceiveCurrency string          `json:"to_receive_currency"`
	ExpectedAmount    decimal.Decimal `json:"expected_amount"`
	ExpectedCurrency  string          `json:"expected_currency"`
	DepositAddress    string          `json:"deposit_address"`
	RefundEmail       string          `json:"refund_email"`
	Qr                string          `json:"qr"`
	Obs               string          `json:"obs"`
	CallbackUrl       string          `json:"callback_url"`
	ErrorUrl          string          `json:"error_url"`
	SuccessUrl        string          `json:"success_url"`
	PaymentUrl        string          `json:"payment_url"`
	CreatedAt         int64           `json:"created_at"` // unit:ms
	UpdatedAt         int64           `json:"updated_at"`
}

/**
 *
 * models about API config
 *
 **/
type APIConfig struct {
	HttpClient   *http.Client
	Transport    Transport // overrides HttpClient when set
	Endpoint     string
	ApiKey       string
	ApiSecretKey string
	Location     *time.Location
	Logger       *slog.Logger
}
