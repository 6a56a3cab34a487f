package gocryptomkt

const (
	GO_BIRTHDAY = "2006-01-02 15:04:05"
	// date format used by the date range params of trades and payment orders
	DATE_FORMAT = "2006-01-02"
)

type TradeSide int64

const (
	BUY TradeSide = 1 + iota
	SELL
)

func (ts TradeSide) String() string {
	switch ts {
	case BUY:
		return "buy"
	case SELL:
		return "sell"
	default:
		return "unknown"
	}
}

func (ts TradeSide) Valid() bool {
	return ts == BUY || ts == SELL
}

// ParseTradeSide maps the exchange side string to a TradeSide, 0 when unknown.
func ParseTradeSide(side string) TradeSide {
	switch side {
	case "buy":
		return BUY
	case "sell":
		return SELL
	default:
		return 0
	}
}

type TradeStatus int64

func (ts TradeStatus) String() string {
	if ts < 0 || int(ts) >= len(tradeStatusSymbol) {
		return "unknown"
	}
	return tradeStatusSymbol[ts]
}

var tradeStatusSymbol = [...]string{"active", "executed", "cancelled", "unknown"}

const (
	ORDER_ACTIVE TradeStatus = iota
	ORDER_EXECUTED
	ORDER_CANCELLED
	ORDER_UNKNOWN
)

// ParseTradeStatus maps the exchange order status to a TradeStatus.
func ParseTradeStatus(status string) TradeStatus {
	switch status {
	case "active", "filled_partially", "1":
		return ORDER_ACTIVE
	case "executed", "filled", "2":
		return ORDER_EXECUTED
	case "cancelled", "canceled", "3":
		return ORDER_CANCELLED
	default:
		return ORDER_UNKNOWN
	}
}

// payment order status, as numbered by the exchange
const (
	PAYMENT_MULTIPLE_TRANSFERS = -4
	PAYMENT_WRONG_AMOUNT       = -3
	PAYMENT_CONVERSION_FAILED  = -2
	PAYMENT_EXPIRED            = -1
	PAYMENT_WAITING            = 0
	PAYMENT_WAITING_BLOCK      = 1
	PAYMENT_WAITING_CONVERSION = 2
	PAYMENT_SUCCESSFUL         = 3
)

// exchanges const
const (
	CRYPTOMKT = "cryptomkt"
)
