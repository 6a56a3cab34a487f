package cryptomkttest

var Markets = []string{"ETHCLP", "ETHARS", "BTCCLP", "XLMCLP"}

var Tickers = map[string]map[string]interface{}{
	"ETHCLP": {
		"high":       "267400",
		"volume":     "1.35451608",
		"low":        "250000",
		"ask":        "266150",
		"timestamp":  "2018-05-16T14:01:36.327000",
		"bid":        "259000",
		"last_price": "264900",
		"market":     "ETHCLP",
	},
	"ETHARS": {
		"high":       "11100",
		"volume":     "0.28",
		"low":        "10500",
		"ask":        "11050",
		"timestamp":  "2018-05-16T14:01:36.327000",
		"bid":        "10900",
		"last_price": "11000",
		"market":     "ETHARS",
	},
	"BTCCLP": {
		"high":       "5300000",
		"volume":     "0.92",
		"low":        "5100000",
		"ask":        "5290000",
		"timestamp":  "2018-05-16T14:01:36.327000",
		"bid":        "5210000",
		"last_price": "5250000",
		"market":     "BTCCLP",
	},
	"XLMCLP": {
		"high":       "215",
		"volume":     "10532.5",
		"low":        "190",
		"ask":        "209",
		"timestamp":  "2018-05-16T14:01:36.327000",
		"bid":        "201",
		"last_price": "205",
		"market":     "XLMCLP",
	},
}

// records per side of every book
const BOOK_DEPTH = 45

// trades of ETHCLP, oldest first
var Trades = []map[string]interface{}{
	{"market_taker": "buy", "timestamp": "2018-05-14T10:12:00.000000", "price": "262000", "amount": "0.10", "market": "ETHCLP"},
	{"market_taker": "sell", "timestamp": "2018-05-14T23:59:59.000000", "price": "261500", "amount": "0.05", "market": "ETHCLP"},
	{"market_taker": "buy", "timestamp": "2018-05-15T00:00:00.000000", "price": "262100", "amount": "0.20", "market": "ETHCLP"},
	{"market_taker": "sell", "timestamp": "2018-05-15T08:30:12.120000", "price": "262800", "amount": "0.30", "market": "ETHCLP"},
	{"market_taker": "buy", "timestamp": "2018-05-15T17:45:01.000000", "price": "263500", "amount": "0.02", "market": "ETHCLP"},
	{"market_taker": "buy", "timestamp": "2018-05-16T09:00:00.500000", "price": "264000", "amount": "1.00", "market": "ETHCLP"},
	{"market_taker": "sell", "timestamp": "2018-05-16T23:59:59.999000", "price": "264900", "amount": "0.41", "market": "ETHCLP"},
	{"market_taker": "sell", "timestamp": "2018-05-17T00:00:00.000000", "price": "265000", "amount": "0.15", "market": "ETHCLP"},
	{"market_taker": "buy", "timestamp": "2018-05-17T12:00:00.000000", "price": "266000", "amount": "0.07", "market": "ETHCLP"},
}

var Balances = []map[string]interface{}{
	{"available": "120347", "wallet": "CLP", "balance": "120347"},
	{"available": "10.3399", "wallet": "ETH", "balance": "11.3399"},
	{"available": "0", "wallet": "BTC", "balance": "0"},
}

var AccountInfo = map[string]interface{}{
	"name":  "John Doe",
	"email": "john.doe@example.com",
	"rate": map[string]interface{}{
		"market_maker": "0.0039",
		"market_taker": "0.0068",
	},
	"bank_accounts": []map[string]interface{}{
		{"id": 4213, "bank": "Banco Estado", "number": "62431298", "type": "Cuenta Vista", "currency": "CLP", "country": "CL"},
	},
}

var executedOrders = []map[string]interface{}{
	{
		"id":              "M103975",
		"status":          "executed",
		"type":            "sell",
		"market":          "ETHCLP",
		"price":           "3000",
		"execution_price": "3000",
		"fee":             "0.7",
		"amount": map[string]interface{}{
			"original": "0.3",
			"executed": "0.3",
		},
		"created_at": "2017-09-01T14:01:36.327000",
		"updated_at": "2017-09-01T14:02:05.123000",
	},
}
