package gocryptomkt

import (
	"strings"
)

type Currency struct {
	Symbol string `json:"symbol"`
	Desc   string `json:"-"`
}

func (c Currency) String() string {
	return c.Symbol
}

func (c Currency) Eq(c2 Currency) bool {
	return c.Symbol == c2.Symbol
}

var (
	UNKNOWN = Currency{"UNKNOWN", ""}

	// local currencies
	CLP = Currency{"CLP", "Chilean peso"}
	ARS = Currency{"ARS", "Argentine peso"}
	BRL = Currency{"BRL", "Brazilian real"}
	MXN = Currency{"MXN", "Mexican peso"}
	EUR = Currency{"EUR", ""}
	USD = Currency{"USD", ""}

	USDC = Currency{"USDC", "https://www.centre.io/"}
	DAI  = Currency{"DAI", ""}

	BTC = Currency{"BTC", "https://bitcoin.org/"}
	ETH = Currency{"ETH", ""}
	XLM = Currency{"XLM", "Stellar lumens"}
	EOS = Currency{"EOS", ""}
)

// counter currencies, used to split a market name like ETHCLP.
// The order matters, longer symbols first.
var counterCurrencies = []Currency{USDC, DAI, CLP, ARS, BRL, MXN, EUR, USD, BTC, ETH}

func NewCurrency(symbol, desc string) Currency {
	return Currency{strings.ToUpper(symbol), desc}
}
