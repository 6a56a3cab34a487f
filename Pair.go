package gocryptomkt

import (
	"strings"
)

type Pair struct {
	//The target currency, you want to buy
	Basis Currency
	//The counter currency, you use it to buy
	Counter Currency
}

var UNKNOWN_PAIR = Pair{UNKNOWN, UNKNOWN}

func NewPair(symbol string, sepChar string) Pair {
	currencys := strings.Split(symbol, sepChar)
	if len(currencys) == 2 && currencys[0] != "" && currencys[1] != "" {
		return Pair{NewCurrency(currencys[0], ""), NewCurrency(currencys[1], "")}
	}
	return UNKNOWN_PAIR
}

// ParseMarket splits an exchange market name such as ETHCLP or BTCUSDC.
func ParseMarket(name string) Pair {
	upper := strings.ToUpper(name)
	for _, counter := range counterCurrencies {
		if len(upper) > len(counter.Symbol) && strings.HasSuffix(upper, counter.Symbol) {
			return Pair{
				Basis:   NewCurrency(strings.TrimSuffix(upper, counter.Symbol), ""),
				Counter: counter,
			}
		}
	}
	return UNKNOWN_PAIR
}

func (pair Pair) String() string {
	return pair.ToSymbol("_", false)
}

func (pair Pair) Eq(otherPair Pair) bool {
	return pair.String() == otherPair.String()
}

func (pair Pair) ToSymbol(joinChar string, isUpper bool) string {
	rawSymbol := strings.Join([]string{pair.Basis.Symbol, pair.Counter.Symbol}, joinChar)
	if isUpper {
		return strings.ToUpper(rawSymbol)
	}
	return strings.ToLower(rawSymbol)
}

// ToMarket returns the exchange market name, ETHCLP for {ETH, CLP}.
func (pair Pair) ToMarket() string {
	return pair.ToSymbol("", true)
}
