package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	. "github.com/deforceHK/gocryptomkt"
	"github.com/deforceHK/gocryptomkt/cryptomkt"
)

type Options struct {
	Market string
	Side   string
	Start  string
	End    string
	Page   int
	Limit  int
}

type Command struct {
	client *cryptomkt.Client
	out    io.Writer
	au     aurora.Aurora
}

func NewCommand(client *cryptomkt.Client, out io.Writer, colors bool) *Command {
	return &Command{client: client, out: out, au: aurora.NewAurora(colors)}
}

func (c *Command) Run(ctx context.Context, name string, opts *Options) error {
	switch name {
	case "markets":
		return c.markets(ctx)
	case "ticker":
		return c.ticker(ctx, opts)
	case "book":
		return c.book(ctx, opts)
	case "trades":
		return c.trades(ctx, opts)
	case "balance":
		return c.balance(ctx)
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func (c *Command) markets(ctx context.Context) error {
	markets, _, err := c.client.GetMarkets(ctx)
	if err != nil {
		return err
	}
	for _, m := range markets {
		pair := m.GetPair()
		fmt.Fprintf(c.out, "%s\t%s / %s\n", c.au.Bold(m.GetName()), pair.Basis, pair.Counter)
	}
	return nil
}

// ticker prints the ticker of opts.Market, or of every market when it is empty.
func (c *Command) ticker(ctx context.Context, opts *Options) error {
	var markets []*cryptomkt.Market
	if opts.Market == "" {
		var err error
		if markets, _, err = c.client.GetMarkets(ctx); err != nil {
			return err
		}
	} else {
		m, err := c.client.CreateMarket(strings.ToUpper(opts.Market))
		if err != nil {
			return err
		}
		markets = append(markets, m)
	}

	tickers, err := c.client.GetTickers(ctx, markets...)
	if err != nil {
		return err
	}
	for _, t := range tickers {
		fmt.Fprintf(
			c.out,
			"%s\tlast %s\tbid %s\task %s\thigh %s\tlow %s\tvol %s\t%s\n",
			c.au.Bold(t.Market),
			c.au.Yellow(t.Last),
			c.au.Green(t.Buy),
			c.au.Red(t.Sell),
			t.High,
			t.Low,
			t.Vol,
			t.Date,
		)
	}
	return nil
}

func (c *Command) book(ctx context.Context, opts *Options) error {
	m, err := c.client.CreateMarket(strings.ToUpper(opts.Market))
	if err != nil {
		return err
	}
	side := ParseTradeSide(strings.ToLower(opts.Side))
	records, _, _, err := m.GetOrdersBook(ctx, side, opts.Page, opts.Limit)
	if err != nil {
		return err
	}

	for _, r := range records {
		price := c.au.Green(r.Price)
		if r.Side == SELL {
			price = c.au.Red(r.Price)
		}
		fmt.Fprintf(c.out, "%s\t%s\t%s\n", r.Side, price, r.Amount)
	}
	return nil
}

func (c *Command) trades(ctx context.Context, opts *Options) error {
	m, err := c.client.CreateMarket(strings.ToUpper(opts.Market))
	if err != nil {
		return err
	}
	trades, _, _, err := m.GetTrades(ctx, opts.Start, opts.End, opts.Page, opts.Limit)
	if err != nil {
		return err
	}

	for _, t := range trades {
		side := c.au.Green(t.Side)
		if t.Side == SELL {
			side = c.au.Red(t.Side)
		}
		fmt.Fprintf(c.out, "%s\t%s\t%s\t%s\n", t.Date, side, t.Price, t.Amount)
	}
	return nil
}

func (c *Command) balance(ctx context.Context) error {
	balances, _, err := c.client.GetBalance(ctx)
	if err != nil {
		return err
	}
	for _, b := range balances {
		available := c.au.Bold(b.Available)
		if b.Available.IsZero() {
			available = c.au.Red(b.Available)
		}
		fmt.Fprintf(c.out, "%s\tavailable %s\tbalance %s\n", c.au.Cyan(b.Currency), available, b.Balance)
	}
	return nil
}
