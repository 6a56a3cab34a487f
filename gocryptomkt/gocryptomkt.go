package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deforceHK/gocryptomkt/cryptomkt"
)

var cliConfig = flag.String("config", "", "Input the yaml config file. ")
var cliMarket = flag.String("market", "ETHCLP", "Input the market. ")
var cliSide = flag.String("side", "buy", "Input the book side, buy or sell. ")
var cliStart = flag.String("start", "", "Input the start date, yyyy-mm-dd. ")
var cliEnd = flag.String("end", "", "Input the end date, yyyy-mm-dd. ")
var cliPage = flag.Int("page", 0, "Input the page. ")
var cliLimit = flag.Int("limit", cryptomkt.DEFAULT_PAGE_LIMIT, "Input the page size. ")
var cliNoColor = flag.Bool("no-color", false, "Disable the colored output. ")

var sCommand = map[string]string{
	"markets": "the markets of the exchange",
	"ticker":  "the ticker of the market, every market when -market is empty",
	"book":    "one side of the market order book",
	"trades":  "the trades of the market",
	"balance": "the wallet balances, needs the api key",
}

func main() {
	flag.Parse()
	paramCount := flag.NArg()
	firstParam := ""
	if paramCount != 0 {
		firstParam = flag.Arg(0)
	}

	if _, exist := sCommand[firstParam]; paramCount == 0 || !exist {
		printUsage()
		os.Exit(2)
	}

	cfg, err := LoadConfig(*cliConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger(os.Stderr)
	client := cryptomkt.New(cfg.APIConfig(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := NewCommand(client, os.Stdout, !*cliNoColor)
	opts := &Options{
		Market: *cliMarket,
		Side:   *cliSide,
		Start:  *cliStart,
		End:    *cliEnd,
		Page:   *cliPage,
		Limit:  *cliLimit,
	}
	if err := c.Run(ctx, firstParam, opts); err != nil {
		logger.Error("command failed", "command", firstParam, "error", err)
		stop()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: gocryptomkt [options] <command>")
	fmt.Fprintln(os.Stderr, "\nCommands:")
	for _, name := range []string{"markets", "ticker", "book", "trades", "balance"} {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", name, sCommand[name])
	}
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}
