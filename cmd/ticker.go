package cmd

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/support/logger"
)

var tickerCmd = &cobra.Command{
	Use:   "ticker [pairSymbol]",
	Short: "Market ticker of one pair, or of every pair",
	Example: `  btcturk ticker
  btcturk ticker BTCTRY`,
	Run: func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		if len(args) > 1 {
			logger.Fatal(l, fmt.Errorf("expecting at most one pair symbol argument, got %d", len(args)))
		}

		pairSymbol := ""
		if len(args) == 1 {
			pairSymbol = args[0]
		}

		client := makeClient(l)
		tickers, e := client.GetTicker(pairSymbol)
		if e != nil {
			logger.Fatal(l, e)
		}

		fmt.Printf("%-10s %16s %16s %16s %16s  %s\n", "PAIR", "LAST", "BID", "ASK", "VOLUME", "DAILY")
		for _, t := range tickers {
			fmt.Printf("%-10s %16s %16s %16s %16s  %s\n",
				t.Pair,
				t.Last.String(),
				t.Bid.String(),
				t.Ask.String(),
				t.Volume.String(),
				colorizePercent(t.DailyPercent),
			)
		}
	},
}

// colorizePercent renders a daily percentage move, green for gains and red
// for losses
func colorizePercent(pct decimal.Decimal) interface{} {
	s := pct.String() + "%"
	if pct.Sign() < 0 {
		return aurora.Bold(aurora.Red(s))
	}
	return aurora.Bold(aurora.Green(s))
}
