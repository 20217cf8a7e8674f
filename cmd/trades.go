package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/support/logger"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Most recent public trades of one pair",
	Example: `  btcturk trades --pair BTCTRY
  btcturk trades --pair BTCTRY --last 100`,
}

func init() {
	pairFlag := tradesCmd.Flags().StringP("pair", "p", "", "(required) pair symbol, e.g. BTCTRY")
	lastFlag := tradesCmd.Flags().Int32P("last", "n", 0, "number of trades to fetch (server default 50, max 1000)")
	requiredFlag(tradesCmd, "pair")

	tradesCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		trades, e := client.GetTrades(*pairFlag, *lastFlag)
		if e != nil {
			logger.Fatal(l, e)
		}

		fmt.Printf("%-24s %14s %16s %16s\n", "TIME", "TRADE ID", "PRICE", "AMOUNT")
		for _, t := range trades {
			ts := model.MakeTimestamp(t.Date.AsInt64())
			fmt.Printf("%-24s %14s %16s %16s\n",
				ts.AsTime().Format("2006-01-02 15:04:05 MST"),
				t.TID,
				t.Price.String(),
				t.Amount.String(),
			)
		}
	}
}
