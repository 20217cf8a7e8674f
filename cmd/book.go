package cmd

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/support/logger"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Order book of one pair",
	Example: `  btcturk book --pair BTCTRY
  btcturk book --pair ETHTRY --limit 10`,
}

func init() {
	pairFlag := bookCmd.Flags().StringP("pair", "p", "", "(required) pair symbol, e.g. BTCTRY")
	limitFlag := bookCmd.Flags().Int32P("limit", "n", 25, "number of levels per side (max 1000)")
	requiredFlag(bookCmd, "pair")

	bookCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		book, e := client.GetOrderBook(*pairFlag, *limitFlag)
		if e != nil {
			logger.Fatal(l, e)
		}

		ts := model.MakeTimestamp(book.Timestamp.AsInt64())
		fmt.Printf("order book for %s at %s\n\n", *pairFlag, ts.AsTime().Format("2006-01-02 15:04:05 MST"))

		fmt.Printf("%s\n", aurora.Bold(aurora.Red("ASKS")))
		fmt.Printf("%18s %18s\n", "PRICE", "AMOUNT")
		// asks print highest first so the touch sits next to the bids
		for i := len(book.Asks) - 1; i >= 0; i-- {
			fmt.Printf("%18s %18s\n", book.Asks[i].Price.String(), book.Asks[i].Amount.String())
		}

		fmt.Printf("\n%s\n", aurora.Bold(aurora.Green("BIDS")))
		fmt.Printf("%18s %18s\n", "PRICE", "AMOUNT")
		for _, level := range book.Bids {
			fmt.Printf("%18s %18s\n", level.Price.String(), level.Amount.String())
		}
	}
}
