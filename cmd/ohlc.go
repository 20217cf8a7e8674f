package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/support/logger"
)

var ohlcCmd = &cobra.Command{
	Use:   "ohlc",
	Short: "Daily open/high/low/close candles of one pair",
	Example: `  btcturk ohlc --pair BTCTRY
  btcturk ohlc --pair BTCTRY --last 30`,
}

func init() {
	pairFlag := ohlcCmd.Flags().StringP("pair", "p", "", "(required) pair symbol, e.g. BTCTRY")
	lastFlag := ohlcCmd.Flags().Int32P("last", "n", 0, "number of candles to fetch, newest first")
	requiredFlag(ohlcCmd, "pair")

	ohlcCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		candles, e := client.GetOhlc(*pairFlag, *lastFlag)
		if e != nil {
			logger.Fatal(l, e)
		}

		fmt.Printf("%-12s %14s %14s %14s %14s %16s\n", "DATE", "OPEN", "HIGH", "LOW", "CLOSE", "VOLUME")
		for _, c := range candles {
			day := model.MakeTimestamp(c.Time.AsInt64())
			fmt.Printf("%-12s %14s %14s %14s %14s %16s\n",
				day.AsTime().Format("2006-01-02"),
				c.Open.String(),
				c.High.String(),
				c.Low.String(),
				c.Close.String(),
				c.Volume.String(),
			)
		}
	}
}
