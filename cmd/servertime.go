package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/support/logger"
)

var serverTimeCmd = &cobra.Command{
	Use:   "servertime",
	Short: "Current time on the exchange's servers",
	Run: func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		serverTime, e := client.GetServerTime()
		if e != nil {
			logger.Fatal(l, e)
		}

		ts := model.MakeTimestamp(serverTime.ServerTime.AsInt64())
		fmt.Printf("server time: %d\n", ts.AsInt64())
		fmt.Printf("server time (utc): %s\n", ts.AsTime().Format("2006-01-02 15:04:05.000 MST"))
	},
}
