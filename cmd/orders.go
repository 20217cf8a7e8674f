package cmd

import (
	"fmt"

	"github.com/openlyinc/pointy"
	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/support/logger"
	"github.com/tulparex/btcturk/support/sdk"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Open and past orders of the account",
}

var openOrdersCmd = &cobra.Command{
	Use:   "open",
	Short: "Resting orders of the account",
	Example: `  btcturk orders open
  btcturk orders open --pair BTCTRY`,
}

var allOrdersCmd = &cobra.Command{
	Use:   "all",
	Short: "Order history of the account for one pair",
	Example: `  btcturk orders all --pair BTCTRY
  btcturk orders all --pair BTCTRY --limit 50 --page 2`,
}

func init() {
	openPairFlag := openOrdersCmd.Flags().StringP("pair", "p", "", "pair symbol to narrow to, e.g. BTCTRY")
	openOrdersCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		openOrders, e := client.GetOpenOrders(*openPairFlag)
		if e != nil {
			logger.Fatal(l, e)
		}

		printOrdersHeader()
		for _, o := range openOrders.Asks {
			printOrder(o)
		}
		for _, o := range openOrders.Bids {
			printOrder(o)
		}
	}

	allPairFlag := allOrdersCmd.Flags().StringP("pair", "p", "", "(required) pair symbol, e.g. BTCTRY")
	orderIDFlag := allOrdersCmd.Flags().Int64("order-id", 0, "only list orders newer than this order id")
	startFlag := allOrdersCmd.Flags().Int64("start", 0, "start of the date range as a unix millisecond timestamp")
	endFlag := allOrdersCmd.Flags().Int64("end", 0, "end of the date range as a unix millisecond timestamp")
	pageFlag := allOrdersCmd.Flags().Int32("page", 0, "page number")
	limitFlag := allOrdersCmd.Flags().Int32("limit", 0, "orders per page (max 1000)")
	requiredFlag(allOrdersCmd, "pair")

	allOrdersCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		options := sdk.AllOrdersOptions{PairSymbol: *allPairFlag}
		if ccmd.Flags().Changed("order-id") {
			options.OrderID = pointy.Int64(*orderIDFlag)
		}
		if ccmd.Flags().Changed("start") {
			options.StartDate = pointy.Int64(*startFlag)
		}
		if ccmd.Flags().Changed("end") {
			options.EndDate = pointy.Int64(*endFlag)
		}
		if ccmd.Flags().Changed("page") {
			options.Page = pointy.Int32(*pageFlag)
		}
		if ccmd.Flags().Changed("limit") {
			options.Limit = pointy.Int32(*limitFlag)
		}

		orders, e := client.GetAllOrders(options)
		if e != nil {
			logger.Fatal(l, e)
		}

		printOrdersHeader()
		for _, o := range orders {
			printOrder(o)
		}
	}

	ordersCmd.AddCommand(openOrdersCmd)
	ordersCmd.AddCommand(allOrdersCmd)
}

func printOrdersHeader() {
	fmt.Printf("%-12s %-10s %-5s %-11s %16s %16s %16s %-12s %-24s\n",
		"ORDER ID", "PAIR", "SIDE", "METHOD", "PRICE", "QUANTITY", "LEFT", "STATUS", "TIME")
}

func printOrder(o sdk.Order) {
	ts := model.MakeTimestamp(o.Time.AsInt64())
	fmt.Printf("%-12d %-10s %-5s %-11s %16s %16s %16s %-12s %-24s\n",
		o.ID,
		o.PairSymbol,
		o.Type,
		o.Method,
		o.Price.String(),
		o.Quantity.String(),
		o.LeftAmount.String(),
		o.Status,
		ts.AsTime().Format("2006-01-02 15:04:05 MST"),
	)
}
