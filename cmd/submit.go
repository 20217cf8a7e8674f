package cmd

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/support/logger"
	"github.com/tulparex/btcturk/support/sdk"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a new order",
	Example: `  btcturk submit --pair BTCTRY --side buy --method limit --quantity 0.05 --price 429000.5
  btcturk submit --pair BTCTRY --side sell --method market --quantity 0.05
  btcturk submit --pair ETHTRY --side sell --method stopLimit --quantity 1.5 --price 31000 --stop-price 31500`,
}

func init() {
	pairFlag := submitCmd.Flags().StringP("pair", "p", "", "pair symbol, e.g. BTCTRY (required)")
	sideFlag := submitCmd.Flags().String("side", "", "order side, buy or sell (required)")
	methodFlag := submitCmd.Flags().StringP("method", "m", "", "order method, one of market, limit, stopLimit, stopMarket (required)")
	quantityFlag := submitCmd.Flags().StringP("quantity", "q", "", "order quantity (required)")
	priceFlag := submitCmd.Flags().String("price", "", "order price, required for limit and stopLimit orders")
	stopPriceFlag := submitCmd.Flags().String("stop-price", "", "trigger price, required for stopLimit and stopMarket orders")
	clientIDFlag := submitCmd.Flags().String("client-id", "", "client order id, generated when empty")
	requiredFlag(submitCmd, "pair")
	requiredFlag(submitCmd, "side")
	requiredFlag(submitCmd, "method")
	requiredFlag(submitCmd, "quantity")

	submitCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		req := &sdk.NewOrderRequest{
			Quantity:         mustDecimal(l, "quantity", *quantityFlag),
			NewOrderClientID: *clientIDFlag,
			OrderMethod:      *methodFlag,
			OrderType:        *sideFlag,
			PairSymbol:       *pairFlag,
		}
		if ccmd.Flags().Changed("price") {
			price := mustDecimal(l, "price", *priceFlag)
			req.Price = &price
		}
		if ccmd.Flags().Changed("stop-price") {
			stopPrice := mustDecimal(l, "stop-price", *stopPriceFlag)
			req.StopPrice = &stopPrice
		}

		newOrder, e := client.SubmitOrder(req)
		if e != nil {
			logger.Fatal(l, e)
		}

		fmt.Printf("%s order %d\n", aurora.Bold(aurora.Green("submitted")), newOrder.ID)
		fmt.Printf("    pair:      %s\n", newOrder.PairSymbolNormalized)
		fmt.Printf("    side:      %s\n", newOrder.Type)
		fmt.Printf("    method:    %s\n", newOrder.Method)
		fmt.Printf("    quantity:  %s\n", newOrder.Quantity.String())
		if newOrder.Price.Sign() != 0 {
			fmt.Printf("    price:     %s\n", newOrder.Price.String())
		}
		if newOrder.StopPrice.Sign() != 0 {
			fmt.Printf("    stopPrice: %s\n", newOrder.StopPrice.String())
		}
		fmt.Printf("    clientId:  %s\n", newOrder.NewOrderClientID)
		fmt.Printf("    time:      %s\n", model.MakeTimestamp(newOrder.Datetime.AsInt64()).AsTime().Format("2006-01-02 15:04:05 MST"))
	}
}

// mustDecimal parses a decimal flag value, exiting on garbage before any
// network call is made
func mustDecimal(l logger.Logger, name string, value string) decimal.Decimal {
	parsed, e := decimal.NewFromString(value)
	if e != nil {
		logger.Fatal(l, fmt.Errorf("could not parse the %s flag value '%s' as a decimal: %s", name, value, e))
	}
	return parsed
}
