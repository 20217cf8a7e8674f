package cmd

import (
	"fmt"

	"github.com/openlyinc/pointy"
	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/support/logger"
	"github.com/tulparex/btcturk/support/sdk"
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Trade, crypto and fiat history of the account",
}

var tradeTransactionsCmd = &cobra.Command{
	Use:   "trade",
	Short: "Completed trades of the account",
	Example: `  btcturk transactions trade
  btcturk transactions trade --type buy --symbol BTC --symbol ETH`,
}

var cryptoTransactionsCmd = &cobra.Command{
	Use:   "crypto",
	Short: "Crypto deposits and withdrawals of the account",
	Example: `  btcturk transactions crypto
  btcturk transactions crypto --type deposit --symbol BTC`,
}

var fiatTransactionsCmd = &cobra.Command{
	Use:   "fiat",
	Short: "Fiat deposits and withdrawals of the account",
	Example: `  btcturk transactions fiat
  btcturk transactions fiat --balance-type withdrawal --currency TRY`,
}

// dateRangeFlags attaches the shared --start and --end flags to a command
func dateRangeFlags(ccmd *cobra.Command) (*int64, *int64) {
	start := ccmd.Flags().Int64("start", 0, "start of the date range as a unix millisecond timestamp")
	end := ccmd.Flags().Int64("end", 0, "end of the date range as a unix millisecond timestamp")
	return start, end
}

func maybeDate(ccmd *cobra.Command, name string, value int64) *int64 {
	if !ccmd.Flags().Changed(name) {
		return nil
	}
	return pointy.Int64(value)
}

func init() {
	tradeTypesFlag := tradeTransactionsCmd.Flags().StringSlice("type", nil, "filter by trade side, buy and/or sell")
	tradeSymbolsFlag := tradeTransactionsCmd.Flags().StringSlice("symbol", nil, "filter by asset code, e.g. BTC")
	tradeStartFlag, tradeEndFlag := dateRangeFlags(tradeTransactionsCmd)
	tradeTransactionsCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		userTrades, e := client.GetTradeTransactions(sdk.TradeTransactionsOptions{
			Types:     *tradeTypesFlag,
			Symbols:   *tradeSymbolsFlag,
			StartDate: maybeDate(ccmd, "start", *tradeStartFlag),
			EndDate:   maybeDate(ccmd, "end", *tradeEndFlag),
		})
		if e != nil {
			logger.Fatal(l, e)
		}

		fmt.Printf("%-24s %14s %-9s %-5s %16s %16s %12s %12s\n",
			"TIME", "TRADE ID", "PAIR", "SIDE", "PRICE", "AMOUNT", "FEE", "TAX")
		for _, t := range userTrades {
			ts := model.MakeTimestamp(t.Timestamp.AsInt64())
			fmt.Printf("%-24s %14d %-9s %-5s %16s %16s %12s %12s\n",
				ts.AsTime().Format("2006-01-02 15:04:05 MST"),
				t.ID,
				t.NumeratorSymbol+t.DenominatorSymbol,
				t.OrderType,
				t.Price.String(),
				t.Amount.String(),
				t.Fee.String(),
				t.Tax.String(),
			)
		}
	}

	cryptoTypesFlag := cryptoTransactionsCmd.Flags().StringSlice("type", nil, "filter by direction, deposit and/or withdrawal")
	cryptoSymbolsFlag := cryptoTransactionsCmd.Flags().StringSlice("symbol", nil, "filter by asset code, e.g. BTC")
	cryptoStartFlag, cryptoEndFlag := dateRangeFlags(cryptoTransactionsCmd)
	cryptoTransactionsCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		transactions, e := client.GetCryptoTransactions(sdk.CryptoTransactionsOptions{
			Types:     *cryptoTypesFlag,
			Symbols:   *cryptoSymbolsFlag,
			StartDate: maybeDate(ccmd, "start", *cryptoStartFlag),
			EndDate:   maybeDate(ccmd, "end", *cryptoEndFlag),
		})
		if e != nil {
			logger.Fatal(l, e)
		}
		printAssetTransactions(transactions)
	}

	fiatTypesFlag := fiatTransactionsCmd.Flags().StringSlice("balance-type", nil, "filter by direction, deposit and/or withdrawal")
	fiatCurrenciesFlag := fiatTransactionsCmd.Flags().StringSlice("currency", nil, "filter by currency code, e.g. TRY")
	fiatStartFlag, fiatEndFlag := dateRangeFlags(fiatTransactionsCmd)
	fiatTransactionsCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		transactions, e := client.GetFiatTransactions(sdk.FiatTransactionsOptions{
			BalanceTypes:    *fiatTypesFlag,
			CurrencySymbols: *fiatCurrenciesFlag,
			StartDate:       maybeDate(ccmd, "start", *fiatStartFlag),
			EndDate:         maybeDate(ccmd, "end", *fiatEndFlag),
		})
		if e != nil {
			logger.Fatal(l, e)
		}
		printAssetTransactions(transactions)
	}

	transactionsCmd.AddCommand(tradeTransactionsCmd)
	transactionsCmd.AddCommand(cryptoTransactionsCmd)
	transactionsCmd.AddCommand(fiatTransactionsCmd)
}

func printAssetTransactions(transactions []sdk.AssetTransaction) {
	fmt.Printf("%-24s %14s %-12s %-9s %20s %12s %12s\n",
		"TIME", "ID", "TYPE", "CURRENCY", "FUNDS", "FEE", "TAX")
	for _, tx := range transactions {
		ts := model.MakeTimestamp(tx.Timestamp.AsInt64())
		fmt.Printf("%-24s %14d %-12s %-9s %20s %12s %12s\n",
			ts.AsTime().Format("2006-01-02 15:04:05 MST"),
			tx.ID,
			tx.BalanceType,
			tx.CurrencySymbol,
			tx.Funds.String(),
			tx.Fee.String(),
			tx.Tax.String(),
		)
	}
}
