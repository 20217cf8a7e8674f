package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/model"
	"github.com/tulparex/btcturk/plugins"
	"github.com/tulparex/btcturk/support/logger"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [assets...]",
	Short: "Account balances, optionally narrowed to the given assets",
	Example: `  btcturk balance
  btcturk balance BTC TRY`,
	Run: func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)
		exchange := plugins.MakeBtcturkExchange(client)

		assetList := []model.Asset{}
		for _, a := range args {
			assetList = append(assetList, model.Asset(strings.ToUpper(a)))
		}

		balances, e := exchange.GetAccountBalances(assetList)
		if e != nil {
			logger.Fatal(l, e)
		}

		assets := []model.Asset{}
		for asset := range balances {
			assets = append(assets, asset)
		}
		sort.Slice(assets, func(i int, j int) bool { return assets[i] < assets[j] })

		fmt.Printf("%-8s %-20s %24s %24s %24s\n", "ASSET", "NAME", "TOTAL", "LOCKED", "FREE")
		for _, asset := range assets {
			b := balances[asset]
			fmt.Printf("%-8s %-20s %24s %24s %24s\n",
				string(b.Asset),
				b.AssetName,
				b.Total.String(),
				b.Locked.String(),
				b.Free.String(),
			)
		}
	},
}
