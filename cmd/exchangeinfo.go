package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/support/logger"
)

var exchangeInfoCmd = &cobra.Command{
	Use:   "exchangeinfo [symbols...]",
	Short: "Trading rules and symbol metadata, optionally narrowed to the given symbols",
	Example: `  btcturk exchangeinfo
  btcturk exchangeinfo BTCTRY ETHTRY
  btcturk exchangeinfo BTCTRY --filters`,
}

func init() {
	filtersFlag := exchangeInfoCmd.Flags().Bool("filters", false, "also print each symbol's trading filters")

	exchangeInfoCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		symbols, e := client.GetExchangeInfo(args)
		if e != nil {
			logger.Fatal(l, e)
		}

		fmt.Printf("%-12s %-10s %6s %6s %10s %12s  %s\n", "NAME", "STATUS", "BASE", "QUOTE", "BASESCALE", "QUOTESCALE", "METHODS")
		for _, s := range symbols {
			fmt.Printf("%-12s %-10s %6s %6s %10d %12d  %s\n",
				s.Name,
				s.Status,
				s.Numerator,
				s.Denominator,
				s.NumeratorScale,
				s.DenominatorScale,
				strings.Join(s.OrderMethods, ","),
			)

			if *filtersFlag {
				filters, e := s.ParseFilters()
				if e != nil {
					logger.Fatal(l, fmt.Errorf("could not parse the filters of %s: %s", s.Name, e))
				}
				for _, f := range filters {
					fmt.Printf("    %s: minPrice=%s maxPrice=%s tickSize=%s minExchangeValue=%s minAmount=%s maxAmount=%s\n",
						f.FilterType, f.MinPrice, f.MaxPrice, f.TickSize, f.MinExchangeValue, f.MinAmount, f.MaxAmount)
				}
			}
		}
	}
}
