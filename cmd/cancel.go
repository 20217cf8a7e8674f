package cmd

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/tulparex/btcturk/support/logger"
)

var cancelCmd = &cobra.Command{
	Use:     "cancel",
	Short:   "Cancel an open order",
	Example: `  btcturk cancel --id 9932534`,
}

func init() {
	idFlag := cancelCmd.Flags().Int64("id", 0, "id of the order to cancel (required)")
	requiredFlag(cancelCmd, "id")

	cancelCmd.Run = func(ccmd *cobra.Command, args []string) {
		l := logger.MakeBasicLogger()
		client := makeClient(l)

		if e := client.CancelOrder(*idFlag); e != nil {
			logger.Fatal(l, e)
		}
		fmt.Printf("%s order %d\n", aurora.Bold(aurora.Green("canceled")), *idFlag)
	}
}
