package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// build flags
var version string
var buildDate string
var gitHash string

const rootShort = "Btcturk is a command line client for the BTCTurk cryptocurrency exchange."
const rootLong = `Btcturk is a command line client for the BTCTurk cryptocurrency exchange (https://www.btcturk.com).

Market data commands work without credentials. Account and trading commands
read an API key pair from the config file, see sample_btcturk.cfg for the
format.`
const rootExamples = `  btcturk ticker BTCTRY
  btcturk book --pair BTCTRY --limit 25
  btcturk balance --conf ./btcturk.cfg`

// RootCmd is the main command for this repo
var RootCmd = &cobra.Command{
	Use:     "btcturk",
	Short:   rootShort,
	Long:    rootLong,
	Example: rootExamples,
	Run: func(ccmd *cobra.Command, args []string) {
		intro := `
   ____ _____ ____ _____ _   _ ____  _  __
  | __ )_   _/ ___|_   _| | | |  _ \| |/ /
  |  _ \ | || |     | | | | | | |_) | ' / 
  | |_) || || |___  | | | |_| |  _ <| . \ 
  |____/ |_| \____| |_|  \___/|_| \_\_|\_\

`
		fmt.Println(intro)
		e := ccmd.Help()
		if e != nil {
			log.Fatal(e)
		}

		fmt.Println("version:", version)
		fmt.Println("build date:", buildDate)
		fmt.Println("git hash:", gitHash)
	},
}

var configPath *string
var rootVerbose *bool

func requiredFlag(ccmd *cobra.Command, flag string) {
	e := ccmd.MarkFlagRequired(flag)
	if e != nil {
		panic(e)
	}
}

func init() {
	configPath = RootCmd.PersistentFlags().StringP("conf", "c", "./btcturk.cfg", "client's config file path")
	rootVerbose = RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log the loaded config before running the command")

	RootCmd.AddCommand(tickerCmd)
	RootCmd.AddCommand(bookCmd)
	RootCmd.AddCommand(tradesCmd)
	RootCmd.AddCommand(ohlcCmd)
	RootCmd.AddCommand(exchangeInfoCmd)
	RootCmd.AddCommand(serverTimeCmd)
	RootCmd.AddCommand(balanceCmd)
	RootCmd.AddCommand(ordersCmd)
	RootCmd.AddCommand(transactionsCmd)
	RootCmd.AddCommand(submitCmd)
	RootCmd.AddCommand(cancelCmd)
	RootCmd.AddCommand(versionCmd)
}
