package main

import (
	"log"

	"github.com/tulparex/btcturk/cmd"
)

func main() {
	e := cmd.RootCmd.Execute()
	if e != nil {
		log.Fatal(e)
	}
}
