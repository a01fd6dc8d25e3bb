package main

import (
	"os"

	"github.com/rustyeddy/rates/cmd/ratesrisk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
