package main

import (
	"os"

	"github.com/tradekit/roadmap/cmd/roadmap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
