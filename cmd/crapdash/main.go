package main

import (
	"os"

	"github.com/crapshack/crapdash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
