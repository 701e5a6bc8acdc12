package main

import (
	"os"

	"github.com/kobofi/kobo-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
