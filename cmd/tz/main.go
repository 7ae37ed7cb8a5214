package main

import (
	"os"

	"github.com/taaza-dairy/taaza-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
