package main

import (
	"os"

	"github.com/msto63/treegen/cmd/treegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
