package main

import (
	"os"

	"seal/cmd/seal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
