package main

import (
	"os"

	"condopark/cmd/server/command"
)

func main() {
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
