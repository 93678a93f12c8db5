package main

import (
	"os"

	"ltoaccount/cmd/lto/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
