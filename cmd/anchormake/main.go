package main

import (
	"os"

	"anchormake/cmd/anchormake/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
