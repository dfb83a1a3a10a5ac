package main

import (
	"os"

	"snowreg/cmd/snowreg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
