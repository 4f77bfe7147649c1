package main

import (
	"os"

	"barbell/cmd/barbell/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
