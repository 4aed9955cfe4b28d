package main

import (
	"os"

	"refinebench/cmd/refinebench/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
