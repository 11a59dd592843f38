package main

import (
	"os"

	"numprompt/cmd/numprompt/commands"
)

// Exit codes returned by the numprompt CLI.
const (
	exitSuccess = 0
	exitFailure = 1 // includes a closed or unreadable input stream
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}
