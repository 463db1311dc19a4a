// Package main is the entry point for the agentlint CLI.
package main

import (
	"os"

	"github.com/thoreinstein/agentlint/cmd/agentlint/commands"
	"github.com/thoreinstein/agentlint/internal/errors"
)

func main() {
	err := commands.Execute()
	commands.PrintError(os.Stderr, err)
	os.Exit(errors.ExitCode(err))
}
