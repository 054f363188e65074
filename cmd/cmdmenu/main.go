// Package main is the entry point for the cmdmenu CLI.
package main

import (
	"errors"
	"os"

	"github.com/javiplav/terminal-command-menu/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
