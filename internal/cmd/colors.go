package cmd

import (
	"os"
	"runtime"
)

// ANSI codes for plain error and status lines written to stderr.
var (
	colorRed   = "\033[0;31m"
	colorReset = "\033[0m"
)

func init() {
	if shouldDisableColors() {
		colorRed = ""
		colorReset = ""
	}
}

func shouldDisableColors() bool {
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return true
	}

	if runtime.GOOS == "windows" {
		if os.Getenv("WT_SESSION") != "" || os.Getenv("TERM_PROGRAM") != "" {
			return false
		}
		return os.Getenv("ANSICON") == "" && os.Getenv("ConEmuANSI") != "ON"
	}
	return false
}
