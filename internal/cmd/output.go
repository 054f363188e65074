package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/javiplav/terminal-command-menu/internal/menu"
	"github.com/javiplav/terminal-command-menu/internal/rank"
)

const defaultTermWidth = 80

// termWidth returns $COLUMNS when set, else the terminal width, else 80.
func termWidth() int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	if w := termWidthIoctl(); w > 0 {
		return w
	}
	return defaultTermWidth
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// newStyles returns styles for w; colors are used only on terminals.
func newStyles(w io.Writer, theme string) menu.Styles {
	color := isTerminal(w) && !shouldDisableColors()
	return menu.NewStyles(menu.NewRenderer(w, color), theme)
}

// printCommands writes numbered rows for commands.
func printCommands(w io.Writer, s menu.Styles, commands []rank.Command, showCategories bool) {
	width := termWidth()
	for i, c := range commands {
		fmt.Fprintln(w, menu.FormatRow(s, i+1, c, width, showCategories))
	}
}
