//go:build windows

package cmd

// termWidthIoctl returns 0 on Windows; width detection falls back to $COLUMNS.
func termWidthIoctl() int {
	return 0
}
