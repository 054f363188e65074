package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "paths",
		Short:   "Show the files cmdmenu reads and writes",
		GroupID: groupSetup,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			source := a.source()
			kind := source.Detect()
			historyPath, ok := source.Locate(kind)
			if !ok {
				historyPath += " (missing)"
			}
			logFile := a.cfg.Log.File
			if logFile == "" {
				logFile = "(stderr)"
			}

			fmt.Fprintf(a.out, "Shell:     %s\n", kind)
			fmt.Fprintf(a.out, "History:   %s\n", historyPath)
			fmt.Fprintf(a.out, "Config:    %s\n", a.configPath)
			fmt.Fprintf(a.out, "Database:  %s\n", a.paths.DatabaseFile())
			fmt.Fprintf(a.out, "Log:       %s\n", logFile)
			return nil
		},
	}
}
