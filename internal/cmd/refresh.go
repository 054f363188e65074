package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "refresh",
		Short:   "Re-read the history file and report what was parsed",
		GroupID: groupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ranking := a.pipeline(-1, "", nil).Run()
			if ranking.Path == "" {
				fmt.Fprintf(a.out, "No %s history file found.\n", ranking.Shell)
				return nil
			}
			fmt.Fprintf(a.out, "Parsed %d unique commands (%d entries) from %s\n",
				ranking.Matched, ranking.Entries, ranking.Path)
			return nil
		},
	}
}
