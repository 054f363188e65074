package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiplav/terminal-command-menu/internal/menu"
)

func newAliasesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "Show the aliases discovered from your shell",
		Long: `Show the aliases discovered from your shell.

The shell is started interactively so its startup file is read, then asked
for its alias listing. Discovery is bounded by alias.timeout_ms.`,
		GroupID: groupSetup,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			kind := a.source().Detect()
			table := a.resolver().Resolve(cmd.Context(), kind)
			if len(table) == 0 {
				fmt.Fprintf(a.out, "No aliases found for %s.\n", kind)
				return nil
			}

			names := table.Names()
			width := 0
			for _, name := range names {
				width = max(width, len(name))
			}
			for _, name := range names {
				fmt.Fprintf(a.out, "%s = %s\n",
					a.styles.Category.Render(menu.PadRight(name, width)),
					menu.DisplayText(table[name]))
			}
			return nil
		},
	}
}
