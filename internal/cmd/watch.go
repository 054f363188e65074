package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiplav/terminal-command-menu/internal/watch"
)

const defaultWatchLimit = 10

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-rank and print the top commands whenever history changes",
		Long: `Watch the history file and print the top commands after every change.
Stops on Ctrl-C. Disabled when menu.auto_refresh is false.`,
		GroupID: groupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.cfg.Menu.AutoRefresh {
				return errors.New("auto refresh is disabled (menu.auto_refresh = false)")
			}
			if limit <= 0 {
				limit = defaultWatchLimit
			}

			source := a.source()
			kind := source.Detect()
			path, _ := source.Locate(kind)

			w, err := watch.New(path, watch.DefaultDebounce, a.logger)
			if err != nil {
				return err
			}

			sort := sortMethod(a.cfg.Menu.SortMethod)
			pass := func() {
				p := a.pipeline(limit, sort, nil)
				p.Source = source
				ranking := p.Run()
				fmt.Fprintln(a.out, a.styles.Title.Render(
					fmt.Sprintf("Top %d of %d commands (%s)", len(ranking.Commands), ranking.Matched, ranking.Shell)))
				printCommands(a.out, a.styles, ranking.Commands, a.cfg.Menu.ShowCategories)
			}

			pass()
			fmt.Fprintf(a.errOut, "Watching %s (Ctrl-C to stop)\n", path)
			return w.Run(cmd.Context(), pass)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", defaultWatchLimit, "commands to print after each change")
	return cmd
}
