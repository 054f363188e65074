package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiplav/terminal-command-menu/internal/rank"
	"github.com/javiplav/terminal-command-menu/internal/storage"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		limit      int
		sortName   string
		categories []string
		search     string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the ranked commands",
		Long: `Print the ranked commands without the interactive menu.

Examples:
  cmdmenu list --limit 20
  cmdmenu list --sort recency
  cmdmenu list --category git --category docker
  cmdmenu list --search compose`,
		GroupID: groupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if sortName == "" {
				sortName = a.cfg.Menu.SortMethod
			}
			sort, err := rank.ParseSortMethod(sortName)
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = a.cfg.Menu.MaxCommands
			}

			var store *storage.SQLiteStore
			if sort == rank.SortRecency {
				if store = a.openStore(); store != nil {
					defer store.Close()
				}
			}

			p := a.pipeline(limit, sort, a.lastUsed(cmd.Context(), store, sort))
			if all {
				p.Filters = nil
			}
			if len(categories) > 0 {
				p.Filters = append(p.Filters, rank.OnlyCategories(categories))
			}
			if search != "" {
				p.Filters = append(p.Filters, rank.Search(search))
			}

			ranking := p.Run()
			if len(ranking.Commands) == 0 {
				fmt.Fprintf(a.out, "No commands found in %s history.\n", ranking.Shell)
				return nil
			}
			printCommands(a.out, a.styles, ranking.Commands, a.cfg.Menu.ShowCategories)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum commands to print (default menu.max_commands)")
	cmd.Flags().StringVar(&sortName, "sort", "", "frequency, recency, or alphabetical (default menu.sort_method)")
	cmd.Flags().StringArrayVarP(&categories, "category", "c", nil, "only show this category (repeatable)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "only show commands containing this text")
	cmd.Flags().BoolVar(&all, "all", false, "ignore configured exclusions and category filters")
	return cmd
}
