package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiplav/terminal-command-menu/internal/menu"
	"github.com/javiplav/terminal-command-menu/internal/rank"
	"github.com/javiplav/terminal-command-menu/internal/storage"
)

const topExecutedInStats = 5

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show history and usage statistics",
		GroupID: groupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ranking := a.pipeline(-1, rank.SortFrequency, nil).Run()
			stats := rank.Statistics(ranking.Commands)
			printHistoryStats(a.out, a.styles, ranking, stats)

			if store := a.openStore(); store != nil {
				defer store.Close()
				printUsageStats(cmd.Context(), a, store)
			}
			return nil
		},
	}
}

func printHistoryStats(w io.Writer, s menu.Styles, ranking rank.Ranking, stats rank.Stats) {
	fmt.Fprintln(w, s.Title.Render("History"))
	source := ranking.Path
	if source == "" {
		source = "(no history file found)"
	}
	fmt.Fprintf(w, "  Shell:            %s\n", ranking.Shell)
	fmt.Fprintf(w, "  File:             %s\n", source)
	fmt.Fprintf(w, "  Total commands:   %d\n", stats.TotalCommands)
	fmt.Fprintf(w, "  Unique commands:  %d\n", stats.UniqueCommands)

	if len(stats.Categories) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Title.Render("Categories"))
		for _, c := range stats.SortedCategories() {
			fmt.Fprintf(w, "  %s %d\n", s.Category.Render(menu.PadRight(c.Category, 12)), c.Count)
		}
	}

	if len(stats.Top) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Title.Render("Top commands"))
		printCommands(w, s, stats.Top, true)
	}
}

func printUsageStats(ctx context.Context, a *app, store *storage.SQLiteStore) {
	sessions, err := store.CountSessions(ctx)
	if err != nil {
		a.logger.Warn("failed to count sessions", "error", err)
		return
	}
	total, err := store.TotalExecutions(ctx)
	if err != nil {
		a.logger.Warn("failed to count executions", "error", err)
		return
	}
	records, err := store.ExecutionRecords(ctx, topExecutedInStats)
	if err != nil {
		a.logger.Warn("failed to load executions", "error", err)
		return
	}
	last, err := store.LastSession(ctx)
	if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		a.logger.Warn("failed to load last session", "error", err)
	}

	w, s := a.out, a.styles
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Title.Render("Menu usage"))
	fmt.Fprintf(w, "  Sessions:         %d\n", sessions)
	fmt.Fprintf(w, "  Commands run:     %d\n", total)
	if last != nil {
		fmt.Fprintf(w, "  Last session:     %s (%s in %s)\n",
			time.UnixMilli(last.StartedAtUnixMs).Format("2006-01-02 15:04"),
			last.Shell, menu.DisplayText(last.InitialCWD))
	}
	for _, r := range records {
		fmt.Fprintf(w, "  %s %s\n",
			s.Count.Render(fmt.Sprintf("%5dx", r.Count)),
			menu.DisplayText(r.Command))
	}
}
