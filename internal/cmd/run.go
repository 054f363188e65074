package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiplav/terminal-command-menu/internal/alias"
	"github.com/javiplav/terminal-command-menu/internal/executor"
	"github.com/javiplav/terminal-command-menu/internal/history"
	"github.com/javiplav/terminal-command-menu/internal/menu"
	"github.com/javiplav/terminal-command-menu/internal/sanitize"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run [--dry-run] -- <command...>",
		Short: "Run a command the way the menu would",
		Long: `Run a command through the same path as a menu selection: aliases are
expanded, the safety check runs, the execution is recorded and the
command is handed to your shell.

With --dry-run, show the preview, the expanded command and the safety
verdict without running anything.

Examples:
  cmdmenu run -- gs
  cmdmenu run --dry-run -- git push --force`,
		GroupID: groupCore,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			cmdText := strings.Join(args, " ")
			kind := a.source().Detect()
			if dryRun {
				return previewCommand(cmd.Context(), a, kind, cmdText)
			}

			store := a.openStore()
			if store != nil {
				defer store.Close()
			}
			return executeSelection(cmd.Context(), a, kind, store, "", cmdText)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would run without running it")
	return cmd
}

func previewCommand(ctx context.Context, a *app, kind history.ShellKind, cmdText string) error {
	s := a.styles
	summary := executor.Preview(cmdText)
	fmt.Fprintln(a.out, summary.Description)

	selected := strings.TrimSpace(cmdText)
	expanded := selected
	if a.cfg.Alias.Enabled {
		expanded = alias.Expand(expanded, a.resolver().Resolve(ctx, kind))
	}
	fmt.Fprintf(a.out, "Expands to: %s\n", menu.DisplayText(expanded))
	if summary.Risk == sanitize.RiskDestructive {
		fmt.Fprintln(a.out, s.Warning.Render("Warning: destructive command ("+summary.RiskPattern+")"))
	}

	verdict, checked := sanitize.NewGate(a.cfg.Safety.ExtraPatterns...).CheckExpanded(selected, expanded)
	if !verdict.Allowed {
		fmt.Fprintln(a.out, s.Error.Render("Blocked: "+verdict.Reason))
		return verdict.Err(checked)
	}
	fmt.Fprintln(a.out, "Allowed")
	return nil
}
