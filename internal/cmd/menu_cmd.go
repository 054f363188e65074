package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiplav/terminal-command-menu/internal/history"
	"github.com/javiplav/terminal-command-menu/internal/menu"
	"github.com/javiplav/terminal-command-menu/internal/storage"
)

func runMenu(cmd *cobra.Command, opts *rootOptions) error {
	a, err := opts.load(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := cmd.Context()

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	sort := sortMethod(a.cfg.Menu.SortMethod)
	ranking := a.pipeline(a.cfg.Menu.MaxCommands, sort, a.lastUsed(ctx, store, sort)).Run()
	if len(ranking.Commands) == 0 {
		fmt.Fprintf(a.out, "No commands found in %s history.\n", ranking.Shell)
		return nil
	}

	sessionID := a.startSession(ctx, store, ranking.Shell)
	defer a.endSession(context.WithoutCancel(ctx), store, sessionID)

	prompter, err := menu.NewReadline(os.Stdin, a.out)
	if err != nil {
		return fmt.Errorf("failed to open prompt: %w", err)
	}
	m := &menu.Menu{
		Prompter:       prompter,
		Out:            a.out,
		Styles:         a.styles,
		PageSize:       a.cfg.Menu.PageSize,
		Width:          termWidth(),
		Confirm:        a.cfg.Menu.ConfirmExecution,
		ShowCategories: a.cfg.Menu.ShowCategories,
	}
	selected, err := m.Run(ranking.Commands)
	_ = prompter.Close()
	if errors.Is(err, menu.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	return executeSelection(ctx, a, ranking.Shell, store, sessionID, selected)
}

// executeSelection runs cmdText and maps a non-zero exit to *ExitError.
func executeSelection(ctx context.Context, a *app, kind history.ShellKind, store *storage.SQLiteStore, sessionID, cmdText string) error {
	fmt.Fprintln(a.errOut, a.styles.Dim.Render("Executing: "+menu.DisplayText(cmdText)))

	result, err := a.executor(kind, store, sessionID).Execute(ctx, cmdText)
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
