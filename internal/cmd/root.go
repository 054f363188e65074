// Package cmd implements the cmdmenu command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

const (
	groupCore  = "core"
	groupSetup = "setup"
)

// rootOptions holds the persistent flags. They override config for the
// current run only and are never saved.
type rootOptions struct {
	configPath  string
	shell       string
	maxCommands int
	noConfirm   bool
}

// NewRootCmd builds the cmdmenu command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cmdmenu",
		Short: "a menu of your most used shell commands",
		Long: `cmdmenu - a menu of your most used shell commands
  - reads zsh, bash and fish history
  - ranks and categorizes what you run most
  - re-runs a pick through your shell, aliases included`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/terminal-command-menu/config.yaml)")
	flags.StringVar(&opts.shell, "shell", "", "shell whose history to read (zsh, bash, fish)")
	flags.IntVar(&opts.maxCommands, "max-commands", 0, "number of commands to rank (default from config)")
	flags.BoolVar(&opts.noConfirm, "no-confirm", false, "run the selected command without asking")

	root.AddGroup(
		&cobra.Group{ID: groupCore, Title: "Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
	)
	root.SetHelpCommandGroupID(groupSetup)
	root.SetCompletionCommandGroupID(groupSetup)

	root.AddCommand(
		newListCmd(opts),
		newStatsCmd(opts),
		newRefreshCmd(opts),
		newRunCmd(opts),
		newAliasesCmd(opts),
		newWatchCmd(opts),
		newExcludeCmd(opts),
		newConfigCmd(opts),
		newPathsCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command. Errors other than a child's exit status
// are printed to stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", colorRed, colorReset, err)
	}
	return err
}

// ExitError carries the exit status of a command run from the menu so the
// process can exit with it.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
