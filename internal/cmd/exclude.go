package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newExcludeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclude",
		Short: "Manage commands that are never listed",
		Long: `Manage history.excluded_patterns.

A pattern hides a command when it equals the whole command, equals its
first word, or is followed by a space at the start of the command. So
"git" hides every git command while "git status" hides only that one.`,
		GroupID: groupSetup,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <pattern>",
			Short: "Exclude a pattern",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return updateExclusions(cmd, opts, strings.Join(args, " "), true)
			},
		},
		&cobra.Command{
			Use:   "remove <pattern>",
			Short: "Stop excluding a pattern",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return updateExclusions(cmd, opts, strings.Join(args, " "), false)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List excluded patterns",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := opts.load(cmd)
				if err != nil {
					return err
				}
				defer a.Close()

				if len(a.cfg.History.ExcludedPatterns) == 0 {
					fmt.Fprintln(a.out, "No excluded patterns.")
					return nil
				}
				for _, p := range a.cfg.History.ExcludedPatterns {
					fmt.Fprintln(a.out, p)
				}
				return nil
			},
		},
	)
	return cmd
}

func updateExclusions(cmd *cobra.Command, opts *rootOptions, pattern string, add bool) error {
	a, err := opts.load(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	// Reload without flag overrides so they are not persisted.
	cfg, err := loadPersisted(a.configPath)
	if err != nil {
		return err
	}

	var changed bool
	if add {
		changed = cfg.AddExcludedPattern(pattern)
	} else {
		changed = cfg.RemoveExcludedPattern(pattern)
	}
	if !changed {
		if add {
			fmt.Fprintf(a.out, "%q is already excluded.\n", pattern)
		} else {
			fmt.Fprintf(a.out, "%q is not excluded.\n", pattern)
		}
		return nil
	}

	if err := saveConfig(cfg, a.configPath); err != nil {
		return err
	}
	if add {
		fmt.Fprintf(a.out, "Excluded %q\n", strings.TrimSpace(pattern))
	} else {
		fmt.Fprintf(a.out, "Removed %q\n", strings.TrimSpace(pattern))
	}
	return nil
}
