package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiplav/terminal-command-menu/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration values",
		Long: `Get or set cmdmenu configuration values.

Without arguments, lists all configuration keys.
With one argument, shows the value of that key.
With two arguments, sets the key to the value.

Configuration is stored in ~/.config/terminal-command-menu/config.yaml
(XDG compliant). List values are comma-separated.

Keys are in the format: section.key
Sections: menu, history, alias, safety, log

Examples:
  cmdmenu config                              # List all keys
  cmdmenu config menu.sort_method             # Get a value
  cmdmenu config menu.sort_method recency     # Set a value
  cmdmenu config history.category_filters git,docker`,
		GroupID: groupSetup,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			switch len(args) {
			case 0:
				return listConfig(a)
			case 1:
				return getConfig(a, args[0])
			default:
				return setConfig(a, args[0], args[1])
			}
		},
	}
}

func listConfig(a *app) error {
	s := a.styles
	fmt.Fprintln(a.out, s.Title.Render("Configuration Keys"))
	fmt.Fprintln(a.out, strings.Repeat("-", 40))

	var failedKeys []string
	for _, key := range config.ListKeys() {
		value, err := a.cfg.Get(key)
		if err != nil {
			failedKeys = append(failedKeys, key)
			continue
		}
		if value == "" {
			value = s.Dim.Render("(not set)")
		}
		fmt.Fprintf(a.out, "  %s = %s\n", s.Category.Render(key), value)
	}

	if len(failedKeys) > 0 {
		fmt.Fprintf(a.out, "\n%s Failed to retrieve keys: %s\n", s.Warning.Render("Warning:"), strings.Join(failedKeys, ", "))
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Config file: %s\n", a.configPath)
	return nil
}

func getConfig(a *app, key string) error {
	value, err := a.cfg.Get(key)
	if err != nil {
		return err
	}
	if value == "" {
		fmt.Fprintln(a.out, a.styles.Dim.Render("(not set)"))
		return nil
	}
	fmt.Fprintln(a.out, value)
	return nil
}

func setConfig(a *app, key, value string) error {
	cfg, err := loadPersisted(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := saveConfig(cfg, a.configPath); err != nil {
		return err
	}

	stored, _ := cfg.Get(key)
	fmt.Fprintf(a.out, "%s = %s\n", a.styles.Category.Render(key), stored)
	fmt.Fprintf(a.out, "Saved to: %s\n", a.configPath)
	return nil
}

// loadPersisted reads the config file without env or flag overrides.
func loadPersisted(path string) (*config.Config, error) {
	cfg, err := config.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func saveConfig(cfg *config.Config, path string) error {
	if err := cfg.SaveToFile(path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
