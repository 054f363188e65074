package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKey is returned by Get and Set for keys that do not exist.
var ErrUnknownKey = errors.New("unknown config key")

// Page size bounds; Validate clamps menu.page_size into this range.
const (
	MinPageSize = 5
	MaxPageSize = 200
)

// Config represents the cmdmenu configuration.
type Config struct {
	Menu    MenuConfig    `yaml:"menu"`
	History HistoryConfig `yaml:"history"`
	Alias   AliasConfig   `yaml:"alias"`
	Safety  SafetyConfig  `yaml:"safety"`
	Log     LogConfig     `yaml:"log"`
}

// MenuConfig holds settings for the interactive menu and listings.
type MenuConfig struct {
	MaxCommands      int    `yaml:"max_commands"`      // Commands ranked per pass
	ConfirmExecution bool   `yaml:"confirm_execution"` // Ask before running a selection
	SortMethod       string `yaml:"sort_method"`       // frequency, recency, or alphabetical
	ShowCategories   bool   `yaml:"show_categories"`   // Show the category column
	AutoRefresh      bool   `yaml:"auto_refresh"`      // Re-rank when the history file changes (watch)
	PageSize         int    `yaml:"page_size"`         // Rows per menu page
	Theme            string `yaml:"theme"`             // dark or light
}

// HistoryConfig holds history source settings.
type HistoryConfig struct {
	Shell            string   `yaml:"shell"`             // zsh, bash, fish; empty = detect
	File             string   `yaml:"file"`              // History file override
	ExcludedPatterns []string `yaml:"excluded_patterns"` // Commands never listed
	CategoryFilters  []string `yaml:"category_filters"`  // Only list these categories; empty = all
}

// AliasConfig holds alias discovery settings.
type AliasConfig struct {
	Enabled   bool `yaml:"enabled"`    // Expand aliases before running
	TimeoutMs int  `yaml:"timeout_ms"` // Bound on the shell's alias listing
}

// SafetyConfig holds safety gate settings.
type SafetyConfig struct {
	ExtraPatterns []string `yaml:"extra_patterns"` // Added to the built-in deny-list
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // JSON log file; empty = stderr text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Menu: MenuConfig{
			MaxCommands:      100,
			ConfirmExecution: true,
			SortMethod:       "frequency",
			ShowCategories:   true,
			AutoRefresh:      true,
			PageSize:         20,
			Theme:            "dark",
		},
		History: HistoryConfig{
			ExcludedPatterns: []string{"ls", "cd", "pwd", "clear", "exit"},
			CategoryFilters:  []string{},
		},
		Alias: AliasConfig{
			Enabled:   true,
			TimeoutMs: 10000,
		},
		Safety: SafetyConfig{
			ExtraPatterns: []string{},
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads the configuration from the default config file.
func Load() (*Config, error) {
	return LoadFromFile(DefaultPaths().ConfigFile())
}

// LoadFromFile loads configuration from path and applies environment
// overrides. A missing file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ReadFile loads exactly what is stored at path, merged over the defaults,
// without environment overrides. Use it before SaveToFile so overrides are
// not persisted.
func ReadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // G304: user-chosen config path
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration to path, creating its directory.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Get returns the value of a dotted key such as "menu.max_commands".
// List values are joined with commas.
func (c *Config) Get(key string) (string, error) {
	section, field, err := splitKey(key)
	if err != nil {
		return "", err
	}

	switch section {
	case "menu":
		return c.getMenuField(field)
	case "history":
		return c.getHistoryField(field)
	case "alias":
		return c.getAliasField(field)
	case "safety":
		return c.getSafetyField(field)
	case "log":
		return c.getLogField(field)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set parses value into the dotted key. List values are comma-separated.
func (c *Config) Set(key, value string) error {
	section, field, err := splitKey(key)
	if err != nil {
		return err
	}

	switch section {
	case "menu":
		return c.setMenuField(field, value)
	case "history":
		return c.setHistoryField(field, value)
	case "alias":
		return c.setAliasField(field, value)
	case "safety":
		return c.setSafetyField(field, value)
	case "log":
		return c.setLogField(field, value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

func splitKey(key string) (section, field string, err error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", "", errors.New("key must be in format 'section.key'")
	}
	return parts[0], parts[1], nil
}

func (c *Config) getMenuField(field string) (string, error) {
	switch field {
	case "max_commands":
		return strconv.Itoa(c.Menu.MaxCommands), nil
	case "confirm_execution":
		return strconv.FormatBool(c.Menu.ConfirmExecution), nil
	case "sort_method":
		return c.Menu.SortMethod, nil
	case "show_categories":
		return strconv.FormatBool(c.Menu.ShowCategories), nil
	case "auto_refresh":
		return strconv.FormatBool(c.Menu.AutoRefresh), nil
	case "page_size":
		return strconv.Itoa(c.Menu.PageSize), nil
	case "theme":
		return c.Menu.Theme, nil
	default:
		return "", fmt.Errorf("%w: menu.%s", ErrUnknownKey, field)
	}
}

func (c *Config) setMenuField(field, value string) error {
	switch field {
	case "max_commands":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for max_commands: %w", err)
		}
		if v < 1 {
			return errors.New("invalid max_commands: must be positive")
		}
		c.Menu.MaxCommands = v
	case "confirm_execution":
		return parseBoolInto(&c.Menu.ConfirmExecution, field, value)
	case "sort_method":
		if !isValidSortMethod(value) {
			return fmt.Errorf("invalid sort_method: %s (must be frequency, recency, or alphabetical)", value)
		}
		c.Menu.SortMethod = value
	case "show_categories":
		return parseBoolInto(&c.Menu.ShowCategories, field, value)
	case "auto_refresh":
		return parseBoolInto(&c.Menu.AutoRefresh, field, value)
	case "page_size":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for page_size: %w", err)
		}
		c.Menu.PageSize = clampPageSize(v)
	case "theme":
		if !isValidTheme(value) {
			return fmt.Errorf("invalid theme: %s (must be dark or light)", value)
		}
		c.Menu.Theme = value
	default:
		return fmt.Errorf("%w: menu.%s", ErrUnknownKey, field)
	}
	return nil
}

func (c *Config) getHistoryField(field string) (string, error) {
	switch field {
	case "shell":
		return c.History.Shell, nil
	case "file":
		return c.History.File, nil
	case "excluded_patterns":
		return strings.Join(c.History.ExcludedPatterns, ","), nil
	case "category_filters":
		return strings.Join(c.History.CategoryFilters, ","), nil
	default:
		return "", fmt.Errorf("%w: history.%s", ErrUnknownKey, field)
	}
}

func (c *Config) setHistoryField(field, value string) error {
	switch field {
	case "shell":
		if !isValidShell(value) {
			return fmt.Errorf("invalid shell: %s (must be zsh, bash, fish, or empty)", value)
		}
		c.History.Shell = value
	case "file":
		c.History.File = value
	case "excluded_patterns":
		c.History.ExcludedPatterns = splitList(value)
	case "category_filters":
		c.History.CategoryFilters = splitList(value)
	default:
		return fmt.Errorf("%w: history.%s", ErrUnknownKey, field)
	}
	return nil
}

func (c *Config) getAliasField(field string) (string, error) {
	switch field {
	case "enabled":
		return strconv.FormatBool(c.Alias.Enabled), nil
	case "timeout_ms":
		return strconv.Itoa(c.Alias.TimeoutMs), nil
	default:
		return "", fmt.Errorf("%w: alias.%s", ErrUnknownKey, field)
	}
}

func (c *Config) setAliasField(field, value string) error {
	switch field {
	case "enabled":
		return parseBoolInto(&c.Alias.Enabled, field, value)
	case "timeout_ms":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for timeout_ms: %w", err)
		}
		if v <= 0 {
			return errors.New("invalid timeout_ms: must be positive")
		}
		c.Alias.TimeoutMs = v
	default:
		return fmt.Errorf("%w: alias.%s", ErrUnknownKey, field)
	}
	return nil
}

func (c *Config) getSafetyField(field string) (string, error) {
	if field == "extra_patterns" {
		return strings.Join(c.Safety.ExtraPatterns, ","), nil
	}
	return "", fmt.Errorf("%w: safety.%s", ErrUnknownKey, field)
}

func (c *Config) setSafetyField(field, value string) error {
	if field == "extra_patterns" {
		c.Safety.ExtraPatterns = splitList(value)
		return nil
	}
	return fmt.Errorf("%w: safety.%s", ErrUnknownKey, field)
}

func (c *Config) getLogField(field string) (string, error) {
	switch field {
	case "level":
		return c.Log.Level, nil
	case "file":
		return c.Log.File, nil
	default:
		return "", fmt.Errorf("%w: log.%s", ErrUnknownKey, field)
	}
}

func (c *Config) setLogField(field, value string) error {
	switch field {
	case "level":
		if !isValidLogLevel(value) {
			return fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", value)
		}
		c.Log.Level = value
	case "file":
		c.Log.File = value
	default:
		return fmt.Errorf("%w: log.%s", ErrUnknownKey, field)
	}
	return nil
}

// AddExcludedPattern adds pattern to history.excluded_patterns.
// It reports false if the pattern is blank or already present.
func (c *Config) AddExcludedPattern(pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}
	for _, p := range c.History.ExcludedPatterns {
		if p == pattern {
			return false
		}
	}
	c.History.ExcludedPatterns = append(c.History.ExcludedPatterns, pattern)
	return true
}

// RemoveExcludedPattern removes pattern from history.excluded_patterns.
// It reports whether the pattern was present.
func (c *Config) RemoveExcludedPattern(pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	for i, p := range c.History.ExcludedPatterns {
		if p == pattern {
			c.History.ExcludedPatterns = append(c.History.ExcludedPatterns[:i], c.History.ExcludedPatterns[i+1:]...)
			return true
		}
	}
	return false
}

// Validate validates the configuration, clamping page_size into range.
func (c *Config) Validate() error {
	if c.Menu.MaxCommands < 1 {
		return fmt.Errorf("menu.max_commands must be positive (got: %d)", c.Menu.MaxCommands)
	}
	if !isValidSortMethod(c.Menu.SortMethod) {
		return fmt.Errorf("menu.sort_method must be frequency, recency, or alphabetical (got: %s)", c.Menu.SortMethod)
	}
	if !isValidTheme(c.Menu.Theme) {
		return fmt.Errorf("menu.theme must be dark or light (got: %s)", c.Menu.Theme)
	}
	c.Menu.PageSize = clampPageSize(c.Menu.PageSize)

	if !isValidShell(c.History.Shell) {
		return fmt.Errorf("history.shell must be zsh, bash, fish, or empty (got: %s)", c.History.Shell)
	}
	if c.Alias.TimeoutMs <= 0 {
		return errors.New("alias.timeout_ms must be positive")
	}
	if !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error (got: %s)", c.Log.Level)
	}
	return nil
}

// ApplyEnvOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CMDMENU_SHELL"); v != "" && isValidShell(v) {
		c.History.Shell = v
	}
	if v := os.Getenv("CMDMENU_LOG_LEVEL"); v != "" && isValidLogLevel(v) {
		c.Log.Level = v
	}
	if v := os.Getenv("CMDMENU_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Log.Level = "debug"
		}
	}
}

// ListKeys returns every configuration key.
func ListKeys() []string {
	return []string{
		"menu.max_commands",
		"menu.confirm_execution",
		"menu.sort_method",
		"menu.show_categories",
		"menu.auto_refresh",
		"menu.page_size",
		"menu.theme",
		"history.shell",
		"history.file",
		"history.excluded_patterns",
		"history.category_filters",
		"alias.enabled",
		"alias.timeout_ms",
		"safety.extra_patterns",
		"log.level",
		"log.file",
	}
}

func parseBoolInto(dst *bool, field, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", field, err)
	}
	*dst = b
	return nil
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func clampPageSize(n int) int {
	if n < MinPageSize {
		return MinPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func isValidSortMethod(method string) bool {
	switch method {
	case "frequency", "recency", "alphabetical":
		return true
	default:
		return false
	}
}

func isValidTheme(theme string) bool {
	return theme == "dark" || theme == "light"
}

func isValidShell(shell string) bool {
	switch shell {
	case "", "zsh", "bash", "fish":
		return true
	default:
		return false
	}
}
