package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Menu.MaxCommands != 100 {
		t.Errorf("Expected max_commands=100, got %d", cfg.Menu.MaxCommands)
	}
	if !cfg.Menu.ConfirmExecution {
		t.Error("Expected confirm_execution=true")
	}
	if cfg.Menu.SortMethod != "frequency" {
		t.Errorf("Expected sort_method=frequency, got %s", cfg.Menu.SortMethod)
	}
	if cfg.Menu.PageSize != 20 {
		t.Errorf("Expected page_size=20, got %d", cfg.Menu.PageSize)
	}
	want := []string{"ls", "cd", "pwd", "clear", "exit"}
	if !reflect.DeepEqual(cfg.History.ExcludedPatterns, want) {
		t.Errorf("Expected excluded_patterns=%v, got %v", want, cfg.History.ExcludedPatterns)
	}
	if !cfg.Alias.Enabled || cfg.Alias.TimeoutMs != 10000 {
		t.Errorf("Expected alias enabled with 10000ms timeout, got %+v", cfg.Alias)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Expected log.level=warn, got %s", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfigGet(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		key      string
		expected string
	}{
		{"menu.max_commands", "100"},
		{"menu.confirm_execution", "true"},
		{"menu.sort_method", "frequency"},
		{"menu.show_categories", "true"},
		{"menu.auto_refresh", "true"},
		{"menu.page_size", "20"},
		{"menu.theme", "dark"},
		{"history.shell", ""},
		{"history.file", ""},
		{"history.excluded_patterns", "ls,cd,pwd,clear,exit"},
		{"history.category_filters", ""},
		{"alias.enabled", "true"},
		{"alias.timeout_ms", "10000"},
		{"safety.extra_patterns", ""},
		{"log.level", "warn"},
		{"log.file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error = %v", tt.key, err)
			}
			if got != tt.expected {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestConfigGet_EveryListedKey(t *testing.T) {
	cfg := DefaultConfig()
	for _, key := range ListKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}
}

func TestConfigSet(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		expected string
	}{
		{"menu.max_commands", "50", "50"},
		{"menu.confirm_execution", "false", "false"},
		{"menu.sort_method", "recency", "recency"},
		{"menu.page_size", "1000", "200"},
		{"menu.page_size", "1", "5"},
		{"menu.theme", "light", "light"},
		{"history.shell", "fish", "fish"},
		{"history.file", "/tmp/hist", "/tmp/hist"},
		{"history.excluded_patterns", " ls , git status ,, ", "ls,git status"},
		{"history.category_filters", "git,docker", "git,docker"},
		{"alias.enabled", "false", "false"},
		{"alias.timeout_ms", "2500", "2500"},
		{"safety.extra_patterns", "terraform destroy", "terraform destroy"},
		{"log.level", "debug", "debug"},
		{"log.file", "/tmp/cmdmenu.log", "/tmp/cmdmenu.log"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := cfg.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set(%q, %q) error = %v", tt.key, tt.value, err)
			}
			got, _ := cfg.Get(tt.key)
			if got != tt.expected {
				t.Errorf("after Set, Get(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestConfigSet_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"menu.max_commands", "zero"},
		{"menu.max_commands", "0"},
		{"menu.confirm_execution", "maybe"},
		{"menu.sort_method", "random"},
		{"menu.theme", "solarized"},
		{"history.shell", "tcsh"},
		{"alias.timeout_ms", "-1"},
		{"log.level", "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := cfg.Set(tt.key, tt.value); err == nil {
				t.Errorf("Set(%q, %q) expected error", tt.key, tt.value)
			}
		})
	}
}

func TestConfigGetSet_UnknownKeys(t *testing.T) {
	cfg := DefaultConfig()

	for _, key := range []string{"menu.nope", "daemon.log_level", "log.level.extra"} {
		if _, err := cfg.Get(key); err == nil {
			t.Errorf("Get(%q) expected error", key)
		}
	}
	if _, err := cfg.Get("menu.nope"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get(menu.nope) error = %v, want ErrUnknownKey", err)
	}
	if err := cfg.Set("bogus.key", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Set(bogus.key) error = %v, want ErrUnknownKey", err)
	}
	if _, err := cfg.Get("nodot"); err == nil {
		t.Error("Get(nodot) expected format error")
	}
}

func TestExcludedPatterns_AddRemove(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.AddExcludedPattern("git status") {
		t.Error("AddExcludedPattern(new) = false")
	}
	if cfg.AddExcludedPattern("git status") {
		t.Error("AddExcludedPattern(duplicate) = true")
	}
	if cfg.AddExcludedPattern("   ") {
		t.Error("AddExcludedPattern(blank) = true")
	}
	if !cfg.RemoveExcludedPattern("ls") {
		t.Error("RemoveExcludedPattern(ls) = false")
	}
	if cfg.RemoveExcludedPattern("ls") {
		t.Error("RemoveExcludedPattern(ls) twice = true")
	}

	want := []string{"cd", "pwd", "clear", "exit", "git status"}
	if !reflect.DeepEqual(cfg.History.ExcludedPatterns, want) {
		t.Errorf("ExcludedPatterns = %v, want %v", cfg.History.ExcludedPatterns, want)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	t.Setenv("CMDMENU_SHELL", "")
	t.Setenv("CMDMENU_LOG_LEVEL", "")
	t.Setenv("CMDMENU_DEBUG", "")

	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadFromFile(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadFromFile_PartialOverridesDefaults(t *testing.T) {
	t.Setenv("CMDMENU_SHELL", "")
	t.Setenv("CMDMENU_LOG_LEVEL", "")
	t.Setenv("CMDMENU_DEBUG", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `menu:
  max_commands: 25
  page_size: 2
history:
  shell: zsh
  excluded_patterns: [clear]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Menu.MaxCommands != 25 {
		t.Errorf("max_commands = %d, want 25", cfg.Menu.MaxCommands)
	}
	if cfg.Menu.PageSize != MinPageSize {
		t.Errorf("page_size = %d, want clamped %d", cfg.Menu.PageSize, MinPageSize)
	}
	if !cfg.Menu.ConfirmExecution {
		t.Error("confirm_execution should keep its default")
	}
	if cfg.History.Shell != "zsh" {
		t.Errorf("shell = %s, want zsh", cfg.History.Shell)
	}
	if !reflect.DeepEqual(cfg.History.ExcludedPatterns, []string{"clear"}) {
		t.Errorf("excluded_patterns = %v, want [clear]", cfg.History.ExcludedPatterns)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badYAML, []byte("menu: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(badYAML); err == nil {
		t.Error("LoadFromFile(bad yaml) expected error")
	}

	badValue := filepath.Join(dir, "value.yaml")
	if err := os.WriteFile(badValue, []byte("menu:\n  sort_method: random\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFromFile(badValue)
	if err == nil || !strings.Contains(err.Error(), "sort_method") {
		t.Errorf("LoadFromFile(bad value) error = %v, want sort_method error", err)
	}
}

func TestSaveToFile_RoundTrip(t *testing.T) {
	t.Setenv("CMDMENU_SHELL", "")
	t.Setenv("CMDMENU_LOG_LEVEL", "")
	t.Setenv("CMDMENU_DEBUG", "")

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Menu.Theme = "light"
	cfg.AddExcludedPattern("git status")

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}
	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("CMDMENU_SHELL", "fish")
	t.Setenv("CMDMENU_LOG_LEVEL", "error")
	t.Setenv("CMDMENU_DEBUG", "")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()
	if cfg.History.Shell != "fish" {
		t.Errorf("shell = %s, want fish", cfg.History.Shell)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log.level = %s, want error", cfg.Log.Level)
	}

	t.Setenv("CMDMENU_DEBUG", "1")
	t.Setenv("CMDMENU_SHELL", "tcsh")
	cfg = DefaultConfig()
	cfg.ApplyEnvOverrides()
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %s, want debug", cfg.Log.Level)
	}
	if cfg.History.Shell != "" {
		t.Errorf("invalid CMDMENU_SHELL should be ignored, got %s", cfg.History.Shell)
	}
}

func TestReadFile_IgnoresEnvOverrides(t *testing.T) {
	t.Setenv("CMDMENU_SHELL", "fish")
	t.Setenv("CMDMENU_DEBUG", "1")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("history:\n  shell: zsh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if cfg.History.Shell != "zsh" {
		t.Errorf("shell = %s, want zsh", cfg.History.Shell)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %s, want warn", cfg.Log.Level)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.History.Shell != "fish" || loaded.Log.Level != "debug" {
		t.Errorf("LoadFromFile() = %+v, want env overrides applied", loaded)
	}
}
