package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("Expected default max_limit 64, got %d", cfg.Server.MaxLimit)
	}
	if cfg.CLI.DefaultLimit != 24 {
		t.Errorf("Expected default cli limit 24, got %d", cfg.CLI.DefaultLimit)
	}
	if len(cfg.Rules) != 0 {
		t.Errorf("Expected no default rules, got %d", len(cfg.Rules))
	}
}

func TestLoadConfigRuleOrder(t *testing.T) {
	content := `
[server]
max_limit = 32

[[rules]]
pattern = "PH"
replace = "F"

[[rules]]
pattern = "F"
replace = "V"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.MaxLimit != 32 {
		t.Errorf("Expected max_limit 32, got %d", cfg.Server.MaxLimit)
	}
	if cfg.Server.MinQuery != 1 {
		t.Errorf("Unset field should keep its default, got %d", cfg.Server.MinQuery)
	}
	if len(cfg.Rules) != 2 {
		t.Fatalf("Expected 2 rules, got %d", len(cfg.Rules))
	}
	// file order is application order
	if cfg.Rules[0].Pattern != "PH" || cfg.Rules[1].Pattern != "F" {
		t.Errorf("Rules out of order: %+v", cfg.Rules)
	}
}

func TestCompileRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = []RuleConfig{
		{Pattern: "PH", Replace: "F"},
	}
	rules, err := cfg.CompileRules()
	if err != nil {
		t.Fatalf("CompileRules failed: %v", err)
	}
	if len(rules) != 1 || rules[0].Pattern() != "PH" {
		t.Errorf("Unexpected compiled rules: %+v", rules)
	}
}

func TestCompileRulesBadPattern(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = []RuleConfig{
		{Pattern: "[unclosed", Replace: "X"},
	}
	if _, err := cfg.CompileRules(); err == nil {
		t.Error("Expected an error for a malformed rule pattern")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("Expected defaults, got %+v", cfg.Server)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected config file to be created: %v", err)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// the server section parses, the trailing garbage does not
	content := `
[server]
max_limit = 48
min_query = 2

[[rules]]
pattern = "TH"
replace = "T"

[cli
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should recover, got: %v", err)
	}
	if cfg.CLI.DefaultLimit != 24 {
		t.Errorf("Broken section should fall back to defaults, got %d", cfg.CLI.DefaultLimit)
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	newLimit := 16
	if err := cfg.Update(path, &newLimit, nil, nil); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Server.MaxLimit != 16 {
		t.Errorf("Expected persisted max_limit 16, got %d", loaded.Server.MaxLimit)
	}
	if loaded.Server.MinQuery != 1 {
		t.Errorf("Untouched field changed: %d", loaded.Server.MinQuery)
	}
}
