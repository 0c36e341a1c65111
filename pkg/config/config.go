/*
Package config manages TOML config for typesift services.

Besides server and CLI options the config carries the substitution rules fed
to the normalizer. Rules are an array of tables and their file order is their
application order.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/typesift/internal/utils"
	"github.com/bastiangx/typesift/pkg/match"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
	Rules  []RuleConfig `toml:"rules"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
	MinQuery int `toml:"min_query"`
	MaxQuery int `toml:"max_query"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	ShowScores   bool `toml:"show_scores"`
}

// RuleConfig is one substitution rule: a regular-expression pattern and its
// literal replacement.
type RuleConfig struct {
	Pattern string `toml:"pattern"`
	Replace string `toml:"replace"`
}

// CompileRules compiles the configured rules in file order.
// A malformed pattern fails the whole set; rules are configuration and a bad
// one should not be dropped silently.
func (c *Config) CompileRules() ([]match.Rule, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}
	rules := make([]match.Rule, 0, len(c.Rules))
	for _, rc := range c.Rules {
		rule, err := match.NewRule(rc.Pattern, rc.Replace)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "typesift")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "typesift")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/typesift/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values. No rules: substitution
// tables are deployment-specific spelling maps, not something to guess.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit: 64,
			MinQuery: 1,
			MaxQuery: 60,
		},
		CLI: CliConfig{
			DefaultLimit: 24,
			ShowScores:   false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to salvage whatever sections still parse
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	if ruleTables, ok := utils.ExtractTableArray(tempConfig, "rules"); ok {
		config.Rules = extractRuleConfigs(ruleTables)
	}
	return config, nil
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_query"); ok {
		server.MinQuery = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query"); ok {
		server.MaxQuery = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "show_scores"); ok {
		cli.ShowScores = val
	}
}

// extractRuleConfigs rebuilds the ordered rule list from raw tables.
// Entries missing a pattern are skipped; an empty replacement is valid
// (deletion rule).
func extractRuleConfigs(tables []map[string]any) []RuleConfig {
	rules := make([]RuleConfig, 0, len(tables))
	for _, table := range tables {
		pattern, ok := utils.ExtractString(table, "pattern")
		if !ok || pattern == "" {
			log.Warnf("Skipping rule entry without a pattern: %v", table)
			continue
		}
		replace, _ := utils.ExtractString(table, "replace")
		rules = append(rules, RuleConfig{Pattern: pattern, Replace: replace})
	}
	return rules
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the server config values and saves to file
func (c *Config) Update(configPath string, maxLimit, minQuery, maxQuery *int) error {
	server := &c.Server
	if maxLimit != nil {
		server.MaxLimit = *maxLimit
	}
	if minQuery != nil {
		server.MinQuery = *minQuery
	}
	if maxQuery != nil {
		server.MaxQuery = *maxQuery
	}
	return SaveConfig(c, configPath)
}
