// Package config provides configuration management for the growth calculator.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Plan    PlanConfig    `mapstructure:"plan"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PlanConfig holds the plan defaults applied when the store is empty or the
// ledger is reset without keeping its plan.
type PlanConfig struct {
	InitialBalance    float64 `mapstructure:"initial_balance"`
	ProfitTarget      float64 `mapstructure:"profit_target"`
	DefaultRiskPct    float64 `mapstructure:"default_risk_percent"`
	DefaultMultiplier float64 `mapstructure:"default_win_multiplier"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled   bool   `mapstructure:"color_enabled"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/growth-calculator"
	}
	return filepath.Join(home, ".config", "growth-calculator")
}

// DBPath returns the path of the ledger database inside the config directory.
func DBPath(configDir string) string {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	return filepath.Join(configDir, "ledger.db")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		// First run: write a template so the user has something to edit.
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("creating config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("plan.initial_balance", 10000.0)
	v.SetDefault("plan.profit_target", 0.0)
	v.SetDefault("plan.default_risk_percent", 1.0)
	v.SetDefault("plan.default_win_multiplier", 2.0)

	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.date_format", "02-Jan-2006")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", false)
	v.SetDefault("logging.file", true)
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 30)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GROWTH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.UI.ColorEnabled = false
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Plan.InitialBalance < 0 {
		return fmt.Errorf("plan.initial_balance must be non-negative")
	}
	if c.Plan.ProfitTarget < 0 {
		return fmt.Errorf("plan.profit_target must be non-negative")
	}
	if c.Plan.DefaultRiskPct < 0 || c.Plan.DefaultRiskPct > 100 {
		return fmt.Errorf("plan.default_risk_percent must be between 0 and 100")
	}
	if c.Plan.DefaultMultiplier < 0 {
		return fmt.Errorf("plan.default_win_multiplier must be non-negative")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}
	return nil
}
