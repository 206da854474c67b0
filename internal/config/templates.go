package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Growth Calculator Configuration

[plan]
# Defaults used when no plan has been saved yet, and by 'reset'.
initial_balance = 10000.0
# Profit target; 0 means 8% above the initial balance.
profit_target = 0.0
# Default risk per trade as a percentage of balance.
default_risk_percent = 1.0
# Default reward-to-risk multiplier for winning trades.
default_win_multiplier = 2.0

[ui]
# Enable colored output
color_enabled = true
# Currency symbol used in tables
currency_symbol = "$"
# Date format
date_format = "02-Jan-2006"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Echo logs to the terminal
console = false
# Write logs to a rotated file under the config directory
file = true
max_size_mb = 10
max_backups = 3
max_age_days = 30
`

// createTemplateConfig writes a commented config template to the config
// directory so a first run leaves an editable file behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
