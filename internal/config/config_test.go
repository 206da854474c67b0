package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesTemplateAndDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	// First run leaves an editable template behind.
	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	assert.NoError(t, err)

	assert.Equal(t, 10000.0, cfg.Plan.InitialBalance)
	assert.Equal(t, 1.0, cfg.Plan.DefaultRiskPct)
	assert.Equal(t, 2.0, cfg.Plan.DefaultMultiplier)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "$", cfg.UI.CurrencySymbol)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[plan]
initial_balance = 5000.0
default_risk_percent = 0.5

[ui]
currency_symbol = "€"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, cfg.Plan.InitialBalance)
	assert.Equal(t, 0.5, cfg.Plan.DefaultRiskPct)
	assert.Equal(t, "€", cfg.UI.CurrencySymbol)
	// Unset values keep their defaults.
	assert.Equal(t, 2.0, cfg.Plan.DefaultMultiplier)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	content := `
[plan]
default_risk_percent = 250.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Logging.Level = "info"
	assert.NoError(t, cfg.Validate())

	cfg.Plan.InitialBalance = -1
	assert.Error(t, cfg.Validate())

	cfg.Plan.InitialBalance = 0
	cfg.Logging.Level = "loud"
	assert.Error(t, cfg.Validate())
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GROWTH_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestDBPath(t *testing.T) {
	assert.Equal(t, filepath.Join("x", "ledger.db"), DBPath("x"))
	assert.NotEmpty(t, DBPath(""))
}
