package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Money Flow Bank", cfg.BankName)
	assert.Equal(t, "R", cfg.CurrencySymbol)
	assert.Equal(t, 0.005, cfg.InterestRate)
	assert.True(t, cfg.SeedDemoAccounts)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BANK_NAME", "Test Bank")
	t.Setenv("CURRENCY_SYMBOL", "$")
	t.Setenv("INTEREST_RATE", "0.01")
	t.Setenv("SEED_DEMO_ACCOUNTS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Test Bank", cfg.BankName)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, 0.01, cfg.InterestRate)
	assert.False(t, cfg.SeedDemoAccounts)
}
