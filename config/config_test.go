package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriscamplejohn/walletledger/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetYaml(t *testing.T) {
	path := writeConfig(t, `
journal_dir: /tmp/wallet-journal
default_currency: EUR
opening_deposit: "250.50"
`)

	cfg, err := getYaml(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/wallet-journal", cfg.JournalDir)
	assert.Equal(t, domain.EUR, cfg.DefaultCurrency)
	assert.True(t, cfg.OpeningDeposit.Equal(decimal.RequireFromString("250.50")))
}

func TestGetYaml_Defaults(t *testing.T) {
	path := writeConfig(t, `{}`)

	cfg, err := getYaml(path)
	require.NoError(t, err)

	assert.Equal(t, "./wal/notifications", cfg.JournalDir)
	assert.Equal(t, domain.GBP, cfg.DefaultCurrency)
	assert.True(t, cfg.OpeningDeposit.IsZero())
}

func TestGetYaml_UnknownCurrency(t *testing.T) {
	path := writeConfig(t, `default_currency: DOGE`)

	_, err := getYaml(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_currency")
}

func TestGetYaml_NegativeOpeningDeposit(t *testing.T) {
	path := writeConfig(t, `opening_deposit: "-5"`)

	_, err := getYaml(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening_deposit")
}

func TestGetYaml_MalformedDeposit(t *testing.T) {
	path := writeConfig(t, `opening_deposit: "lots"`)

	_, err := getYaml(path)
	require.Error(t, err)
}
