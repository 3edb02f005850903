// Package config loads wallet session settings from a YAML file or
// from command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/chriscamplejohn/walletledger/internal/domain"
)

// Config holds validated session settings.
type Config struct {
	// JournalDir is where the notification WAL lives.
	JournalDir string
	// DefaultCurrency preselects the currency in the terminal session.
	DefaultCurrency domain.Currency
	// OpeningDeposit, when positive, is deposited into a freshly
	// created (empty-journal) wallet at startup.
	OpeningDeposit decimal.Decimal
}

type configTmp struct {
	JournalDir      string `yaml:"journal_dir"`
	DefaultCurrency string `yaml:"default_currency"`
	OpeningDeposit  string `yaml:"opening_deposit,omitempty"`
}

// Get reads the --config YAML file when provided, falling back to
// individual flags otherwise.
func Get() (Config, error) {
	configPath := flag.String("config", "", "path to yaml config")
	journalDir := flag.String("journaldir", "./wal/notifications", "notification journal directory")
	currency := flag.String("currency", string(domain.GBP), "default currency, example: GBP")
	opening := flag.String("openingdeposit", "0", "deposit made into a brand-new wallet")
	flag.Parse()

	if *configPath != "" {
		return getYaml(*configPath)
	}

	return fromTmp(configTmp{
		JournalDir:      *journalDir,
		DefaultCurrency: *currency,
		OpeningDeposit:  *opening,
	})
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var tmp configTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, err
	}

	return fromTmp(tmp)
}

func fromTmp(tmp configTmp) (Config, error) {
	cfg := Config{JournalDir: tmp.JournalDir}
	if cfg.JournalDir == "" {
		cfg.JournalDir = "./wal/notifications"
	}

	if tmp.DefaultCurrency == "" {
		cfg.DefaultCurrency = domain.GBP
	} else {
		cur, err := domain.ParseCurrency(tmp.DefaultCurrency)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect 'default_currency' param: %s, error: %w", tmp.DefaultCurrency, err)
		}
		cfg.DefaultCurrency = cur
	}

	if tmp.OpeningDeposit == "" {
		cfg.OpeningDeposit = decimal.Zero
	} else {
		opening, err := decimal.NewFromString(tmp.OpeningDeposit)
		if err != nil {
			return Config{}, fmt.Errorf("incorrect 'opening_deposit' param (must be a decimal), error: %w", err)
		}
		if opening.IsNegative() {
			return Config{}, fmt.Errorf("incorrect 'opening_deposit' param, must not be negative: %s", tmp.OpeningDeposit)
		}
		cfg.OpeningDeposit = opening
	}

	return cfg, nil
}
