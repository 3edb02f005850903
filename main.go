// Command walletledger runs an interactive event-sourced wallet
// session. Balances live only in a replayed projection of the
// notification journal; the journal is the single source of truth.
//
// Usage:
//
//	walletledger --config config.yaml
//	walletledger (uses CLI arguments)
package main

import (
	"go.uber.org/zap"

	"github.com/chriscamplejohn/walletledger/config"
	"github.com/chriscamplejohn/walletledger/internal/events"
	"github.com/chriscamplejohn/walletledger/internal/ledger"
	"github.com/chriscamplejohn/walletledger/internal/setup"
	"github.com/chriscamplejohn/walletledger/internal/storage/notifications"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Get()
	if err != nil {
		logger.Fatal("failed to get configuration", zap.Error(err))
	}

	journal, err := notifications.NewStore(cfg.JournalDir)
	if err != nil {
		logger.Fatal("failed to open notification journal", zap.Error(err))
	}
	defer journal.Close()

	bus := events.NewBroadcaster(256)

	l, err := ledger.New(journal, bus, logger)
	if err != nil {
		logger.Fatal("failed to restore ledger", zap.Error(err))
	}

	if cfg.OpeningDeposit.IsPositive() && l.Balance(cfg.DefaultCurrency).IsZero() {
		if _, err := l.Deposit(cfg.OpeningDeposit, cfg.DefaultCurrency); err != nil {
			logger.Fatal("failed to make opening deposit", zap.Error(err))
		}
	}

	if err := setup.RunSession(l, cfg.DefaultCurrency); err != nil {
		logger.Fatal("wallet session failed", zap.Error(err))
	}
}
