// Package ledger embeds the multi-currency wallet engine behind a
// serialized command surface: every accepted command is journaled and
// broadcast, and the wallet is rebuilt from the journal on startup.
package ledger

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chriscamplejohn/walletledger/internal/domain"
	"github.com/chriscamplejohn/walletledger/internal/events"
	"github.com/chriscamplejohn/walletledger/internal/multiwallet"
)

// Journal persists the notification stream in creation order.
type Journal interface {
	Append(n multiwallet.Notification) error
	Load() ([]multiwallet.Notification, error)
}

// Ledger owns a single wallet instance and processes one command at a
// time against it. The wallet only ever reflects journaled history: a
// notification that cannot be persisted is rolled back by replay.
type Ledger struct {
	mu      sync.Mutex
	wallet  *multiwallet.Wallet
	history []multiwallet.Notification
	journal Journal
	bus     *events.Broadcaster
	logger  *zap.Logger
}

// New loads the journal's history and rebuilds the wallet from it.
func New(journal Journal, bus *events.Broadcaster, logger *zap.Logger) (*Ledger, error) {
	if journal == nil {
		return nil, errors.New("journal is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if bus == nil {
		bus = events.NewBroadcaster(64)
	}

	history, err := journal.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load notification history")
	}

	logger.Info("ledger restored", zap.Int("notifications", len(history)))

	return &Ledger{
		wallet:  multiwallet.NewFromHistory(history),
		history: history,
		journal: journal,
		bus:     bus,
		logger:  logger,
	}, nil
}

// Deposit credits the currency and journals the resulting notification.
func (l *Ledger) Deposit(amount decimal.Decimal, currency domain.Currency) (multiwallet.Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.commit("deposit", func() (multiwallet.Notification, error) {
		return l.wallet.DepositFunds(amount, currency)
	})
}

// Withdraw debits the currency, or journals a refusal when funds are
// insufficient.
func (l *Ledger) Withdraw(amount decimal.Decimal, currency domain.Currency) (multiwallet.Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.commit("withdraw", func() (multiwallet.Notification, error) {
		return l.wallet.WithdrawFunds(amount, currency)
	})
}

// Spend debits the currency as a purchase, or journals a refusal.
func (l *Ledger) Spend(amount decimal.Decimal, currency domain.Currency) (multiwallet.Notification, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.commit("spend", func() (multiwallet.Notification, error) {
		return l.wallet.SpendFunds(amount, currency)
	})
}

// Balance returns the current balance for the currency.
func (l *Ledger) Balance(currency domain.Currency) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.wallet.Balance(currency)
}

// Balances returns a snapshot of all tracked balances.
func (l *Ledger) Balances() map[domain.Currency]decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.wallet.Balances()
}

// commit runs a command against the wallet, persists the notification,
// then publishes it. The engine mutates before the append; if the
// append fails the in-memory wallet is rebuilt from journaled history
// so it never runs ahead of the journal.
func (l *Ledger) commit(op string, cmd func() (multiwallet.Notification, error)) (multiwallet.Notification, error) {
	n, err := cmd()
	if err != nil {
		l.logger.Warn("command rejected", zap.String("op", op), zap.Error(err))
		return nil, err
	}

	if err := l.journal.Append(n); err != nil {
		l.wallet = multiwallet.NewFromHistory(l.history)
		return nil, errors.Wrapf(err, "journal %s notification", op)
	}

	l.history = append(l.history, n)
	l.bus.Publish(n)
	l.logger.Info("notification committed", zap.String("op", op), zap.String("notification", n.String()))

	return n, nil
}
