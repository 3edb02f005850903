// Package notifications persists the multi-currency notification
// stream in an append-only WAL so a wallet can be rebuilt after a
// restart. The store never interprets notifications beyond encoding;
// replay semantics live in the wallet engines.
package notifications

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/gowal"

	"github.com/chriscamplejohn/walletledger/internal/domain"
	"github.com/chriscamplejohn/walletledger/internal/multiwallet"
)

const (
	defaultJournalDir = "./wal/notifications"
	segmentThreshold  = 1000
	maxSegments       = 100
	recordKeyPrefix   = "ntf_"
)

const (
	kindDeposited        = "funds_deposited"
	kindWithdrawn        = "funds_withdrawn"
	kindSpent            = "funds_spent"
	kindWithdrawalFailed = "funds_withdrawal_failed"
	kindSpendFailed      = "funds_spend_failed"
)

// ErrCorruptJournal signals a record whose kind is outside the known
// notification set. Such a record is never skipped.
var ErrCorruptJournal = errors.New("corrupt notification journal")

type record struct {
	Kind     string          `json:"kind"`
	Amount   decimal.Decimal `json:"amount"`
	Currency domain.Currency `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Reason   string          `json:"reason,omitempty"`
}

// Store is a WAL-backed notification journal.
type Store struct {
	wal *gowal.Wal
	mu  sync.Mutex
}

// NewStore opens (or creates) the journal under dir.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = defaultJournalDir
	}

	cfg := gowal.Config{
		Dir:              dir,
		Prefix:           "journal_",
		SegmentThreshold: segmentThreshold,
		MaxSegments:      maxSegments,
		IsInSyncDiskMode: true,
	}

	wal, err := gowal.NewWAL(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "init notification journal")
	}

	return &Store{wal: wal}, nil
}

// Append writes the notification at the next journal index.
func (s *Store) Append(n multiwallet.Notification) error {
	if s == nil || s.wal == nil {
		return errors.New("notification journal is not initialized")
	}

	rec, err := encode(n)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshal notification")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Write(s.wal.CurrentIndex()+1, recordKeyPrefix+uuid.NewString(), payload)
}

// Load returns every journaled notification in its original write
// order, ready to be replayed via multiwallet.NewFromHistory.
func (s *Store) Load() ([]multiwallet.Notification, error) {
	if s == nil || s.wal == nil {
		return nil, errors.New("notification journal is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.wal.CurrentIndex()
	history := make([]multiwallet.Notification, 0, current)
	for idx := uint64(1); idx <= current; idx++ {
		_, payload, err := s.wal.Get(idx)
		if err != nil {
			return nil, errors.Wrap(err, "read notification record")
		}
		if payload == nil {
			continue
		}

		var rec record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, errors.Wrap(err, "decode notification record")
		}

		n, err := decode(rec)
		if err != nil {
			return nil, err
		}
		history = append(history, n)
	}

	return history, nil
}

// Close closes the underlying WAL.
func (s *Store) Close() error {
	if s == nil || s.wal == nil {
		return errors.New("notification journal is not initialized")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.wal.Close()
}

func encode(n multiwallet.Notification) (record, error) {
	switch v := n.(type) {
	case multiwallet.FundsDeposited:
		return record{Kind: kindDeposited, Amount: v.Amount, Currency: v.CurrencyCode}, nil
	case multiwallet.FundsWithdrawn:
		return record{Kind: kindWithdrawn, Amount: v.Amount, Currency: v.CurrencyCode}, nil
	case multiwallet.FundsSpent:
		return record{Kind: kindSpent, Amount: v.Amount, Currency: v.CurrencyCode}, nil
	case multiwallet.FundsWithdrawalFailed:
		return record{Kind: kindWithdrawalFailed, Amount: v.Amount, Currency: v.CurrencyCode,
			Balance: v.Balance, Reason: v.Reason}, nil
	case multiwallet.FundsSpendFailed:
		return record{Kind: kindSpendFailed, Amount: v.Amount, Currency: v.CurrencyCode,
			Balance: v.Balance, Reason: v.Reason}, nil
	default:
		return record{}, errors.Errorf("encode notification: unhandled variant %T", n)
	}
}

func decode(rec record) (multiwallet.Notification, error) {
	switch rec.Kind {
	case kindDeposited:
		return multiwallet.FundsDeposited{Amount: rec.Amount, CurrencyCode: rec.Currency}, nil
	case kindWithdrawn:
		return multiwallet.FundsWithdrawn{Amount: rec.Amount, CurrencyCode: rec.Currency}, nil
	case kindSpent:
		return multiwallet.FundsSpent{Amount: rec.Amount, CurrencyCode: rec.Currency}, nil
	case kindWithdrawalFailed:
		return multiwallet.FundsWithdrawalFailed{Amount: rec.Amount, CurrencyCode: rec.Currency,
			Balance: rec.Balance, Reason: rec.Reason}, nil
	case kindSpendFailed:
		return multiwallet.FundsSpendFailed{Amount: rec.Amount, CurrencyCode: rec.Currency,
			Balance: rec.Balance, Reason: rec.Reason}, nil
	default:
		return nil, errors.Wrapf(ErrCorruptJournal, "unknown kind %q", rec.Kind)
	}
}
