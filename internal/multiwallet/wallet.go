package multiwallet

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/chriscamplejohn/walletledger/internal/domain"
)

// Wallet tracks one decimal balance per currency, derived solely from
// its notification history. Currencies never touch each other. Not
// safe for concurrent use; the embedding system serializes commands
// against one instance.
type Wallet struct {
	balances map[domain.Currency]decimal.Decimal
}

// New returns an empty wallet. Every currency starts at zero.
func New() *Wallet {
	return &Wallet{balances: make(map[domain.Currency]decimal.Decimal)}
}

// NewFromHistory rebuilds a wallet by replaying notifications in their
// original creation order, applying each without re-running command
// validation.
func NewFromHistory(history []Notification) *Wallet {
	w := New()
	for _, n := range history {
		w.apply(n)
	}
	return w
}

// Balance returns the balance for the given currency. A currency
// never touched by a notification reads as zero.
func (w *Wallet) Balance(currency domain.Currency) decimal.Decimal {
	b, ok := w.balances[currency]
	if !ok {
		return decimal.Zero
	}
	return b
}

// Balances returns a copy of all non-zero-initialized balances, for
// display layers. Mutating the copy does not touch the wallet.
func (w *Wallet) Balances() map[domain.Currency]decimal.Decimal {
	out := make(map[domain.Currency]decimal.Decimal, len(w.balances))
	for c, b := range w.balances {
		out[c] = b
	}
	return out
}

// DepositFunds increases the balance of the given currency by amount.
func (w *Wallet) DepositFunds(amount decimal.Decimal, currency domain.Currency) (Notification, error) {
	if err := checkCommand(amount, currency); err != nil {
		return nil, err
	}

	n := FundsDeposited{Amount: amount, CurrencyCode: currency}
	w.apply(n)
	return n, nil
}

// WithdrawFunds decreases the balance of the given currency by amount,
// or refuses with a FundsWithdrawalFailed notification when the
// currency's balance is below amount.
func (w *Wallet) WithdrawFunds(amount decimal.Decimal, currency domain.Currency) (Notification, error) {
	if err := checkCommand(amount, currency); err != nil {
		return nil, err
	}

	if w.Balance(currency).LessThan(amount) {
		n := FundsWithdrawalFailed{
			Amount:       amount,
			CurrencyCode: currency,
			Balance:      w.Balance(currency),
			Reason:       domain.ReasonInsufficientFundsWithdrawal,
		}
		w.apply(n)
		return n, nil
	}

	n := FundsWithdrawn{Amount: amount, CurrencyCode: currency}
	w.apply(n)
	return n, nil
}

// SpendFunds mirrors WithdrawFunds with its own notification stream.
func (w *Wallet) SpendFunds(amount decimal.Decimal, currency domain.Currency) (Notification, error) {
	if err := checkCommand(amount, currency); err != nil {
		return nil, err
	}

	if w.Balance(currency).LessThan(amount) {
		n := FundsSpendFailed{
			Amount:       amount,
			CurrencyCode: currency,
			Balance:      w.Balance(currency),
			Reason:       domain.ReasonInsufficientFundsSpend,
		}
		w.apply(n)
		return n, nil
	}

	n := FundsSpent{Amount: amount, CurrencyCode: currency}
	w.apply(n)
	return n, nil
}

func checkCommand(amount decimal.Decimal, currency domain.Currency) error {
	if err := domain.CheckAmount(amount); err != nil {
		return err
	}
	if !currency.Valid() {
		return domain.ErrUnknownCurrency
	}
	return nil
}

// apply is the one state transition used for both live commands and
// replay, exhaustive over the sealed variant set.
func (w *Wallet) apply(n Notification) {
	switch v := n.(type) {
	case FundsDeposited:
		w.balances[v.CurrencyCode] = w.Balance(v.CurrencyCode).Add(v.Amount)
	case FundsWithdrawn:
		w.balances[v.CurrencyCode] = w.Balance(v.CurrencyCode).Sub(v.Amount)
	case FundsSpent:
		w.balances[v.CurrencyCode] = w.Balance(v.CurrencyCode).Sub(v.Amount)
	case FundsWithdrawalFailed, FundsSpendFailed:
		// refusals are recorded but change nothing
	default:
		panic(fmt.Sprintf("multiwallet: unhandled notification %T", n))
	}
}
