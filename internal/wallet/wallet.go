package wallet

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/chriscamplejohn/walletledger/internal/domain"
)

// Wallet tracks a single decimal balance derived from its notification
// history. It is a pure in-memory projection: it has no identity and
// no persistence of its own, and it is not safe for concurrent use —
// an embedding system must serialize commands against one instance.
type Wallet struct {
	balance decimal.Decimal
}

// New returns an empty wallet with a zero balance.
func New() *Wallet {
	return &Wallet{balance: decimal.Zero}
}

// NewFromHistory rebuilds a wallet by replaying notifications in their
// original creation order. Replay trusts the history: it applies each
// notification without re-running command validation.
func NewFromHistory(history []Notification) *Wallet {
	w := New()
	for _, n := range history {
		w.apply(n)
	}
	return w
}

// Balance returns the current balance.
func (w *Wallet) Balance() decimal.Decimal {
	return w.balance
}

// DepositFunds increases the balance by amount. A non-positive amount
// is a caller-contract violation and leaves the wallet untouched.
func (w *Wallet) DepositFunds(amount decimal.Decimal) (Notification, error) {
	if err := domain.CheckAmount(amount); err != nil {
		return nil, err
	}

	n := FundsDeposited{Amount: amount}
	w.apply(n)
	return n, nil
}

// WithdrawFunds decreases the balance by amount. If the balance is
// insufficient the command is refused: a FundsWithdrawalFailed
// notification is returned and the balance stays unchanged.
func (w *Wallet) WithdrawFunds(amount decimal.Decimal) (Notification, error) {
	if err := domain.CheckAmount(amount); err != nil {
		return nil, err
	}

	if w.balance.LessThan(amount) {
		n := FundsWithdrawalFailed{
			Amount:  amount,
			Balance: w.balance,
			Reason:  domain.ReasonInsufficientFundsWithdrawal,
		}
		w.apply(n)
		return n, nil
	}

	n := FundsWithdrawn{Amount: amount}
	w.apply(n)
	return n, nil
}

// SpendFunds is the purchase counterpart of WithdrawFunds: the same
// decision rule and balance effect, surfaced as its own notification
// stream.
func (w *Wallet) SpendFunds(amount decimal.Decimal) (Notification, error) {
	if err := domain.CheckAmount(amount); err != nil {
		return nil, err
	}

	if w.balance.LessThan(amount) {
		n := FundsSpendFailed{
			Amount:  amount,
			Balance: w.balance,
			Reason:  domain.ReasonInsufficientFundsSpend,
		}
		w.apply(n)
		return n, nil
	}

	n := FundsSpent{Amount: amount}
	w.apply(n)
	return n, nil
}

// apply is the one state transition used for both live commands and
// replay. The switch is exhaustive over the sealed variant set; a
// notification outside it is a defect and fails loudly.
func (w *Wallet) apply(n Notification) {
	switch v := n.(type) {
	case FundsDeposited:
		w.balance = w.balance.Add(v.Amount)
	case FundsWithdrawn:
		w.balance = w.balance.Sub(v.Amount)
	case FundsSpent:
		w.balance = w.balance.Sub(v.Amount)
	case FundsWithdrawalFailed, FundsSpendFailed:
		// refusals are recorded but change nothing
	default:
		panic(fmt.Sprintf("wallet: unhandled notification %T", n))
	}
}
