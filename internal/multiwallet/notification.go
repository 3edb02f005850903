// Package multiwallet implements the multi-currency event-sourced
// wallet: one balance per currency, currencies tracked independently
// and never converted. It is the superset of the single-currency
// engine in internal/wallet, with the currency threaded through every
// command and notification.
package multiwallet

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/chriscamplejohn/walletledger/internal/domain"
)

// Notification is an immutable record of a command outcome, sealed
// over the five variants below. It doubles as the unit of persisted
// history: a wallet is rebuilt by replaying notifications in order.
type Notification interface {
	fmt.Stringer
	isNotification()
}

// FundsDeposited records a successful deposit of Amount in CurrencyCode.
type FundsDeposited struct {
	Amount       decimal.Decimal
	CurrencyCode domain.Currency
}

// FundsWithdrawn records a successful withdrawal.
type FundsWithdrawn struct {
	Amount       decimal.Decimal
	CurrencyCode domain.Currency
}

// FundsSpent records a successful spend.
type FundsSpent struct {
	Amount       decimal.Decimal
	CurrencyCode domain.Currency
}

// FundsWithdrawalFailed records a refused withdrawal. Balance holds
// the per-currency balance at the time of refusal.
type FundsWithdrawalFailed struct {
	Amount       decimal.Decimal
	CurrencyCode domain.Currency
	Balance      decimal.Decimal
	Reason       string
}

// FundsSpendFailed records a refused spend.
type FundsSpendFailed struct {
	Amount       decimal.Decimal
	CurrencyCode domain.Currency
	Balance      decimal.Decimal
	Reason       string
}

func (FundsDeposited) isNotification()        {}
func (FundsWithdrawn) isNotification()        {}
func (FundsSpent) isNotification()            {}
func (FundsWithdrawalFailed) isNotification() {}
func (FundsSpendFailed) isNotification()      {}

func (n FundsDeposited) String() string {
	return fmt.Sprintf("deposited %s %s", n.Amount, n.CurrencyCode)
}

func (n FundsWithdrawn) String() string {
	return fmt.Sprintf("withdrew %s %s", n.Amount, n.CurrencyCode)
}

func (n FundsSpent) String() string {
	return fmt.Sprintf("spent %s %s", n.Amount, n.CurrencyCode)
}

func (n FundsWithdrawalFailed) String() string {
	return fmt.Sprintf("withdrawal of %s %s refused at balance %s: %s",
		n.Amount, n.CurrencyCode, n.Balance, n.Reason)
}

func (n FundsSpendFailed) String() string {
	return fmt.Sprintf("spend of %s %s refused at balance %s: %s",
		n.Amount, n.CurrencyCode, n.Balance, n.Reason)
}
