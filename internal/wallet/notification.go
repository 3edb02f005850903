// Package wallet implements the single-currency event-sourced wallet.
// Every balance change is recorded as a Notification; current state is
// only ever derived by applying notifications in order.
package wallet

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Notification is an immutable record of a command outcome. It serves
// both as the command's return value and as the unit of history used
// to rebuild a wallet. The interface is sealed: the five variants
// below are the whole set.
type Notification interface {
	fmt.Stringer
	isNotification()
}

// FundsDeposited records a successful deposit.
type FundsDeposited struct {
	Amount decimal.Decimal
}

// FundsWithdrawn records a successful withdrawal.
type FundsWithdrawn struct {
	Amount decimal.Decimal
}

// FundsSpent records a successful spend. Spend and withdraw carry the
// same balance effect but are distinct streams: downstream consumers
// may treat a purchase differently from a cash-out.
type FundsSpent struct {
	Amount decimal.Decimal
}

// FundsWithdrawalFailed records a refused withdrawal. Balance is the
// wallet balance at the time of refusal, kept for diagnostics.
type FundsWithdrawalFailed struct {
	Amount  decimal.Decimal
	Balance decimal.Decimal
	Reason  string
}

// FundsSpendFailed records a refused spend.
type FundsSpendFailed struct {
	Amount  decimal.Decimal
	Balance decimal.Decimal
	Reason  string
}

func (FundsDeposited) isNotification()        {}
func (FundsWithdrawn) isNotification()        {}
func (FundsSpent) isNotification()            {}
func (FundsWithdrawalFailed) isNotification() {}
func (FundsSpendFailed) isNotification()      {}

func (n FundsDeposited) String() string {
	return fmt.Sprintf("deposited %s", n.Amount)
}

func (n FundsWithdrawn) String() string {
	return fmt.Sprintf("withdrew %s", n.Amount)
}

func (n FundsSpent) String() string {
	return fmt.Sprintf("spent %s", n.Amount)
}

func (n FundsWithdrawalFailed) String() string {
	return fmt.Sprintf("withdrawal of %s refused at balance %s: %s", n.Amount, n.Balance, n.Reason)
}

func (n FundsSpendFailed) String() string {
	return fmt.Sprintf("spend of %s refused at balance %s: %s", n.Amount, n.Balance, n.Reason)
}
