package domain

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrNonPositiveAmount signals a caller-contract violation: every
// command requires a strictly positive amount. It is never part of the
// notification stream.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// Refusal reasons attached to failed withdrawal/spend notifications.
const (
	ReasonInsufficientFundsWithdrawal = "There are insufficient funds for the withdrawal"
	ReasonInsufficientFundsSpend      = "There are insufficient funds for the spend"
)

// CheckAmount enforces the positive-amount contract shared by all
// wallet commands.
func CheckAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.Wrap(ErrNonPositiveAmount, amount.String())
	}
	return nil
}
