package multiwallet

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriscamplejohn/walletledger/internal/domain"
)

func TestDeposits_CurrenciesAreIsolated(t *testing.T) {
	w := New()

	_, err := w.DepositFunds(decimal.RequireFromString("18.5"), domain.GBP)
	require.NoError(t, err)
	_, err = w.DepositFunds(decimal.RequireFromString("7.1"), domain.EUR)
	require.NoError(t, err)

	assert.True(t, w.Balance(domain.GBP).Equal(decimal.RequireFromString("18.5")))
	assert.True(t, w.Balance(domain.EUR).Equal(decimal.RequireFromString("7.1")))
	assert.True(t, w.Balance(domain.USD).Equal(decimal.Zero), "untouched currency reads as zero")
}

func TestSpend_NotificationCarriesCurrency(t *testing.T) {
	w := New()

	_, err := w.DepositFunds(decimal.NewFromInt(100), domain.EUR)
	require.NoError(t, err)

	n, err := w.SpendFunds(decimal.RequireFromString("4.99"), domain.EUR)
	require.NoError(t, err)

	spent, ok := n.(FundsSpent)
	require.True(t, ok, "expected FundsSpent, got %T", n)
	assert.Equal(t, domain.EUR, spent.CurrencyCode)
	assert.True(t, spent.Amount.Equal(decimal.RequireFromString("4.99")))
	assert.True(t, w.Balance(domain.EUR).Equal(decimal.RequireFromString("95.01")))
}

func TestWithdraw_RefusalChecksOnlyItsOwnCurrency(t *testing.T) {
	w := New()

	// plenty of GBP must not cover an EUR withdrawal
	_, err := w.DepositFunds(decimal.NewFromInt(1000), domain.GBP)
	require.NoError(t, err)

	n, err := w.WithdrawFunds(decimal.NewFromInt(1), domain.EUR)
	require.NoError(t, err)

	refused, ok := n.(FundsWithdrawalFailed)
	require.True(t, ok, "expected FundsWithdrawalFailed, got %T", n)
	assert.Equal(t, domain.EUR, refused.CurrencyCode)
	assert.True(t, refused.Balance.Equal(decimal.Zero), "refusal carries the EUR balance, not GBP")
	assert.Equal(t, domain.ReasonInsufficientFundsWithdrawal, refused.Reason)

	assert.True(t, w.Balance(domain.GBP).Equal(decimal.NewFromInt(1000)))
	assert.True(t, w.Balance(domain.EUR).Equal(decimal.Zero))
}

func TestSpend_RefusedOnEmptyWallet(t *testing.T) {
	w := New()

	n, err := w.SpendFunds(decimal.NewFromInt(100), domain.GBP)
	require.NoError(t, err)

	refused, ok := n.(FundsSpendFailed)
	require.True(t, ok, "expected FundsSpendFailed, got %T", n)
	assert.True(t, refused.Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, refused.Balance.Equal(decimal.Zero))
	assert.Equal(t, domain.GBP, refused.CurrencyCode)
	assert.True(t, w.Balance(domain.GBP).Equal(decimal.Zero))
}

func TestCommands_RejectContractViolations(t *testing.T) {
	w := New()

	_, err := w.DepositFunds(decimal.Zero, domain.GBP)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNonPositiveAmount))

	_, err = w.WithdrawFunds(decimal.NewFromInt(-1), domain.GBP)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNonPositiveAmount))

	_, err = w.SpendFunds(decimal.NewFromInt(1), domain.Currency("BTC"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownCurrency))

	assert.Empty(t, w.Balances(), "violations must not touch state")
}

func TestReplay_RebuildsPerCurrencyBalances(t *testing.T) {
	history := []Notification{
		FundsDeposited{Amount: decimal.NewFromInt(10), CurrencyCode: domain.GBP},
		FundsDeposited{Amount: decimal.NewFromInt(20), CurrencyCode: domain.EUR},
		FundsWithdrawn{Amount: decimal.NewFromInt(5), CurrencyCode: domain.GBP},
		FundsSpent{Amount: decimal.RequireFromString("2.5"), CurrencyCode: domain.GBP},
		FundsSpendFailed{
			Amount:       decimal.NewFromInt(500),
			CurrencyCode: domain.EUR,
			Balance:      decimal.NewFromInt(20),
			Reason:       domain.ReasonInsufficientFundsSpend,
		},
	}

	w := NewFromHistory(history)

	assert.True(t, w.Balance(domain.GBP).Equal(decimal.RequireFromString("2.5")))
	assert.True(t, w.Balance(domain.EUR).Equal(decimal.NewFromInt(20)))
	assert.True(t, w.Balance(domain.USD).Equal(decimal.Zero))
}

func TestBalances_ReturnsACopy(t *testing.T) {
	w := New()

	_, err := w.DepositFunds(decimal.NewFromInt(10), domain.GBP)
	require.NoError(t, err)

	snapshot := w.Balances()
	snapshot[domain.GBP] = decimal.NewFromInt(999)

	assert.True(t, w.Balance(domain.GBP).Equal(decimal.NewFromInt(10)), "mutating the snapshot must not touch the wallet")
}

func TestReplay_UnknownNotificationPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewFromHistory([]Notification{nil})
	})
}
