// Package setup provides the interactive terminal wallet session.
package setup

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/chriscamplejohn/walletledger/internal/domain"
	"github.com/chriscamplejohn/walletledger/internal/ledger"
	"github.com/chriscamplejohn/walletledger/internal/multiwallet"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	okStyle = lipgloss.NewStyle().
		Foreground(special).
		Bold(true)

	refusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)
)

const (
	actionDeposit  = "deposit"
	actionWithdraw = "withdraw"
	actionSpend    = "spend"
	actionBalances = "balances"
	actionQuit     = "quit"
)

// RunSession drives an interactive command loop against the ledger
// until the user quits.
func RunSession(l *ledger.Ledger, defaultCurrency domain.Currency) error {
	fmt.Println(headerStyle.Render("WALLET LEDGER"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Every command becomes a notification; balances are replayed state.\n"))

	for {
		var action string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Choose a command").
					Options(
						huh.NewOption("Deposit funds", actionDeposit),
						huh.NewOption("Withdraw funds", actionWithdraw),
						huh.NewOption("Spend funds", actionSpend),
						huh.NewOption("Show balances", actionBalances),
						huh.NewOption("Quit", actionQuit),
					).
					Value(&action),
			),
		).Run()
		if err != nil {
			return err
		}

		switch action {
		case actionQuit:
			return nil
		case actionBalances:
			printBalances(l)
		default:
			if err := runCommand(l, action, defaultCurrency); err != nil {
				return err
			}
		}
	}
}

func runCommand(l *ledger.Ledger, action string, defaultCurrency domain.Currency) error {
	amountStr := ""
	currencyStr := string(defaultCurrency)

	currencyOptions := make([]huh.Option[string], 0, len(domain.Currencies()))
	for _, c := range domain.Currencies() {
		currencyOptions = append(currencyOptions, huh.NewOption(c.String(), c.String()))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Amount to %s", action)).
				Validate(validateAmount).
				Value(&amountStr),
			huh.NewSelect[string]().
				Title("Currency").
				Options(currencyOptions...).
				Value(&currencyStr),
		),
	).Run()
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return err
	}
	currency, err := domain.ParseCurrency(currencyStr)
	if err != nil {
		return err
	}

	var n multiwallet.Notification
	switch action {
	case actionDeposit:
		n, err = l.Deposit(amount, currency)
	case actionWithdraw:
		n, err = l.Withdraw(amount, currency)
	case actionSpend:
		n, err = l.Spend(amount, currency)
	}
	if err != nil {
		return err
	}

	switch n.(type) {
	case multiwallet.FundsWithdrawalFailed, multiwallet.FundsSpendFailed:
		fmt.Println(refusedStyle.Render(n.String()))
	default:
		fmt.Println(okStyle.Render(n.String()))
	}

	return nil
}

func printBalances(l *ledger.Ledger) {
	balances := l.Balances()
	for _, c := range domain.Currencies() {
		b, ok := balances[c]
		if !ok {
			// untouched currencies read as zero
			fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render(fmt.Sprintf("%s  0", c)))
			continue
		}
		fmt.Println(okStyle.Render(fmt.Sprintf("%s  %s", c, b)))
	}
}

func validateAmount(s string) error {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("not a decimal amount: %s", s)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
