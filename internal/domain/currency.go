// Package domain defines the value types shared by the wallet engines.
package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Currency identifies one of the currencies a wallet can hold.
// The set is closed: balances are tracked per currency and never converted.
type Currency string

const (
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// ErrUnknownCurrency signals a currency outside the supported set.
var ErrUnknownCurrency = errors.New("unknown currency")

// Currencies returns the supported set in a stable order.
func Currencies() []Currency {
	return []Currency{GBP, EUR, USD}
}

// Valid reports whether the currency belongs to the supported set.
func (c Currency) Valid() bool {
	switch c {
	case GBP, EUR, USD:
		return true
	}
	return false
}

// String returns the ISO-style code.
func (c Currency) String() string {
	return string(c)
}

// ParseCurrency validates external input (config, terminal session)
// against the supported set.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if !c.Valid() {
		return "", errors.Wrap(ErrUnknownCurrency, fmt.Sprintf("%q", s))
	}
	return c, nil
}
