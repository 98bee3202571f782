// Package currency formats decimal amounts for display.
package currency

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter renders amounts in a single currency.
type Formatter struct {
	cur money.Currency
}

// New returns a Formatter for an ISO 4217 currency code.
func New(code string) (Formatter, error) {
	cur := money.GetCurrency(code)
	if cur == nil {
		return Formatter{}, fmt.Errorf("unknown currency %q", code)
	}

	return Formatter{cur: *cur}, nil
}

// MustNew is like New but panics on unknown codes.
func MustNew(code string) Formatter {
	f, err := New(code)
	if err != nil {
		panic(err)
	}
	return f
}

// Code returns the ISO 4217 code of the currency.
func (f Formatter) Code() string {
	return f.cur.Code
}

// Fraction returns the number of decimal places of the minor unit.
func (f Formatter) Fraction() int32 {
	return int32(f.cur.Fraction)
}

// Round rounds an amount to the minor unit of the currency.
func (f Formatter) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(f.Fraction())
}

// Format returns the amount with currency symbol and local separators, e.g. R$1.234,56.
func (f Formatter) Format(amount decimal.Decimal) string {
	minor := f.Round(amount).Shift(f.Fraction())
	return f.cur.Formatter().Format(minor.IntPart())
}
