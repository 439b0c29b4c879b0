package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// ParseCurrency normalizes code and checks it against the ISO 4217 table.
func ParseCurrency(code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 3 {
		return "", fmt.Errorf("%w: currency must be a 3 letter ISO code", ErrInvalidRequest)
	}

	unit, err := currency.ParseISO(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: unknown currency %q", ErrInvalidRequest, normalized)
	}

	return Currency(unit.String()), nil
}

// Money is an exact decimal amount tagged with a currency. Arithmetic across
// currencies fails with ErrCurrencyMismatch.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

func NewMoney(amount decimal.Decimal, ccy Currency) Money {
	return Money{
		Amount:   amount,
		Currency: ccy,
	}
}

func ZeroMoney(ccy Currency) Money {
	return NewMoney(decimal.Zero, ccy)
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", ErrCurrencyMismatch, other.Currency, m.Currency)
	}
	return NewMoney(m.Amount.Add(other.Amount), m.Currency), nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: cannot subtract %s from %s", ErrCurrencyMismatch, other.Currency, m.Currency)
	}
	return NewMoney(m.Amount.Sub(other.Amount), m.Currency), nil
}

// LessThan compares amounts only; callers check currencies first.
func (m Money) LessThan(other Money) bool {
	return m.Amount.LessThan(other.Amount)
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) String() string {
	return m.Currency.String() + " " + m.Amount.String()
}

func (c Currency) String() string {
	return string(c)
}
