package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyBHD Currency = "BHD"
)

func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyBHD
}

// Money is a currency-tagged amount. Values are immutable: every operation
// returns a new Money and never mutates the receiver. Arithmetic between two
// Money values requires equal currencies.
type Money struct {
	Amount   decimal.Decimal `json:"amount" gorm:"type:decimal(12,3)"`
	Currency Currency        `json:"currency" gorm:"type:varchar(3)"`
}

func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if !currency.Valid() {
		return Money{}, fmt.Errorf("%w: unknown currency %q", ErrValidation, currency)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// ZeroMoney is the additive identity for the given currency.
func ZeroMoney(currency Currency) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrCurrencyMismatch, m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// MulQty scales the amount by an item quantity.
func (m Money) MulQty(qty int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(qty))), Currency: m.Currency}
}

func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}
