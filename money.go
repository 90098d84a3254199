package kennel

import (
	"github.com/Rhymond/go-money"
)

// DefaultCurrency is the display currency used when the ledger does not
// declare one.
const DefaultCurrency = "EUR"

// Money represents an amount of whole currency units in a single currency.
// Prices and balances in this ledger never carry fractional subunits, so the
// value is a plain integer; go-money is used for locale-aware display only.
type Money struct {
	value int64 // whole currency units
	cur   string
}

// M builds a Money from whole currency units.
func M(value int64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{value: value, cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() *money.Currency {
	return money.New(0, m.cur).Currency()
}

// minor returns the amount in the currency's minor units.
func (m Money) minor() int64 {
	n := m.value
	for i := 0; i < m.currency().Fraction; i++ {
		n *= 10
	}
	return n
}

// String formats the amount with the currency's grouping and symbol,
// e.g. "€1,500.00".
func (m Money) String() string {
	cur := m.currency()
	return cur.Formatter().Format(m.minor())
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value == 0 {
		return "-"
	}
	if m.value > 0 {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string  { return m.cur }
func (m Money) Units() int64      { return m.value }
func (m Money) IsZero() bool      { return m.value == 0 }
func (m Money) Add(n Money) Money { return Money{value: m.value + n.value, cur: m.cur} }
