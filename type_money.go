package supportbank

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is the currency used to render amounts in reports.
// Stored amounts are bare decimals; the currency is a presentation detail.
const displayCurrency = "GBP"

// Money represents an exact monetary value.
//
// It wraps a decimal so that arithmetic never loses precision the way
// binary floats do. The zero value is zero money.
type Money struct {
	value decimal.Decimal
}

// ParseMoney parses a decimal numeral, optionally signed and with an
// optional fractional part, into a Money. It returns an error wrapping
// [ErrInvalidAmount] if text is not a well-formed decimal numeral.
func ParseMoney(text string) (Money, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return Money{value: d}, nil
}

// MoneyFromFloat converts a binary float into a Money through its shortest
// decimal text representation, so callers never embed binary representation
// error into the ledger.
func MoneyFromFloat(f float64) (Money, error) {
	return ParseMoney(strconv.FormatFloat(f, 'f', -1, 64))
}

// binary operators.

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

func (m Money) Neg() Money         { return Money{value: m.value.Neg()} }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }

// Cmp compares m and n and returns -1, 0 or +1.
func (m Money) Cmp(n Money) int { return m.value.Cmp(n.value) }

// currency returns the display currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency, go through the money.Money constructor
	return *money.New(0, displayCurrency).Currency()
}

// String returns the display representation: currency symbol followed by
// the value rounded to the currency's fraction digits.
func (m Money) String() string {
	cur := m.currency()
	units := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(units.IntPart())
}

// DecimalString returns the plain decimal text used by the tabular wire
// format: no currency symbol, no thousands separator.
func (m Money) DecimalString() string { return m.value.String() }
