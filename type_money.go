package budget

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultCurrency is the currency used to display amounts when none is configured.
const DefaultCurrency = "INR"

// Money represents a monetary value in the user's single currency.
//
// The arithmetic is exact; conversion to a float only ever happens for display.
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	}
	panic("unreachable")
}

// Zero is the zero amount.
var Zero = Money{}

// ParseMoney parses a decimal amount like "12.50". Surrounding spaces are ignored.
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: v}, nil
}

func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) Cmp(n Money) int    { return m.value.Cmp(n.value) }
func (m Money) Neg() Money         { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value)} }

// Decimal returns the underlying exact value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Float returns an approximation of the amount, for spreadsheets and charts only.
func (m Money) Float() float64     { return m.value.InexactFloat64() }

// String returns the amount with two decimals and no currency symbol, e.g. "-40.00".
func (m Money) String() string     { return m.value.StringFixed(2) }

// Format returns the amount formatted for the given currency code, e.g. "₹1,234.50".
// Unknown codes fall back to the plain String representation.
func (m Money) Format(code string) string {
	if money.GetCurrency(code) == nil {
		return m.String()
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, code).Currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedFormat is like Format with an explicit "+" for positive amounts.
func (m Money) SignedFormat(code string) string {
	if m.value.IsPositive() {
		return "+" + m.Format(code)
	}
	return m.Format(code)
}

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON accepts both JSON numbers and quoted decimals.
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }

// Sum adds up amounts.
func Sum(amounts ...Money) Money {
	total := Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
