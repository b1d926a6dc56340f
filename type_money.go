package compound

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when an investment does not name one.
const DefaultCurrency = "USD"

// presentationDigits is the number of decimals kept when a monetary value
// leaves the engine.
const presentationDigits = 2

// Money represents a monetary value, already rounded for presentation.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a float, an int or a decimal.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v, cur: currency}
	case float64:
		return Money{value: decimal.NewFromFloat(v), cur: currency}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: currency}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: currency}
	default:
		panic("unsupported type")
	}
}

// round converts an unrounded accumulator into a presentable Money.
func round(v float64, currency string) Money {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("non finite amount")
	}
	return Money{value: decimal.NewFromFloat(v).Round(presentationDigits), cur: currency}
}

// currency returns the money's currency, DefaultCurrency when it has none.
func (m Money) currency() money.Currency {
	code := m.cur
	if code == "" {
		code = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// String returns the value formatted in its currency, e.g. "$1,100.00".
// It follows the go-money formatter of the currency but works on the decimal,
// so that amounts beyond int64 minor units are not truncated.
func (m Money) String() string {
	c := m.currency()
	f := c.Formatter()
	value := m.value.Round(int32(f.Fraction))

	integer, fraction, _ := strings.Cut(value.Abs().StringFixed(int32(f.Fraction)), ".")
	if f.Thousand != "" {
		for i := len(integer) - 3; i > 0; i -= 3 {
			integer = integer[:i] + f.Thousand + integer[i:]
		}
	}
	amount := integer
	if fraction != "" {
		amount += f.Decimal + fraction
	}
	amount = strings.Replace(f.Template, "1", amount, 1)
	amount = strings.Replace(amount, "$", f.Grapheme, 1)
	if value.IsNegative() {
		amount = "-" + amount
	}
	return amount
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Float64() float64                { return m.value.InexactFloat64() }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// ratio returns 100*m/n as a Percent, zero when n is zero.
func ratio(m, n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).Shift(2).InexactFloat64())
}

// MarshalJSON writes the bare amount; the currency is carried by the
// enclosing object.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}
