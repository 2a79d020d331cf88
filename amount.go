package moneytracker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// cents is the precision amounts are kept at.
const cents = 2

// Amounts have at most maxDigits integer digits and maxFraction fraction
// digits.
const (
	maxDigits   = 15
	maxFraction = 10
)

// amountPattern is a plain decimal number, once separators are normalized.
var amountPattern = regexp.MustCompile(`^[+-]?(\d{1,15}(\.\d{1,10})?|\.\d{1,10})$`)

// DefaultCurrency is the currency amounts are displayed in when none is
// configured.
const DefaultCurrency = "SEK"

// ParseAmount parses a signed amount typed by a user.
//
// It accepts an optional sign, '.' or ',' as decimal separator (',' is a
// thousands separator when both are present) and rounds to cents.
// Exponents and amounts beyond 15 integer digits are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	str := strings.TrimSpace(s)
	if str == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrInvalidInput)
	}
	if strings.Contains(str, ".") {
		str = strings.ReplaceAll(str, ",", "")
	} else {
		str = strings.ReplaceAll(str, ",", ".")
	}
	if !amountPattern.MatchString(str) {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, s)
	}
	str = strings.TrimPrefix(str, "+")
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, s)
	}
	return d.Round(cents), nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// currency returns the go-money currency for a code, never nil.
func currency(code string) money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// KnownCurrency reports whether code is an ISO currency known to the formatter.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// inRange reports whether d fits the amount limits, without expanding its
// exponent.
func inRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	return exp >= -maxFraction && int64(d.NumDigits())+exp <= maxDigits
}

// FormatAmount formats the magnitude of d in the given currency, using its
// symbol, separators and number of fraction digits.
//
// The digits come from the decimal itself, only the layout comes from the
// currency formatter, so any amount is formatted exactly.
func FormatAmount(d decimal.Decimal, code string) string {
	f := currency(strings.ToUpper(code)).Formatter()
	whole, fraction, _ := strings.Cut(d.Abs().StringFixed(int32(f.Fraction)), ".")
	if f.Thousand != "" {
		for i := len(whole) - 3; i > 0; i -= 3 {
			whole = whole[:i] + f.Thousand + whole[i:]
		}
	}
	if fraction != "" {
		whole += f.Decimal + fraction
	}
	s := strings.Replace(f.Template, "1", whole, 1)
	return strings.Replace(s, "$", f.Grapheme, 1)
}

// FormatBalance formats a signed amount, with a leading '-' in front of the
// currency symbol when negative.
func FormatBalance(d decimal.Decimal, code string) string {
	fraction := int32(currency(strings.ToUpper(code)).Fraction)
	s := FormatAmount(d, code)
	if d.Round(fraction).IsNegative() {
		return "-" + s
	}
	return s
}

// FormatSigned formats the item amount with a leading '-' for expenses.
func (i Item) FormatSigned(code string) string { return FormatBalance(i.Signed(), code) }
