package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// nullTokens are textual renderings of missing values produced by
// spreadsheet exports and dataframe tooling.
var nullTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"None": {},
	"NaT":  {},
	"<NA>": {},
}

// IsNullish reports whether a cell value denotes a missing value.
func IsNullish(v string) bool {
	_, ok := nullTokens[strings.TrimSpace(v)]
	return ok
}

// Null returns an empty string for null-ish values and v otherwise.
func Null(v string) string {
	if IsNullish(v) {
		return ""
	}
	return v
}

// MaxExponent bounds the decimal exponent of values treated as numbers.
// Rendering 1e100000000 would build every digit, so such cells are kept
// as text.
const MaxExponent = 30

// ParseDecimal parses v as a number with an optional decimal comma. It
// fails for values whose exponent is outside ±MaxExponent.
func ParseDecimal(v string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if exp := d.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Numeric canonicalizes a numeric-looking value. A decimal comma is
// accepted. Integral numbers are rendered without a fractional part,
// fractional numbers without trailing zeros. Values that do not parse as
// numbers, or whose exponent is out of range, are returned unchanged;
// null-ish values become "".
//
//	"00123"  -> "123"
//	"12,50"  -> "12.5"
//	"7.0"    -> "7"
//	"ABC-1"  -> "ABC-1"
func Numeric(v string) string {
	if IsNullish(v) {
		return ""
	}
	d, ok := ParseDecimal(v)
	if !ok {
		return v
	}
	if d.IsInteger() {
		return d.Truncate(0).String()
	}
	return d.String()
}

// NumericSeries applies Numeric to every value and returns a new slice.
func NumericSeries(values []string) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = Numeric(v)
	}
	return res
}

// StripLeadingZeros removes leading '0' characters. A value made only of
// zeros becomes "0". It is a field-specific fix for absence class codes
// exported with zero padding, not a general numeric rule.
func StripLeadingZeros(v string) string {
	res := strings.TrimLeft(v, "0")
	if res == "" {
		return "0"
	}
	return res
}

// StripTrailingZeroOnce drops exactly one trailing '0' from values longer
// than one character. Store codes in the store reference carry one
// spurious suffix digit; this is not decimal rounding.
//
//	"12340" -> "1234"
//	"12300" -> "1230"
//	"0"     -> "0"
func StripTrailingZeroOnce(v string) string {
	if len(v) > 1 && strings.HasSuffix(v, "0") {
		return v[:len(v)-1]
	}
	return v
}

// JoinKey prepares a cost-center value for equality matching: spaces
// are trimmed, one trailing ".0" and all commas are removed, and an
// empty or null-ish value becomes "0".
func JoinKey(v string) string {
	s := strings.TrimSpace(v)
	s = strings.TrimSuffix(s, ".0")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if IsNullish(s) {
		return "0"
	}
	return s
}
