package normalize_test

import (
	"testing"

	"github.com/Jeysshonb/Validador-nomina/pkg/normalize"
	"github.com/stretchr/testify/assert"
)

func TestIsNullish(t *testing.T) {
	for _, v := range []string{"", " ", "nan", "None", "NaT", "<NA>", " nan "} {
		assert.True(t, normalize.IsNullish(v), v)
	}
	for _, v := range []string{"0", "NaN", "none", "-", "x"} {
		assert.False(t, normalize.IsNullish(v), v)
	}
	assert.Equal(t, "", normalize.Null("NaT"))
	assert.Equal(t, "abc", normalize.Null("abc"))
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		msg, in, res string
	}{
		{"integer", "123", "123"},
		{"leading zeros", "000123", "123"},
		{"integral float", "7.0", "7"},
		{"integral float with comma", "7,00", "7"},
		{"fraction with comma", "12,50", "12.5"},
		{"fraction", "0.25", "0.25"},
		{"negative", "-3.10", "-3.1"},
		{"exponent", "1e3", "1000"},
		{"exponent at limit", "1e30", "1000000000000000000000000000000"},
		{"huge exponent kept", "1e100000000", "1e100000000"},
		{"huge negative exponent kept", "1e-2147483000", "1e-2147483000"},
		{"surrounding spaces", " 42 ", "42"},
		{"text kept", "ABC-1", "ABC-1"},
		{"text with comma kept as is", "1,234.5", "1,234.5"},
		{"date kept", "2024-01-15", "2024-01-15"},
		{"null token", "nan", ""},
		{"NaT token", "NaT", ""},
		{"empty", "", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, normalize.Numeric(v.in), v.msg)
	}
}

func TestParseDecimal(t *testing.T) {
	d, ok := normalize.ParseDecimal("12,5")
	assert.True(t, ok)
	assert.Equal(t, "12.5", d.String())

	for _, v := range []string{"1e31", "1E+2147483647", "5e-31", "abc", ""} {
		_, ok = normalize.ParseDecimal(v)
		assert.False(t, ok, v)
	}
}

func TestNumericSeriesIdempotent(t *testing.T) {
	series := [][]string{
		{"1", "01", "1.0", "1,5", "abc", "", "None", "<NA>"},
		{"1e2", "-0.0", "3.14159", "12 345", "007,10"},
		{"nan", "NaT", "x,y", "0", "0.0", "10.50"},
		{"1e999999", "1E+3", "+5", "1e-7"},
	}
	for _, s := range series {
		once := normalize.NumericSeries(s)
		twice := normalize.NumericSeries(once)
		assert.Equal(t, once, twice)
		assert.Len(t, once, len(s))
	}
}

func TestNumericSeriesDoesNotMutateInput(t *testing.T) {
	in := []string{"01", "2,0"}
	_ = normalize.NumericSeries(in)
	assert.Equal(t, []string{"01", "2,0"}, in)
}

func TestStripLeadingZeros(t *testing.T) {
	tests := []struct {
		in, res string
	}{
		{"0100", "100"},
		{"0007", "7"},
		{"100", "100"},
		{"000", "0"},
		{"0", "0"},
		{"", "0"},
		{"0A1", "A1"},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, normalize.StripLeadingZeros(v.in), v.in)
	}
}

func TestStripTrailingZeroOnce(t *testing.T) {
	tests := []struct {
		in, res string
	}{
		{"12340", "1234"},
		{"12300", "1230"},
		{"100", "10"},
		{"10", "1"},
		{"0", "0"},
		{"1234", "1234"},
		{"", ""},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, normalize.StripTrailingZeroOnce(v.in), v.in)
	}
}

func TestStripTrailingZeroOnceRemovesOneCharacter(t *testing.T) {
	for _, v := range []string{"10", "100", "1000", "98760", "00", "A0"} {
		res := normalize.StripTrailingZeroOnce(v)
		assert.Len(t, res, len(v)-1, v)
		assert.Equal(t, v[:len(v)-1], res, v)
	}
}

func TestJoinKey(t *testing.T) {
	tests := []struct {
		msg, in, res string
	}{
		{"plain", "1234", "1234"},
		{"float rendering", "1234.0", "1234"},
		{"thousands comma", "1,234", "1234"},
		{"spaces", "  1234 ", "1234"},
		{"spaces around float", " 1234.0 ", "1234"},
		{"empty", "", "0"},
		{"nan", "nan", "0"},
		{"only one suffix removed", "12.0.0", "12.0"},
		{"text kept", "T-100", "T-100"},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, normalize.JoinKey(v.in), v.msg)
	}
}
