package reconcile_test

import (
	"testing"
	"time"

	"github.com/Jeysshonb/Validador-nomina/pkg/reconcile"
	"github.com/stretchr/testify/assert"
)

func TestParseModifiedAt(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		msg string
		in  string
		res time.Time
		ok  bool
	}{
		{"day first slash", "15/01/2024", day(2024, 1, 15), true},
		{"day first short", "5/1/2024", day(2024, 1, 5), true},
		{"day first dash with time", "15-01-2024 13:45", day(2024, 1, 15), true},
		{"day first dots", "15.01.2024", day(2024, 1, 15), true},
		{"iso", "2024-01-15", day(2024, 1, 15), true},
		{"iso with time", "2024-01-15 23:59:59", day(2024, 1, 15), true},
		{"serial", "45306", day(2024, 1, 15), true},
		{"serial with time", "45306.75", day(2024, 1, 15), true},
		{"serial with comma", "45306,5", day(2024, 1, 15), true},
		{"serial epoch", "1", day(1899, 12, 31), true},
		{"zero serial", "0", time.Time{}, false},
		{"huge exponent", "1e100000000", time.Time{}, false},
		{"serial past 9999", "3e6", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"NaT", "NaT", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
		{"month out of range", "15/13/2024", time.Time{}, false},
	}

	for _, v := range tests {
		res, ok := reconcile.ParseModifiedAt(v.in)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}
