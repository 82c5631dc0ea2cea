package reconcile

import (
	"strings"
	"time"

	"github.com/Jeysshonb/Validador-nomina/pkg/normalize"
)

// excelEpoch is day zero of spreadsheet serial dates (1900 date system
// with the leap-year bug folded in).
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// maxSerial is the serial number of 9999-12-31.
const maxSerial = 2958465

// dateLayouts are tried in order. Day-first layouts accept one or two
// digit days and months.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
	"2-1-2006",
	"2.1.2006 15:04:05",
	"2.1.2006 15:04",
	"2.1.2006",
}

// ParseModifiedAt converts a modification timestamp to a date. It
// accepts ISO dates, day-first textual dates and spreadsheet serial
// numbers. The time of day is discarded. The boolean is false for empty
// or unparseable values.
func ParseModifiedAt(v string) (time.Time, bool) {
	s := strings.TrimSpace(v)
	if normalize.IsNullish(s) {
		return time.Time{}, false
	}

	if d, ok := normalize.ParseDecimal(s); ok {
		days := d.Floor().IntPart()
		if days <= 0 || days > maxSerial {
			return time.Time{}, false
		}
		return excelEpoch.AddDate(0, 0, int(days)), true
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
