package iosheet

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/Jeysshonb/Validador-nomina/pkg/table"
	"github.com/gnames/gnlib"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func readCSV(r io.Reader, name string) (*table.Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, ParseFailureError(name, "read error", err)
	}
	b = bytes.TrimPrefix(b, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(b))
	cr.Comma = sniffDelimiter(b)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, ParseFailureError(name, "malformed CSV", err)
	}
	for _, row := range rows {
		for j, v := range row {
			row[j] = gnlib.FixUtf8(v)
		}
	}
	return fromRows(rows, name)
}

// sniffDelimiter picks ';' over ',' when the first line has more of them,
// as spreadsheets with a decimal comma export that way.
func sniffDelimiter(b []byte) rune {
	line := b
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		line = b[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
