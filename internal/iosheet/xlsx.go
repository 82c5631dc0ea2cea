package iosheet

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Jeysshonb/Validador-nomina/pkg/table"
	"github.com/xuri/excelize/v2"
)

// builtInDateFormats are ids of built-in number formats that show a date.
// Time-only formats are not listed, their cells are read raw.
var builtInDateFormats = map[int]struct{}{
	14: {}, 15: {}, 16: {}, 17: {}, 22: {},
	27: {}, 28: {}, 29: {}, 30: {}, 31: {}, 32: {}, 33: {}, 34: {}, 35: {}, 36: {},
	50: {}, 51: {}, 52: {}, 53: {}, 54: {}, 55: {}, 56: {}, 57: {}, 58: {},
}

// literals of custom number formats: quoted text, escaped characters and
// bracketed sections such as colors or locales.
var fmtLiterals = regexp.MustCompile(`"[^"]*"|\\.|\[[^\]]*\]`)

func readXLSX(r io.Reader, name string) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ParseFailureError(name, "not a valid xlsx workbook", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ParseFailureError(
			name, "no worksheet found", errors.New("empty workbook"),
		)
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, ParseFailureError(name, "cannot read rows", err)
	}

	var date1904 bool
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	dr := dateReader{
		f:        f,
		sheet:    sheet,
		date1904: date1904,
		styles:   make(map[int]bool),
	}
	for i, row := range rows {
		for j, v := range row {
			row[j] = dr.render(i, j, v)
		}
	}
	return fromRows(rows, name)
}

// dateReader renders date-formatted cells of a worksheet.
type dateReader struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	// styles caches whether a style id shows a date
	styles map[int]bool
}

// render returns the text of the cell at zero-based row i, column j.
func (d dateReader) render(i, j int, v string) string {
	serial, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || serial <= 0 {
		return v
	}
	cell, err := excelize.CoordinatesToCellName(j+1, i+1)
	if err != nil {
		return v
	}
	styleID, err := d.f.GetCellStyle(d.sheet, cell)
	if err != nil || !d.isDateStyle(styleID) {
		return v
	}
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return v
	}
	return formatDate(t)
}

func (d dateReader) isDateStyle(id int) bool {
	if res, ok := d.styles[id]; ok {
		return res
	}
	var res bool
	style, err := d.f.GetStyle(id)
	if err == nil && style != nil {
		if style.CustomNumFmt != nil {
			res = isDateFormat(*style.CustomNumFmt)
		} else {
			_, res = builtInDateFormats[style.NumFmt]
		}
	}
	d.styles[id] = res
	return res
}

// isDateFormat reports whether a custom number format shows a date.
func isDateFormat(format string) bool {
	s := strings.ToLower(fmtLiterals.ReplaceAllString(format, ""))
	return strings.ContainsAny(s, "yd")
}

func formatDate(t time.Time) string {
	t = t.Round(time.Second)
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.DateTime)
}
