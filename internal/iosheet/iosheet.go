// Package iosheet reads spreadsheet and CSV files into tables.
//
// The first row of the first worksheet is the header. Cells are returned
// as text: numbers keep the precision they have in the file and
// date-formatted cells are rendered as yyyy-mm-dd (with hh:mm:ss when the
// value has a time part). Rows without any value are skipped.
package iosheet

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jeysshonb/Validador-nomina/pkg/table"
)

// Format is the file format of a tabular input.
type Format int

const (
	FormatUnknown Format = iota
	FormatXLSX
	FormatXLS
	FormatCSV
)

// String returns the usual file extension of the format.
func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatXLS:
		return "xls"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// FormatOf detects the format by file extension.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	case ".csv", ".txt":
		return FormatCSV
	default:
		return FormatUnknown
	}
}

// ReadFile reads the table stored in a file. A missing file gives
// InputNotFoundError, anything that cannot be read as a table gives
// ParseFailureError.
func ReadFile(path string) (*table.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, InputNotFoundError(path, err)
	}
	if info.IsDir() {
		return nil, InputNotFoundError(path, errors.New("path is a directory"))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, InputNotFoundError(path, err)
	}
	defer f.Close()

	return Read(f, path)
}

// Read reads a table from r. The name is used to detect the format and in
// error messages; it can be an uploaded file name.
func Read(r io.Reader, name string) (*table.Table, error) {
	switch FormatOf(name) {
	case FormatXLSX:
		return readXLSX(r, name)
	case FormatXLS:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, ParseFailureError(name, "read error", err)
		}
		return readXLS(bytes.NewReader(data), name)
	case FormatCSV:
		return readCSV(r, name)
	default:
		return nil, ParseFailureError(
			name, "unsupported file extension",
			errors.New("unknown format"),
		)
	}
}

// fromRows turns a grid of cells into a table using the first non-empty
// row as the header.
func fromRows(rows [][]string, name string) (*table.Table, error) {
	var data [][]string
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		data = append(data, row)
	}
	if len(data) == 0 {
		return nil, ParseFailureError(
			name, "no header row", errors.New("empty sheet"),
		)
	}

	header := make([]string, len(data[0]))
	for i, v := range data[0] {
		header[i] = strings.TrimSpace(v)
	}
	// values beyond the header get generated column names
	width := len(header)
	for _, row := range data[1:] {
		width = max(width, len(row))
	}
	for len(header) < width {
		header = append(header, "")
	}
	return table.New(header, data[1:]), nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
