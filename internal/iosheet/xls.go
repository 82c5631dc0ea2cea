package iosheet

import (
	"errors"
	"io"

	"github.com/Jeysshonb/Validador-nomina/pkg/table"
	"github.com/extrame/xls"
)

// maxXLSRows limits rows read from a legacy workbook.
const maxXLSRows = 1_000_000

func readXLS(r io.ReadSeeker, name string) (*table.Table, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, ParseFailureError(name, "not a valid xls workbook", err)
	}
	if wb.NumSheets() == 0 {
		return nil, ParseFailureError(
			name, "no worksheet found", errors.New("empty workbook"),
		)
	}
	rows := wb.ReadAllCells(maxXLSRows)
	return fromRows(rows, name)
}
