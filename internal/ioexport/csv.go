// Package ioexport writes result tables and run summaries to disk.
package ioexport

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/Jeysshonb/Validador-nomina/pkg/table"
	"github.com/cheggaaa/pb/v3"
)

// utf8BOM makes spreadsheet programs open the CSV as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the table to path as a comma separated UTF-8 file with
// BOM. Rows go to a temporary file in the same directory which is renamed
// to path only after everything is written, so a failed run never leaves
// a partial file behind. The parent directory must exist.
func WriteCSV(path string, t *table.Table, withProgress bool) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".validador-*.csv.tmp")
	if err != nil {
		return WriteFileError(path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	var bar *pb.ProgressBar
	if withProgress && t.Len() > 0 {
		bar = pb.Full.Start(t.Len())
		bar.Set("prefix", filepath.Base(path)+" ")
		bar.Set(pb.CleanOnFinish, true)
	}

	err = write(tmp, t, bar)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		_ = tmp.Close()
		cleanup()
		return WriteFileError(path, err)
	}
	if err = tmp.Close(); err != nil {
		cleanup()
		return WriteFileError(path, err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		cleanup()
		return WriteFileError(path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		cleanup()
		return WriteFileError(path, err)
	}
	return nil
}

// Write writes the table as CSV with BOM to w.
func Write(w io.Writer, t *table.Table) error {
	return write(w, t, nil)
}

func write(w io.Writer, t *table.Table, bar *pb.ProgressBar) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(bw)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}
