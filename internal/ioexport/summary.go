package ioexport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Jeysshonb/Validador-nomina/pkg/enrich"
	"github.com/Jeysshonb/Validador-nomina/pkg/reconcile"
	"github.com/Jeysshonb/Validador-nomina/pkg/table"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"gopkg.in/yaml.v3"
)

// Summary describes one run of a command. It is written next to the
// output CSV.
type Summary struct {
	RunID     string    `json:"run_id"     yaml:"run_id"`
	Command   string    `json:"command"    yaml:"command"`
	Version   string    `json:"version"    yaml:"version"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	// Duration is human readable, for example "1m23s".
	Duration string  `json:"duration" yaml:"duration"`
	Inputs   []Input `json:"inputs"   yaml:"inputs"`
	Output   string  `json:"output"   yaml:"output"`

	Reconcile *reconcile.Report `json:"reconcile,omitempty" yaml:"reconcile,omitempty"`
	Enrich    *enrich.Report    `json:"enrich,omitempty"    yaml:"enrich,omitempty"`
}

// Input describes a file read by the run.
type Input struct {
	Role    string `json:"role"    yaml:"role"`
	Path    string `json:"path"    yaml:"path"`
	Rows    int    `json:"rows"    yaml:"rows"`
	Columns int    `json:"columns" yaml:"columns"`
	// Fingerprint is a UUID v5 of the table content. Runs over the same
	// data have the same fingerprint whatever the file name.
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// NewInput describes a table read from path.
func NewInput(role, path string, t *table.Table) Input {
	return Input{
		Role:        role,
		Path:        path,
		Rows:        t.Len(),
		Columns:     t.Width(),
		Fingerprint: Fingerprint(t),
	}
}

// Fingerprint returns a UUID v5 computed from the header and all cells of
// the table.
func Fingerprint(t *table.Table) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Header, "\x1f"))
	for _, row := range t.Rows {
		sb.WriteByte('\x1e')
		sb.WriteString(strings.Join(row, "\x1f"))
	}
	return gnuuid.New(sb.String()).String()
}

// SummaryPath returns the summary file name for a CSV output.
func SummaryPath(csvPath, format string) string {
	base := strings.TrimSuffix(csvPath, filepath.Ext(csvPath))
	return base + "_resumen." + format
}

// WriteSummary encodes the summary as 'yaml' or 'json' and writes it next
// to the CSV output. It returns the path of the summary file.
func WriteSummary(csvPath, format string, s Summary) (string, error) {
	path := SummaryPath(csvPath, format)

	var data []byte
	var err error
	switch format {
	case "json":
		enc := gnfmt.GNjson{Pretty: true}
		data, err = enc.Encode(s)
	case "yaml":
		data, err = yaml.Marshal(s)
	default:
		err = fmt.Errorf("unknown summary format '%s'", format)
	}
	if err != nil {
		return "", WriteFileError(path, err)
	}

	if err = os.WriteFile(path, data, 0644); err != nil {
		return "", WriteFileError(path, err)
	}
	return path, nil
}
