// Package reconcile merges two absence extracts that describe the same
// records into one table.
//
// Two strategies exist. StrategyPrimary, the production default, keeps
// every row of the primary extract (Reporte 45) and only refreshes its
// audit fields from the secondary extract (base de diagnósticos).
// StrategyRecency is the historical alternate: it outer-joins both
// extracts and, per matched pair, keeps the row that was modified most
// recently, recording the provenance in the fuente_datos column.
//
// The package is pure: inputs are never modified and no I/O happens.
package reconcile

import (
	"strings"

	"github.com/Jeysshonb/Validador-nomina/pkg/normalize"
	"github.com/Jeysshonb/Validador-nomina/pkg/schema"
	"github.com/Jeysshonb/Validador-nomina/pkg/table"
)

// Strategy selects how two extracts are merged.
type Strategy string

const (
	// StrategyPrimary keeps the primary row set and updates audit fields.
	StrategyPrimary Strategy = "primary"
	// StrategyRecency picks the most recently modified row per key.
	// It is kept as an alternate to the primary strategy.
	StrategyRecency Strategy = "recency"
)

// ParseStrategy converts a name to a Strategy. An empty name gives
// StrategyPrimary.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyPrimary, "":
		return StrategyPrimary, nil
	case StrategyRecency:
		return StrategyRecency, nil
	default:
		return "", UnknownStrategyError(s)
	}
}

// Report describes the outcome of a reconciliation. It is returned
// instead of being printed so callers decide how to present it.
type Report struct {
	Strategy Strategy `json:"strategy" yaml:"strategy"`

	// PrimaryRows is the row count of the primary (or report) extract.
	PrimaryRows int `json:"primary_rows" yaml:"primary_rows"`
	// SecondaryRows is the row count of the secondary (or base) extract.
	SecondaryRows int `json:"secondary_rows" yaml:"secondary_rows"`

	// Rows and Columns describe the resulting table.
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`

	// Matched counts result rows that found a counterpart by composite key.
	Matched int `json:"matched" yaml:"matched"`
	// MatchedPercent is Matched relative to PrimaryRows.
	MatchedPercent float64 `json:"matched_percent" yaml:"matched_percent"`

	// UpdatedModifiedAt and UpdatedModifiedBy count primary rows whose
	// audit fields were taken from the secondary extract.
	UpdatedModifiedAt int `json:"updated_modified_at,omitempty" yaml:"updated_modified_at,omitempty"`
	UpdatedModifiedBy int `json:"updated_modified_by,omitempty" yaml:"updated_modified_by,omitempty"`

	// FromReport and FromBase count rows by provenance (recency only).
	FromReport int `json:"from_report,omitempty" yaml:"from_report,omitempty"`
	FromBase   int `json:"from_base,omitempty" yaml:"from_base,omitempty"`

	// RenamedColumns lists duplicated raw labels and their new names.
	RenamedColumns []string `json:"renamed_columns,omitempty" yaml:"renamed_columns,omitempty"`
}

// Run reconciles two extracts with the given strategy. For
// StrategyRecency the primary is treated as the report extract and the
// secondary as the base extract.
func Run(
	s Strategy,
	primary, secondary *table.Table,
) (*table.Table, Report, error) {
	switch s {
	case StrategyPrimary, "":
		return Reconcile(primary, secondary)
	case StrategyRecency:
		return RecencyPick(secondary, primary)
	default:
		return nil, Report{}, UnknownStrategyError(string(s))
	}
}

// Finalize normalizes values of a reconciled table: numeric fields are
// rendered canonically, zero-padded class codes lose their padding and
// null-ish cells become empty. It returns a new table.
func Finalize(t *table.Table) *table.Table {
	res := t.Clone()
	for _, col := range res.Header {
		vals := res.Column(col)
		changed := false
		if schema.IsNumericField(col) {
			vals = normalize.NumericSeries(vals)
			changed = true
		}
		if schema.IsLeadingZeroField(col) {
			for i, v := range vals {
				if normalize.IsNullish(v) {
					continue
				}
				vals[i] = normalize.StripLeadingZeros(v)
			}
			changed = true
		}
		if changed {
			// lengths always match
			_ = res.SetColumn(col, vals)
		}
	}
	res.Map(normalize.Null)
	return res
}

// canonical returns a copy of a raw extract with canonical unique column
// names, and the list of renamed duplicated labels.
func canonical(raw *table.Table) (*table.Table, []string) {
	renamed := normalize.Renamed(raw.Header)
	return table.New(normalize.Header(raw.Header), raw.Rows), renamed
}

// keyIndexes returns positions of the composite key columns.
func keyIndexes(t *table.Table) []int {
	res := make([]int, len(schema.KeyFields))
	for i, f := range schema.KeyFields {
		res[i] = t.Index(f)
	}
	return res
}

// compositeKey builds a comparable key of a row. Values are normalized
// so that "00123", "123" and "123,0" match each other, as they do when
// the spreadsheet stores them as numbers.
func compositeKey(row []string, idxs []int) string {
	parts := make([]string, len(idxs))
	for i, idx := range idxs {
		parts[i] = normalize.Numeric(strings.TrimSpace(row[idx]))
	}
	return strings.Join(parts, "\x1f")
}

// displayKey renders a composite key for messages.
func displayKey(key string) string {
	return "(" + strings.ReplaceAll(key, "\x1f", ", ") + ")"
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}
