package enrich

import (
	"fmt"
	"strings"

	"github.com/Jeysshonb/Validador-nomina/pkg/errcode"
	"github.com/gnames/gn"
)

// SchemaMismatchError is returned when the reconciled table or the store
// reference lacks a column the join depends on.
func SchemaMismatchError(
	tableName string,
	missing []string,
	columns int,
) error {
	msg := `Store enrichment cannot start

<em>Table:</em> %s (%d columns)
<em>Missing:</em> %s

<em>How to fix:</em>
  1. For the reconciled table use the CSV written by 'validador validate'
  2. For the store reference use the sheet with Tienda and Alias columns`

	list := strings.Join(missing, ", ")
	vars := []any{tableName, columns, list}

	return &gn.Error{
		Code: errcode.SchemaMismatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"%s: table %s (%d columns) misses columns: %s",
			stage, tableName, columns, list,
		),
	}
}

// IntegrityViolationError is returned when the enriched table does not
// have the row count of the reconciled table.
func IntegrityViolationError(expected, got int) error {
	msg := `Store join changed the number of rows

<em>Reconciled rows:</em> %d
<em>Enriched rows:</em> %d

No output was written.`

	vars := []any{expected, got}

	return &gn.Error{
		Code: errcode.IntegrityViolationError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"%s: expected %d rows, got %d",
			stage, expected, got,
		),
	}
}
