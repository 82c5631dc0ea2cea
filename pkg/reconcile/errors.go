package reconcile

import (
	"fmt"
	"strings"

	"github.com/Jeysshonb/Validador-nomina/pkg/errcode"
	"github.com/gnames/gn"
)

// SchemaMismatchError is returned when a table lacks columns required by
// a reconciliation stage.
func SchemaMismatchError(
	stage, tableName string,
	missing []string,
	columns int,
) error {
	msg := `Required columns are missing

<em>Stage:</em> %s
<em>Table:</em> %s (%d columns)
<em>Missing:</em> %s

<em>How to fix:</em>
  1. Check that the right file was given for %s
  2. Verify the header row is the first row of the sheet`

	list := strings.Join(missing, ", ")
	vars := []any{stage, tableName, columns, list, tableName}

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

// AmbiguousMatchError is returned when the secondary table has repeated
// composite keys, so a primary row could match several rows.
func AmbiguousMatchError(
	stage string,
	duplicateKeys, rows int,
	example string,
) error {
	msg := `Secondary extract has repeated composite keys

<em>Stage:</em> %s
<em>Repeated keys:</em> %d (of %d rows)
<em>Example key:</em> %s

<em>How to fix:</em>
  1. Remove duplicated absence records from the secondary extract
  2. Rerun the validation`

	vars := []any{stage, duplicateKeys, rows, example}

	return &gn.Error{
		Code: errcode.AmbiguousMatchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"%s: %d composite keys are repeated in %d secondary rows, e.g. %s",
			stage, duplicateKeys, rows, example,
		),
	}
}

// IntegrityViolationError is returned when a join changes the number of
// rows it must preserve.
func IntegrityViolationError(stage string, expected, got int) error {
	msg := `Row count changed during <em>%s</em>

<em>Expected rows:</em> %d
<em>Result rows:</em> %d

No output was written.`

	vars := []any{stage, expected, got}

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

// UnknownStrategyError is returned for an unsupported strategy name.
func UnknownStrategyError(name string) error {
	msg := `Unknown reconciliation strategy <em>%s</em>

Valid values are:
  * primary
  * recency`

	return &gn.Error{
		Code: errcode.UnknownStrategyError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("unknown reconciliation strategy %q", name),
	}
}
