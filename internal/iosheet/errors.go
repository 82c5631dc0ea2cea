package iosheet

import (
	"fmt"
	"runtime"

	"github.com/Jeysshonb/Validador-nomina/pkg/errcode"
	"github.com/gnames/gn"
)

// InputNotFoundError is returned when an input file does not exist or is
// a directory.
func InputNotFoundError(path string, err error) error {
	msg := `Input file <em>%s</em> is not found

Check the path and try again.`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: input %s not found: %w", fn.Name(), path, err),
	}
}

// ParseFailureError is returned when an input cannot be read as a table.
func ParseFailureError(name, reason string, err error) error {
	msg := `Cannot read <em>%s</em> as a table

<em>Reason:</em> %s

Supported formats are .xlsx, .xls and .csv with the header in the
first row.`
	vars := []any{name, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseFailureError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s (%s): %w", fn.Name(), name, reason, err),
	}
}
