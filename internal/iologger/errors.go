package iologger

import (
	"fmt"
	"runtime"

	"github.com/Jeysshonb/Validador-nomina/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateLogFileError is returned when the log file cannot be opened.
func CreateLogFileError(path string, append bool, err error) error {
	mode := "create"
	if append {
		mode = "append to"
	}
	pc, _, _, _ := runtime.Caller(1)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot %s log file <em>%s</em>",
		Vars: []any{mode, path},
		Err: fmt.Errorf("from %s: %s log file %s: %w",
			runtime.FuncForPC(pc).Name(), mode, path, err),
	}
}
