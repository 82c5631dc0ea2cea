package ioexport

import (
	"fmt"
	"runtime"

	"github.com/Jeysshonb/Validador-nomina/pkg/errcode"
	"github.com/gnames/gn"
)

func WriteFileError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write file %s: %w",
			fn.Name(), path, err),
	}
}
