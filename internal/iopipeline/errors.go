package iopipeline

import (
	"fmt"

	"github.com/Jeysshonb/Validador-nomina/pkg/errcode"
	"github.com/gnames/gn"
)

// CancelledError creates an error for when a pipeline operation is
// cancelled between stages.
func CancelledError(stage string, err error) error {
	msg := "Operation was cancelled before <em>%s</em>"
	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  msg,
		Vars: []any{stage},
		Err:  fmt.Errorf("cancelled before %s: %w", stage, err),
	}
}
