package iofs

import (
	"fmt"
	"runtime"

	"github.com/Jeysshonb/Validador-nomina/pkg/errcode"
	"github.com/gnames/gn"
)

// caller returns the name of the function that called an error
// constructor.
func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name()
}

// CreateDirError is returned when a config, log or output directory
// cannot be created. Role names the kind of directory.
func CreateDirError(role, dir string, err error) error {
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  "Cannot create %s directory <em>%s</em>",
		Vars: []any{role, dir},
		Err: fmt.Errorf("from %s: mkdir %s (%s): %w",
			caller(), dir, role, err),
	}
}

// WriteConfigError is returned when the default config file cannot be
// written.
func WriteConfigError(path string, err error) error {
	return &gn.Error{
		Code: errcode.WriteConfigError,
		Msg:  "Cannot write default config to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: write config %s: %w", caller(), path, err),
	}
}

// ReadConfigError is returned when the config file cannot be read or
// decoded.
func ReadConfigError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot load config file <em>%s</em>, fix or remove it",
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: load config %s: %w", caller(), path, err),
	}
}
