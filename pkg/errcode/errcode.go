package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteConfigError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	InputNotFoundError
	ParseFailureError

	// Reconciliation and enrichment errors
	SchemaMismatchError
	IntegrityViolationError
	AmbiguousMatchError
	UnknownStrategyError

	// Pipeline errors
	CancelledError
)
