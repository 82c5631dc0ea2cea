// Package lifecycle defines the operations exposed to the CLI. Their
// implementations live in internal I/O packages.
package lifecycle

import (
	"context"
	"time"

	"github.com/Jeysshonb/Validador-nomina/pkg/enrich"
	"github.com/Jeysshonb/Validador-nomina/pkg/reconcile"
)

// Pipeline runs the two processing steps over files named in the
// configuration.
type Pipeline interface {
	// Validate reconciles Reporte 45 with the diagnostics base and writes
	// the validated CSV.
	Validate(ctx context.Context) (Result, error)

	// Stores enriches a validated CSV with store attributes.
	Stores(ctx context.Context) (Result, error)

	// Run performs Validate and Stores in one go, writing both CSV files.
	Run(ctx context.Context) (Result, error)
}

// Result describes files written by a pipeline operation.
type Result struct {
	// RunID tags log records and summaries of the operation.
	RunID string

	// Validated and Enriched are paths of written CSV files. A path is
	// empty when its step did not run.
	Validated string
	Enriched  string

	// Summaries are paths of written run summaries.
	Summaries []string

	Reconcile *reconcile.Report
	Enrich    *enrich.Report

	Duration time.Duration
}
