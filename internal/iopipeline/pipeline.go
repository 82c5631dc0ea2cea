// Package iopipeline implements lifecycle.Pipeline. It reads input files,
// calls the reconcile and enrich packages and writes the results.
// This is an impure I/O package.
package iopipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Jeysshonb/Validador-nomina/internal/ioexport"
	"github.com/Jeysshonb/Validador-nomina/internal/iofs"
	"github.com/Jeysshonb/Validador-nomina/internal/iosheet"
	app "github.com/Jeysshonb/Validador-nomina/pkg"
	"github.com/Jeysshonb/Validador-nomina/pkg/config"
	"github.com/Jeysshonb/Validador-nomina/pkg/enrich"
	"github.com/Jeysshonb/Validador-nomina/pkg/lifecycle"
	"github.com/Jeysshonb/Validador-nomina/pkg/reconcile"
	"github.com/Jeysshonb/Validador-nomina/pkg/table"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// ValidatedName is the base name of CSV files created by Validate.
	ValidatedName = "validation_report_45"
	// EnrichedName is the base name of CSV files created by Stores.
	EnrichedName = ValidatedName + "_con_tiendas"

	// timestampFormat is appended to generated output names.
	timestampFormat = "20060102_150405"
)

// input roles used in logs and summaries
const (
	rolePrimary    = "primary"
	roleSecondary  = "secondary"
	roleStores     = "stores"
	roleReconciled = "reconciled"
)

type pipeline struct {
	cfg *config.Config
	// now is replaced in tests.
	now func() time.Time
}

// New creates a Pipeline that takes file paths and output settings from
// cfg.
func New(cfg *config.Config) lifecycle.Pipeline {
	return &pipeline{cfg: cfg, now: time.Now}
}

// run keeps the state of a single operation.
type run struct {
	id      string
	command string
	started time.Time
	log     *slog.Logger
	inputs  []ioexport.Input
	res     lifecycle.Result
}

type source struct {
	role, path string
}

func (p *pipeline) newRun(command string) *run {
	id := uuid.NewString()
	return &run{
		id:      id,
		command: command,
		started: p.now(),
		log:     slog.With("run_id", id, "command", command),
		res:     lifecycle.Result{RunID: id},
	}
}

// Validate implements lifecycle.Pipeline.
func (p *pipeline) Validate(ctx context.Context) (lifecycle.Result, error) {
	r := p.newRun("validate")
	in := p.cfg.Input

	tables, err := p.load(ctx, r,
		source{rolePrimary, in.PrimaryPath},
		source{roleSecondary, in.SecondaryPath},
	)
	if err != nil {
		return r.res, err
	}

	validated, err := p.reconcile(ctx, r, tables[0], tables[1])
	if err != nil {
		return r.res, err
	}

	path := p.outputPath(in.OutputPath, ValidatedName, r.started)
	if err = p.write(ctx, r, path, validated); err != nil {
		return r.res, err
	}
	r.res.Validated = path

	return p.finish(r, path)
}

// Stores implements lifecycle.Pipeline.
func (p *pipeline) Stores(ctx context.Context) (lifecycle.Result, error) {
	r := p.newRun("stores")
	in := p.cfg.Input

	tables, err := p.load(ctx, r,
		source{roleReconciled, in.ReconciledPath},
		source{roleStores, in.StoresPath},
	)
	if err != nil {
		return r.res, err
	}

	enriched, err := p.enrich(ctx, r, tables[0], tables[1])
	if err != nil {
		return r.res, err
	}

	path := p.outputPath(in.OutputPath, EnrichedName, r.started)
	if err = p.write(ctx, r, path, enriched); err != nil {
		return r.res, err
	}
	r.res.Enriched = path

	return p.finish(r, path)
}

// Run implements lifecycle.Pipeline. The validated CSV always gets a
// generated name in the output directory; OutputPath, if given, names
// the enriched CSV.
func (p *pipeline) Run(ctx context.Context) (lifecycle.Result, error) {
	r := p.newRun("run")
	in := p.cfg.Input

	tables, err := p.load(ctx, r,
		source{rolePrimary, in.PrimaryPath},
		source{roleSecondary, in.SecondaryPath},
		source{roleStores, in.StoresPath},
	)
	if err != nil {
		return r.res, err
	}

	validated, err := p.reconcile(ctx, r, tables[0], tables[1])
	if err != nil {
		return r.res, err
	}

	validatedPath := p.outputPath("", ValidatedName, r.started)
	if err = p.write(ctx, r, validatedPath, validated); err != nil {
		return r.res, err
	}
	r.res.Validated = validatedPath

	enriched, err := p.enrich(ctx, r, validated, tables[2])
	if err != nil {
		return r.res, err
	}

	path := p.outputPath(in.OutputPath, EnrichedName, r.started)
	if err = p.write(ctx, r, path, enriched); err != nil {
		return r.res, err
	}
	r.res.Enriched = path

	return p.finish(r, path)
}

// load reads input files concurrently. Tables are returned in the order
// of sources.
func (p *pipeline) load(
	ctx context.Context,
	r *run,
	sources ...source,
) ([]*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, CancelledError("loading inputs", err)
	}

	res := make([]*table.Table, len(sources))
	g, gCtx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return CancelledError("loading "+src.role, err)
			}
			start := time.Now()
			t, err := iosheet.ReadFile(src.path)
			if err != nil {
				return err
			}
			r.log.Info("Input loaded",
				"role", src.role,
				"path", src.path,
				"rows", t.Len(),
				"columns", t.Width(),
				"duration", gnfmt.TimeString(time.Since(start).Seconds()),
			)
			res[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.log.Error("Cannot load inputs", "error", err)
		return nil, err
	}

	for i, src := range sources {
		r.inputs = append(r.inputs, ioexport.NewInput(src.role, src.path, res[i]))
	}
	return res, nil
}

func (p *pipeline) reconcile(
	ctx context.Context,
	r *run,
	primary, secondary *table.Table,
) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, CancelledError("reconciliation", err)
	}

	strategy, err := reconcile.ParseStrategy(p.cfg.Reconcile.Strategy)
	if err != nil {
		return nil, err
	}

	r.log.Info("Reconciling extracts", "strategy", strategy)
	res, rep, err := reconcile.Run(strategy, primary, secondary)
	if err != nil {
		r.log.Error("Reconciliation failed", "error", err)
		return nil, err
	}
	r.log.Info("Extracts reconciled",
		"rows", rep.Rows,
		"matched", rep.Matched,
		"updated_modified_at", rep.UpdatedModifiedAt,
		"updated_modified_by", rep.UpdatedModifiedBy,
	)
	for _, v := range rep.RenamedColumns {
		r.log.Warn("Duplicate column renamed", "rename", v)
	}

	r.res.Reconcile = &rep
	return res, nil
}

func (p *pipeline) enrich(
	ctx context.Context,
	r *run,
	reconciled, stores *table.Table,
) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, CancelledError("store enrichment", err)
	}

	r.log.Info("Enriching with stores", "store_rows", stores.Len())
	res, rep, err := enrich.Enrich(reconciled, stores)
	if err != nil {
		r.log.Error("Store enrichment failed", "error", err)
		return nil, err
	}
	r.log.Info("Stores attached",
		"rows", rep.Rows,
		"with_store_name", rep.WithStoreName,
		"unmatched_cost_centers", rep.UnmatchedCostCenters,
	)
	for _, v := range rep.Warnings {
		r.log.Warn("Store reference issue", "warning", v)
	}

	r.res.Enrich = &rep
	return res, nil
}

// outputPath returns path if it is given, or a timestamped name in the
// output directory.
func (p *pipeline) outputPath(path, name string, ts time.Time) string {
	if path != "" {
		return path
	}
	file := fmt.Sprintf("%s_%s.csv", name, ts.Format(timestampFormat))
	return filepath.Join(p.cfg.Output.Dir, file)
}

func (p *pipeline) write(
	ctx context.Context,
	r *run,
	path string,
	t *table.Table,
) error {
	if err := ctx.Err(); err != nil {
		return CancelledError("writing "+filepath.Base(path), err)
	}
	if err := iofs.EnsureOutputDir(path); err != nil {
		return err
	}
	if err := ioexport.WriteCSV(path, t, p.cfg.Output.WithProgress); err != nil {
		r.log.Error("Cannot write output", "path", path, "error", err)
		return err
	}
	r.log.Info("Output written", "path", path, "rows", t.Len())
	return nil
}

// finish writes the run summary next to the final output.
func (p *pipeline) finish(r *run, output string) (lifecycle.Result, error) {
	r.res.Duration = p.now().Sub(r.started)
	if !p.cfg.Output.WithSummary {
		return r.res, nil
	}

	s := ioexport.Summary{
		RunID:     r.id,
		Command:   r.command,
		Version:   app.Version,
		StartedAt: r.started,
		Duration:  gnfmt.TimeString(r.res.Duration.Seconds()),
		Inputs:    r.inputs,
		Output:    output,
		Reconcile: r.res.Reconcile,
		Enrich:    r.res.Enrich,
	}
	path, err := ioexport.WriteSummary(output, p.cfg.Output.SummaryFormat, s)
	if err != nil {
		return r.res, err
	}
	r.res.Summaries = append(r.res.Summaries, path)
	r.log.Info("Summary written", "path", path)
	return r.res, nil
}
