package reconcile

import (
	"time"

	"github.com/Jeysshonb/Validador-nomina/pkg/schema"
	"github.com/Jeysshonb/Validador-nomina/pkg/table"
)

const stageRecency = "recency"

// Selected tells which extract supplies all fields of a result row.
type Selected uint8

const (
	SelectedReport Selected = iota
	SelectedBase
)

// String returns the provenance value written to fuente_datos.
func (s Selected) String() string {
	if s == SelectedBase {
		return schema.SourceBase
	}
	return schema.SourceReport
}

// pick is one row of the recency result: a choice and the rows it refers
// to. A row index is -1 when that extract has no counterpart.
type pick struct {
	sel    Selected
	report int
	base   int
}

// RecencyPick merges the extracts with the recency strategy. It is the
// historical alternate to Reconcile.
//
// Both extracts are outer-joined on the composite key. Repeated keys are
// not collapsed: every matching (report, base) pair gives one row. For a
// pair, the report row wins when its modificado_el is on or after the
// base one, when only the report has a valid date, or when neither has
// one; otherwise the base row wins. A row takes all of its fields from
// one extract.
//
// Columns follow the report order, base-only columns are appended, then
// fuente_datos records the provenance of each row.
func RecencyPick(base, report *table.Table) (*table.Table, Report, error) {
	rep := Report{
		Strategy:      StrategyRecency,
		PrimaryRows:   report.Len(),
		SecondaryRows: base.Len(),
	}

	rt, renamedR := canonical(report)
	bt, renamedB := canonical(base)
	rep.RenamedColumns = append(renamedR, renamedB...)

	if miss := rt.Missing(schema.KeyFields...); len(miss) > 0 {
		return nil, rep, SchemaMismatchError(
			stageRecency, "report", miss, rt.Width(),
		)
	}
	if miss := bt.Missing(schema.KeyFields...); len(miss) > 0 {
		return nil, rep, SchemaMismatchError(
			stageRecency, "base", miss, bt.Width(),
		)
	}

	picks := selectRows(rt, bt)
	if expected := joinSize(rt, bt); len(picks) != expected {
		return nil, rep, IntegrityViolationError(
			stageRecency, expected, len(picks),
		)
	}

	res := applyPicks(rt, bt, picks)
	for _, p := range picks {
		if p.report >= 0 && p.base >= 0 {
			rep.Matched++
		}
		if p.sel == SelectedBase {
			rep.FromBase++
		} else {
			rep.FromReport++
		}
	}

	res = Finalize(res)
	rep.Rows = res.Len()
	rep.Columns = res.Width()
	rep.MatchedPercent = percent(rep.Matched, rep.PrimaryRows)
	return res, rep, nil
}

// joinSize returns the row count of the outer join counted from key
// multiplicities: every key k yields max(1,|R_k|)*max(1,|B_k|) rows.
func joinSize(rt, bt *table.Table) int {
	type count struct{ report, base int }
	counts := make(map[string]*count)
	get := func(k string) *count {
		c, ok := counts[k]
		if !ok {
			c = &count{}
			counts[k] = c
		}
		return c
	}

	rKey := keyIndexes(rt)
	for _, row := range rt.Rows {
		get(compositeKey(row, rKey)).report++
	}
	bKey := keyIndexes(bt)
	for _, row := range bt.Rows {
		get(compositeKey(row, bKey)).base++
	}

	var res int
	for _, c := range counts {
		res += max(1, c.report) * max(1, c.base)
	}
	return res
}

// selectRows computes the choice for every result row once.
func selectRows(rt, bt *table.Table) []pick {
	rKey := keyIndexes(rt)
	bKey := keyIndexes(bt)
	rDates := modifiedDates(rt)
	bDates := modifiedDates(bt)

	baseByKey := make(map[string][]int)
	for i, row := range bt.Rows {
		k := compositeKey(row, bKey)
		baseByKey[k] = append(baseByKey[k], i)
	}

	picks := make([]pick, 0, rt.Len()+bt.Len())
	reportKeys := make(map[string]struct{}, rt.Len())
	for i, row := range rt.Rows {
		k := compositeKey(row, rKey)
		reportKeys[k] = struct{}{}
		group := baseByKey[k]
		if len(group) == 0 {
			picks = append(picks, pick{sel: SelectedReport, report: i, base: -1})
			continue
		}
		for _, b := range group {
			sel := choose(rDates[i], bDates[b])
			picks = append(picks, pick{sel: sel, report: i, base: b})
		}
	}

	for i, row := range bt.Rows {
		if _, ok := reportKeys[compositeKey(row, bKey)]; ok {
			continue
		}
		picks = append(picks, pick{sel: SelectedBase, report: -1, base: i})
	}
	return picks
}

// stamp is a parsed modification date.
type stamp struct {
	t  time.Time
	ok bool
}

func modifiedDates(t *table.Table) []stamp {
	res := make([]stamp, t.Len())
	idx := t.Index(schema.ModifiedAt)
	if idx < 0 {
		return res
	}
	for i, row := range t.Rows {
		res[i].t, res[i].ok = ParseModifiedAt(row[idx])
	}
	return res
}

// choose decides between a matched report row and base row.
func choose(r, b stamp) Selected {
	switch {
	case r.ok && b.ok:
		if r.t.Before(b.t) {
			return SelectedBase
		}
		return SelectedReport
	case b.ok:
		return SelectedBase
	default:
		return SelectedReport
	}
}

// applyPicks builds the result column by column from the computed picks.
func applyPicks(rt, bt *table.Table, picks []pick) *table.Table {
	header := append([]string(nil), rt.Header...)
	for _, col := range bt.Header {
		if !rt.Has(col) {
			header = append(header, col)
		}
	}
	if !rt.Has(schema.Source) && !bt.Has(schema.Source) {
		header = append(header, schema.Source)
	}

	rows := make([][]string, len(picks))
	for i := range rows {
		rows[i] = make([]string, len(header))
	}

	for j, col := range header {
		if col == schema.Source {
			for i, p := range picks {
				rows[i][j] = p.sel.String()
			}
			continue
		}
		rIdx, bIdx := rt.Index(col), bt.Index(col)
		for i, p := range picks {
			switch {
			case p.sel == SelectedReport && rIdx >= 0:
				rows[i][j] = rt.Rows[p.report][rIdx]
			case p.sel == SelectedBase && bIdx >= 0:
				rows[i][j] = bt.Rows[p.base][bIdx]
			}
		}
	}
	return &table.Table{Header: header, Rows: rows}
}
