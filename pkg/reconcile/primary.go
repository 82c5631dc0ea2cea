package reconcile

import (
	"slices"

	"github.com/Jeysshonb/Validador-nomina/pkg/normalize"
	"github.com/Jeysshonb/Validador-nomina/pkg/schema"
	"github.com/Jeysshonb/Validador-nomina/pkg/table"
)

const stagePrimary = "reconcile"

// Reconcile merges the secondary extract into the primary one using the
// primary-base strategy.
//
// The result has exactly the rows of primary, in the same order. For a
// primary row whose composite key matches a secondary row, the audit
// fields (modificado_el, modificado_por) are replaced by non-empty
// secondary values; every other field stays as it was. A composite key
// repeated in secondary makes the match ambiguous and the call fails
// before joining.
//
// Column names of the result are canonical and values are finalized
// with Finalize.
func Reconcile(
	primary, secondary *table.Table,
) (*table.Table, Report, error) {
	res, rep, err := mergePrimary(primary, secondary)
	if err != nil {
		return nil, rep, err
	}
	res = Finalize(res)
	// one output row per primary row, after merge and finalization
	if res.Len() != primary.Len() {
		return nil, rep, IntegrityViolationError(
			stagePrimary, primary.Len(), res.Len(),
		)
	}
	rep.Rows = res.Len()
	rep.Columns = res.Width()
	return res, rep, nil
}

// mergePrimary performs the primary-base join without finalizing values.
func mergePrimary(
	primaryRaw, secondaryRaw *table.Table,
) (*table.Table, Report, error) {
	rep := Report{
		Strategy:      StrategyPrimary,
		PrimaryRows:   primaryRaw.Len(),
		SecondaryRows: secondaryRaw.Len(),
	}

	primary, renamedP := canonical(primaryRaw)
	secondary, renamedS := canonical(secondaryRaw)
	rep.RenamedColumns = append(renamedP, renamedS...)

	if miss := primary.Missing(schema.KeyFields...); len(miss) > 0 {
		return nil, rep, SchemaMismatchError(
			stagePrimary, "primary", miss, primary.Width(),
		)
	}
	required := slices.Concat(schema.KeyFields, schema.AuditFields)
	if miss := secondary.Missing(required...); len(miss) > 0 {
		return nil, rep, SchemaMismatchError(
			stagePrimary, "secondary", miss, secondary.Width(),
		)
	}

	lookup, err := uniqueIndex(secondary)
	if err != nil {
		return nil, rep, err
	}

	// primary without audit columns gets empty ones
	for _, f := range schema.AuditFields {
		if !primary.Has(f) {
			_ = primary.SetColumn(f, make([]string, primary.Len()))
		}
	}

	pKey := keyIndexes(primary)
	pAudit := make([]int, len(schema.AuditFields))
	sAudit := make([]int, len(schema.AuditFields))
	for i, f := range schema.AuditFields {
		pAudit[i] = primary.Index(f)
		sAudit[i] = secondary.Index(f)
	}
	updated := make([]int, len(schema.AuditFields))

	for _, row := range primary.Rows {
		sIdx, ok := lookup[compositeKey(row, pKey)]
		if !ok {
			continue
		}
		rep.Matched++
		sRow := secondary.Rows[sIdx]
		for i := range schema.AuditFields {
			v := sRow[sAudit[i]]
			if normalize.IsNullish(v) {
				continue
			}
			row[pAudit[i]] = v
			updated[i]++
		}
	}

	rep.UpdatedModifiedAt = updated[0]
	rep.UpdatedModifiedBy = updated[1]
	rep.MatchedPercent = percent(rep.Matched, rep.PrimaryRows)
	return primary, rep, nil
}

// uniqueIndex maps composite keys of the secondary table to row
// positions. It fails if any key occurs more than once.
func uniqueIndex(secondary *table.Table) (map[string]int, error) {
	idxs := keyIndexes(secondary)
	res := make(map[string]int, secondary.Len())
	dups := make(map[string]struct{})
	var example string
	for i, row := range secondary.Rows {
		k := compositeKey(row, idxs)
		if _, ok := res[k]; ok {
			if len(dups) == 0 {
				example = displayKey(k)
			}
			dups[k] = struct{}{}
			continue
		}
		res[k] = i
	}
	if len(dups) > 0 {
		return nil, AmbiguousMatchError(
			stagePrimary, len(dups), secondary.Len(), example,
		)
	}
	return res, nil
}
