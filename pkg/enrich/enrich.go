// Package enrich attaches store attributes to a reconciled absence table.
//
// The store reference is joined by cost center. Its store code carries a
// spurious trailing zero, which is removed before the code is written to
// value_tienda and before it is used as a join key.
package enrich

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Jeysshonb/Validador-nomina/pkg/normalize"
	"github.com/Jeysshonb/Validador-nomina/pkg/schema"
	"github.com/Jeysshonb/Validador-nomina/pkg/table"
)

const stage = "enrich"

// maxExamples limits unmatched cost centers and warnings kept in Report.
const maxExamples = 20

// Report describes the outcome of the store enrichment.
type Report struct {
	// Rows is the row count of the enriched table.
	Rows int `json:"rows" yaml:"rows"`
	// StoreRows is the row count of the store reference.
	StoreRows int `json:"store_rows" yaml:"store_rows"`

	// MatchedByStoreCode counts rows joined by the corrected store code,
	// MatchedByCostKey counts rows joined by the myCECO fallback.
	MatchedByStoreCode int `json:"matched_by_store_code" yaml:"matched_by_store_code"`
	MatchedByCostKey   int `json:"matched_by_cost_key" yaml:"matched_by_cost_key"`

	// WithStoreCode and WithStoreName count rows with non-empty
	// value_tienda and nombre_tienda after the join.
	WithStoreCode        int     `json:"with_store_code" yaml:"with_store_code"`
	WithStoreCodePercent float64 `json:"with_store_code_percent" yaml:"with_store_code_percent"`
	WithStoreName        int     `json:"with_store_name" yaml:"with_store_name"`
	WithStoreNamePercent float64 `json:"with_store_name_percent" yaml:"with_store_name_percent"`

	// FallbackFilled counts store names taken from the fallback column.
	FallbackFilled int `json:"fallback_filled" yaml:"fallback_filled"`

	// CostCenters is the number of distinct cost centers of the reconciled
	// table. UnmatchedCostCenters of them found no store, the first ones
	// are kept in UnmatchedExamples.
	CostCenters          int      `json:"cost_centers" yaml:"cost_centers"`
	UnmatchedCostCenters int      `json:"unmatched_cost_centers" yaml:"unmatched_cost_centers"`
	UnmatchedExamples    []string `json:"unmatched_examples,omitempty" yaml:"unmatched_examples,omitempty"`

	// DuplicateStoreKeys counts repeated join keys of the store reference.
	// Only the first row of a key takes part in the join.
	DuplicateStoreKeys int      `json:"duplicate_store_keys" yaml:"duplicate_store_keys"`
	Warnings           []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Enrich left-joins the reconciled table with the store reference.
//
// The result has exactly the rows of reconciled, in the same order. Store
// columns found in the reference (see schema.StoreColumns) are added or
// overwritten; rows without a store get empty values. An empty store
// name is filled from the descripcion1 column, which is then dropped.
// Columns are finally reordered by schema.CanonicalOrder.
func Enrich(reconciled, stores *table.Table) (*table.Table, Report, error) {
	rep := Report{StoreRows: stores.Len()}

	rt := table.New(normalize.Header(reconciled.Header), reconciled.Rows)
	st := table.New(normalize.Header(stores.Header), stores.Rows)

	if !rt.Has(schema.CostCenter) {
		return nil, rep, SchemaMismatchError(
			"reconciled", []string{schema.CostCenter}, rt.Width(),
		)
	}

	ref, err := prepareStores(st)
	if err != nil {
		return nil, rep, err
	}
	rep.DuplicateStoreKeys = ref.duplicates
	rep.Warnings = ref.warnings

	ccIdx := rt.Index(schema.CostCenter)
	matches := make([]int, rt.Len())
	seen := make(map[string]struct{})
	unmatched := make(map[string]struct{})
	for i, row := range rt.Rows {
		k := normalize.JoinKey(row[ccIdx])
		seen[k] = struct{}{}
		if s, ok := ref.byCode[k]; ok {
			matches[i] = s
			rep.MatchedByStoreCode++
			continue
		}
		if s, ok := ref.byCostKey[k]; ok {
			matches[i] = s
			rep.MatchedByCostKey++
			continue
		}
		matches[i] = -1
		if _, ok := unmatched[k]; !ok {
			unmatched[k] = struct{}{}
			if len(rep.UnmatchedExamples) < maxExamples {
				rep.UnmatchedExamples = append(rep.UnmatchedExamples, k)
			}
		}
	}
	rep.CostCenters = len(seen)
	rep.UnmatchedCostCenters = len(unmatched)

	// fallback values of the reconciled table, if it carries them
	ownFallback := rt.Column(schema.StoreFallback)
	rt.Drop(schema.StoreFallback)

	for j, col := range ref.header {
		if col == schema.StoreFallback {
			continue
		}
		vals := make([]string, rt.Len())
		for i, s := range matches {
			if s >= 0 {
				vals[i] = ref.rows[s][j]
			}
		}
		// lengths always match
		_ = rt.SetColumn(col, vals)
	}

	rep.FallbackFilled = fillStoreNames(rt, ref, matches, ownFallback)

	rt.Map(normalize.Null)
	res := rt.Reorder(schema.CanonicalOrder)

	if res.Len() != reconciled.Len() {
		return nil, rep, IntegrityViolationError(reconciled.Len(), res.Len())
	}

	rep.Rows = res.Len()
	rep.WithStoreCode = countFilled(res.Column(schema.StoreCode))
	rep.WithStoreName = countFilled(res.Column(schema.StoreName))
	rep.WithStoreCodePercent = percent(rep.WithStoreCode, rep.Rows)
	rep.WithStoreNamePercent = percent(rep.WithStoreName, rep.Rows)
	return res, rep, nil
}

// storeRef is the store reference prepared for the join.
type storeRef struct {
	// header holds output names of the selected store columns.
	header []string
	// rows holds selected values, value_tienda already corrected.
	rows [][]string

	byCode    map[string]int
	byCostKey map[string]int

	duplicates int
	warnings   []string
}

// prepareStores selects and renames store columns, corrects store codes
// and builds the deduplicated join indices.
func prepareStores(st *table.Table) (*storeRef, error) {
	var srcIdx []int
	res := &storeRef{
		byCode:    make(map[string]int),
		byCostKey: make(map[string]int),
	}
	for _, sc := range schema.StoreColumns {
		for _, l := range sc.Labels {
			if idx := st.Index(l); idx >= 0 {
				res.header = append(res.header, sc.Name)
				srcIdx = append(srcIdx, idx)
				break
			}
		}
	}

	var missing []string
	for _, col := range []string{schema.StoreCode, schema.StoreName} {
		if !slices.Contains(res.header, col) {
			missing = append(missing, storeLabel(col))
		}
	}
	if len(missing) > 0 {
		return nil, SchemaMismatchError("stores", missing, st.Width())
	}

	codeIdx := slices.Index(res.header, schema.StoreCode)
	costIdx := st.Index(schema.StoreCostKey)

	res.rows = make([][]string, st.Len())
	for i, row := range st.Rows {
		r := make([]string, len(srcIdx))
		for j, idx := range srcIdx {
			r[j] = row[idx]
		}
		// commas in store codes are digit grouping, as in join keys
		code := normalize.Numeric(strings.ReplaceAll(r[codeIdx], ",", ""))
		r[codeIdx] = normalize.StripTrailingZeroOnce(code)
		res.rows[i] = r

		res.index(res.byCode, normalize.JoinKey(r[codeIdx]), i, "Tienda")
		if costIdx >= 0 {
			res.index(res.byCostKey, normalize.JoinKey(row[costIdx]), i, "myCECO")
		}
	}
	return res, nil
}

// index adds a row to a join index unless its key is already there.
func (s *storeRef) index(idx map[string]int, key string, row int, name string) {
	if first, ok := idx[key]; ok {
		s.duplicates++
		if len(s.warnings) >= maxExamples {
			return
		}
		s.warnings = append(s.warnings, fmt.Sprintf(
			"store %s %s repeats in row %d, row %d is used",
			name, key, row+2, first+2,
		))
		return
	}
	idx[key] = row
}

// fillStoreNames copies the fallback description into empty store names.
// The store reference description is preferred over one carried by the
// reconciled table.
func fillStoreNames(
	rt *table.Table,
	ref *storeRef,
	matches []int,
	ownFallback []string,
) int {
	refIdx := slices.Index(ref.header, schema.StoreFallback)
	if refIdx < 0 && ownFallback == nil {
		return 0
	}

	names := rt.Column(schema.StoreName)
	var count int
	for i, name := range names {
		if !normalize.IsNullish(name) {
			continue
		}
		var fb string
		if refIdx >= 0 && matches[i] >= 0 {
			fb = ref.rows[matches[i]][refIdx]
		}
		if normalize.IsNullish(fb) && ownFallback != nil {
			fb = ownFallback[i]
		}
		if normalize.IsNullish(fb) {
			continue
		}
		names[i] = fb
		count++
	}
	_ = rt.SetColumn(schema.StoreName, names)
	return count
}

// storeLabel returns the store sheet label an output column comes from.
func storeLabel(col string) string {
	for _, sc := range schema.StoreColumns {
		if sc.Name == col {
			return sc.Labels[0]
		}
	}
	return col
}

func countFilled(vals []string) int {
	var res int
	for _, v := range vals {
		if v != "" {
			res++
		}
	}
	return res
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}
