package cmd

import (
	"strings"

	"github.com/Jeysshonb/Validador-nomina/pkg/lifecycle"
	"github.com/Jeysshonb/Validador-nomina/pkg/reconcile"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

func comma(n int) string {
	return humanize.Comma(int64(n))
}

// printResult shows statistics of a finished operation.
func printResult(res lifecycle.Result) {
	if rep := res.Reconcile; rep != nil {
		gn.Info(
			"Validation (<em>%s</em>): <em>%s</em> rows, "+
				"<em>%s</em> matched (%.1f%%)",
			rep.Strategy, comma(rep.Rows), comma(rep.Matched), rep.MatchedPercent,
		)
		if rep.Strategy == reconcile.StrategyRecency {
			gn.Info("Rows from report: <em>%s</em>, from base: <em>%s</em>",
				comma(rep.FromReport), comma(rep.FromBase))
		} else {
			gn.Info("Updated 'modificado el': <em>%s</em>, 'modificado por': <em>%s</em>",
				comma(rep.UpdatedModifiedAt), comma(rep.UpdatedModifiedBy))
		}
		for _, v := range rep.RenamedColumns {
			gn.Warn("Duplicate column renamed: <warn>%s</warn>", v)
		}
	}
	if res.Validated != "" {
		gn.Info("Validated file: <em>%s</em>", res.Validated)
	}

	if rep := res.Enrich; rep != nil {
		gn.Info(
			"Stores: <em>%s</em> of <em>%s</em> rows have a store name (%.1f%%)",
			comma(rep.WithStoreName), comma(rep.Rows), rep.WithStoreNamePercent,
		)
		gn.Info("Cost centers without store: <em>%s</em> of <em>%s</em>",
			comma(rep.UnmatchedCostCenters), comma(rep.CostCenters))
		if len(rep.UnmatchedExamples) > 0 {
			gn.Warn("Unmatched cost centers: <warn>%s</warn>",
				strings.Join(rep.UnmatchedExamples, ", "))
		}
		if rep.DuplicateStoreKeys > 0 {
			gn.Warn("Store reference has <warn>%s</warn> repeated keys, first rows are used",
				comma(rep.DuplicateStoreKeys))
		}
	}
	if res.Enriched != "" {
		gn.Info("Enriched file: <em>%s</em>", res.Enriched)
	}

	for _, v := range res.Summaries {
		gn.Info("Run summary: <em>%s</em>", v)
	}
	gn.Info("Done in <em>%s</em>", gnfmt.TimeString(res.Duration.Seconds()))
}
