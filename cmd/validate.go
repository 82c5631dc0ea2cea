package cmd

import (
	"github.com/Jeysshonb/Validador-nomina/internal/iopipeline"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getValidateCmd returns the validate command.
func getValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Reconcile Reporte 45 with the diagnostics base",
		Long: `Reconcile Reporte 45 with the diagnostics base.

This command:
  1. Reads both extracts and normalizes their column names
  2. Matches records by personnel number, ID number, absence class
     and validity dates
  3. Keeps every Reporte 45 row and takes 'modificado el' and
     'modificado por' from the base where a match has values
  4. Writes the validated CSV and a run summary

With --strategy recency both extracts are outer-joined and the most
recently modified row of every matched pair is kept.`,
		Example: `  validador validate -p REPORTE_45.xlsx -s BASE.xlsx
  validador validate -p REPORTE_45.xlsx -s BASE.xlsx -o validado.csv
  validador validate -p REPORTE_45.xlsx -s BASE.xlsx --strategy recency`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runValidate(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addPathFlags(validateCmd, primaryFlag, secondaryFlag, outputFlag)
	requirePaths(validateCmd, primaryFlag, secondaryFlag)
	addStrategyFlag(validateCmd)
	addOutputFlags(validateCmd)

	return validateCmd
}

func runValidate(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd, primaryFlag, secondaryFlag, outputFlag))

	gn.Info("Validating <em>%s</em> against <em>%s</em>",
		cfg.Input.PrimaryPath, cfg.Input.SecondaryPath)

	res, err := iopipeline.New(cfg).Validate(cmd.Context())
	if err != nil {
		return err
	}
	printResult(res)
	return nil
}
