package cmd

import (
	"github.com/Jeysshonb/Validador-nomina/internal/iopipeline"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
func getRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Validate and attach stores in one go",
		Long: `Validate Reporte 45 and attach store data in one go.

The three input files are read concurrently. The validated CSV is
written to the output directory, the enriched CSV goes to --output or
to the output directory as well.`,
		Example: `  validador run -p REPORTE_45.xlsx -s BASE.xlsx -t TIENDAS.xlsx
  validador run -p r45.xlsx -s base.xlsx -t tiendas.xlsx --output-dir resultados`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runAll(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addPathFlags(runCmd, primaryFlag, secondaryFlag, storesFlag, outputFlag)
	requirePaths(runCmd, primaryFlag, secondaryFlag, storesFlag)
	addStrategyFlag(runCmd)
	addOutputFlags(runCmd)

	return runCmd
}

func runAll(cmd *cobra.Command) error {
	cfg.Update(flagOptions(
		cmd, primaryFlag, secondaryFlag, storesFlag, outputFlag,
	))

	res, err := iopipeline.New(cfg).Run(cmd.Context())
	if err != nil {
		return err
	}
	printResult(res)
	return nil
}
