package cmd

import (
	"github.com/Jeysshonb/Validador-nomina/internal/iopipeline"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getStoresCmd returns the stores command.
func getStoresCmd() *cobra.Command {
	storesCmd := &cobra.Command{
		Use:   "stores",
		Short: "Attach store data to a validated file",
		Long: `Attach store data to a validated file.

This command:
  1. Reads the validated CSV created by 'validador validate'
  2. Reads the store reference and removes the trailing zero of
     store codes
  3. Joins stores by cost center, falling back to myCECO
  4. Fills empty store names from 'Descripción 1'
  5. Writes the enriched CSV with the same rows as the input`,
		Example: `  validador stores -i salidas/validation_report_45_20240115_080000.csv -t TIENDAS.xlsx`,
		Aliases: []string{"tiendas"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStores(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addPathFlags(storesCmd, reconciledFlag, storesFlag, outputFlag)
	requirePaths(storesCmd, reconciledFlag, storesFlag)
	addOutputFlags(storesCmd)

	return storesCmd
}

func runStores(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd, reconciledFlag, storesFlag, outputFlag))

	gn.Info("Attaching stores from <em>%s</em>", cfg.Input.StoresPath)

	res, err := iopipeline.New(cfg).Stores(cmd.Context())
	if err != nil {
		return err
	}
	printResult(res)
	return nil
}
