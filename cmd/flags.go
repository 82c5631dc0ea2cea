package cmd

import (
	"fmt"
	"os"

	app "github.com/Jeysshonb/Validador-nomina/pkg"
	"github.com/Jeysshonb/Validador-nomina/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

// pathFlag describes a string flag that sets an input or output path.
type pathFlag struct {
	name, short, usage string
	opt                func(string) config.Option
}

var (
	primaryFlag = pathFlag{
		"primary", "p", "Reporte 45 file (.xlsx, .xls, .csv)",
		config.OptInputPrimaryPath,
	}
	secondaryFlag = pathFlag{
		"secondary", "s", "diagnostics base file (.xlsx, .xls, .csv)",
		config.OptInputSecondaryPath,
	}
	storesFlag = pathFlag{
		"stores", "t", "store reference file (.xlsx, .xls, .csv)",
		config.OptInputStoresPath,
	}
	reconciledFlag = pathFlag{
		"input", "i", "validated CSV file created by the validate command",
		config.OptInputReconciledPath,
	}
	outputFlag = pathFlag{
		"output", "o", "output CSV file (default: generated name in output dir)",
		config.OptInputOutputPath,
	}
)

// addPathFlags registers path flags on cmd.
func addPathFlags(cmd *cobra.Command, flags ...pathFlag) {
	for _, f := range flags {
		cmd.Flags().StringP(f.name, f.short, "", f.usage)
	}
}

// requirePaths marks flags as required.
func requirePaths(cmd *cobra.Command, flags ...pathFlag) {
	for _, f := range flags {
		_ = cmd.MarkFlagRequired(f.name)
	}
}

// addOutputFlags registers flags shared by all processing commands.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("output-dir", "",
		"directory for files with generated names")
	cmd.Flags().String("summary-format", "",
		"run summary format: yaml or json")
	cmd.Flags().Bool("no-summary", false, "do not write a run summary")
	cmd.Flags().Bool("no-progress", false, "do not show a progress bar")
}

// addStrategyFlag registers the reconciliation strategy flag.
func addStrategyFlag(cmd *cobra.Command) {
	cmd.Flags().String("strategy", "",
		"reconciliation strategy: primary or recency")
}

// flagOptions converts explicitly set flags of cmd to config options.
func flagOptions(cmd *cobra.Command, paths ...pathFlag) []config.Option {
	var res []config.Option
	fs := cmd.Flags()

	for _, f := range paths {
		if fs.Changed(f.name) {
			v, _ := fs.GetString(f.name)
			res = append(res, f.opt(v))
		}
	}

	if fs.Lookup("strategy") != nil && fs.Changed("strategy") {
		v, _ := fs.GetString("strategy")
		res = append(res, config.OptReconcileStrategy(v))
	}
	if fs.Changed("output-dir") {
		v, _ := fs.GetString("output-dir")
		res = append(res, config.OptOutputDir(v))
	}
	if fs.Changed("summary-format") {
		v, _ := fs.GetString("summary-format")
		res = append(res, config.OptOutputSummaryFormat(v))
	}
	if fs.Changed("no-summary") {
		v, _ := fs.GetBool("no-summary")
		res = append(res, config.OptOutputWithSummary(!v))
	}
	if fs.Changed("no-progress") {
		v, _ := fs.GetBool("no-progress")
		res = append(res, config.OptOutputWithProgress(!v))
	}

	return res
}
