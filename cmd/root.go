package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/Jeysshonb/Validador-nomina/internal/iofs"
	"github.com/Jeysshonb/Validador-nomina/internal/iologger"
	app "github.com/Jeysshonb/Validador-nomina/pkg"
	"github.com/Jeysshonb/Validador-nomina/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command when called without any
// subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "validador",
		Short:   "Validador reconciles payroll absence reports",
		Long: `Validador reconciles SAP absence extracts and attaches store data.

Two steps are available:
  - validate: merge Reporte 45 with the diagnostics base, refreshing
    audit fields (modificado el, modificado por)
  - stores: add store code, name, region, zone, city and department
    to a validated file using the store reference
The run command performs both steps.

Inputs can be .xlsx, .xls or .csv files with headers in the first row.
Results are written as UTF-8 CSV files with a run summary next to them.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (VALIDADOR_*)
  3. Config file (~/.config/validador/config.yaml)
  4. Built-in defaults

Examples of environment variables:
  VALIDADOR_LOG_LEVEL               Log level (debug/info/warn/error)
  VALIDADOR_RECONCILE_STRATEGY      primary or recency
  VALIDADOR_OUTPUT_DIR              Directory for generated files`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "validador version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for validador")

	rootCmd.AddCommand(
		getValidateCmd(),
		getStoresCmd(),
		getRunCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"strategy", cfg.Reconcile.Strategy,
		"output_dir", cfg.Output.Dir,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded
// configuration. The log file started by bootstrap is appended to.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). An interrupt cancels the
// running command before its next stage.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := getRootCmd().ExecuteContext(ctx)
	stop()
	_ = iologger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are
	// allowed. These match the fields included in config.ToOptions().
	v.SetEnvPrefix("VALIDADOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Log configuration
	_ = v.BindEnv("log.level", "VALIDADOR_LOG_LEVEL")
	_ = v.BindEnv("log.format", "VALIDADOR_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "VALIDADOR_LOG_DESTINATION")

	// Reconciliation
	_ = v.BindEnv("reconcile.strategy", "VALIDADOR_RECONCILE_STRATEGY")

	// Output
	_ = v.BindEnv("output.dir", "VALIDADOR_OUTPUT_DIR")
	_ = v.BindEnv("output.with_summary", "VALIDADOR_OUTPUT_WITH_SUMMARY")
	_ = v.BindEnv("output.summary_format", "VALIDADOR_OUTPUT_SUMMARY_FORMAT")
	_ = v.BindEnv("output.with_progress", "VALIDADOR_OUTPUT_WITH_PROGRESS")

	v.AutomaticEnv()
}
