// Package config provides configuration management for validador.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Log: level, format, destination
//   - Reconcile: strategy
//   - Output: dir, with_summary, summary_format, with_progress
//
// Runtime-only fields (CLI flags only):
//   - Input.PrimaryPath, SecondaryPath, StoresPath, ReconciledPath,
//     OutputPath (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use VALIDADOR_ prefix with underscores for nesting:
//
//	VALIDADOR_LOG_LEVEL=debug
//	VALIDADOR_RECONCILE_STRATEGY=primary
//	VALIDADOR_OUTPUT_DIR=salidas
//	VALIDADOR_OUTPUT_WITH_SUMMARY=false
package config

// Config represents the complete validador configuration.
type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Reconcile contains settings of the reconciliation step.
	Reconcile ReconcileConfig `mapstructure:"reconcile" yaml:"reconcile"`

	// Output contains settings of written results.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Input contains paths given to the current command.
	Input InputConfig `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// ReconcileConfig contains settings of the reconciliation step.
type ReconcileConfig struct {
	// Strategy is 'primary' (Reporte 45 keeps all its rows, audit fields
	// come from the diagnostics base) or 'recency' (the most recently
	// modified row wins, historical behavior).
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
}

// OutputConfig contains settings of written results.
type OutputConfig struct {
	// Dir is the directory for output files with generated names.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// WithSummary enables a run summary written next to each CSV file.
	WithSummary bool `mapstructure:"with_summary" yaml:"with_summary"`

	// SummaryFormat is 'yaml' or 'json'.
	SummaryFormat string `mapstructure:"summary_format" yaml:"summary_format"`

	// WithProgress enables a progress bar while rows are written.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`
}

// InputConfig keeps file paths of the current command. All fields are
// runtime-only.
type InputConfig struct {
	// PrimaryPath is the Reporte 45 spreadsheet.
	PrimaryPath string
	// SecondaryPath is the diagnostics base spreadsheet.
	SecondaryPath string
	// StoresPath is the store reference spreadsheet.
	StoresPath string
	// ReconciledPath is a CSV file created by the validate command.
	ReconciledPath string
	// OutputPath overrides the generated output file name.
	OutputPath string
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		Reconcile: ReconcileConfig{
			Strategy: "primary",
		},
		Output: OutputConfig{
			Dir:           "salidas",
			WithSummary:   true,
			SummaryFormat: "yaml",
			WithProgress:  true,
		},
	}

	return res
}
