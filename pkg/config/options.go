package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptReconcileStrategy sets the reconciliation strategy.
// Valid values: "primary", "recency".
func OptReconcileStrategy(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Reconcile.Strategy", s) {
			c.Reconcile.Strategy = s
		}
	}
}

// OptOutputDir sets the directory for output files with generated names.
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.Output.Dir = s
		}
	}
}

// OptOutputWithSummary enables or disables the run summary file.
func OptOutputWithSummary(b bool) Option {
	return func(c *Config) {
		c.Output.WithSummary = b
	}
}

// OptOutputSummaryFormat sets the format of the run summary.
// Valid values: "yaml", "json".
func OptOutputSummaryFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.SummaryFormat", s) {
			c.Output.SummaryFormat = s
		}
	}
}

// OptOutputWithProgress enables or disables the progress bar.
func OptOutputWithProgress(b bool) Option {
	return func(c *Config) {
		c.Output.WithProgress = b
	}
}

// OptInputPrimaryPath sets the Reporte 45 file.
// Runtime-only field - not in ToOptions().
func OptInputPrimaryPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Primary File", s) {
			c.Input.PrimaryPath = s
		}
	}
}

// OptInputSecondaryPath sets the diagnostics base file.
// Runtime-only field - not in ToOptions().
func OptInputSecondaryPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Secondary File", s) {
			c.Input.SecondaryPath = s
		}
	}
}

// OptInputStoresPath sets the store reference file.
// Runtime-only field - not in ToOptions().
func OptInputStoresPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Stores File", s) {
			c.Input.StoresPath = s
		}
	}
}

// OptInputReconciledPath sets the CSV file produced by validation.
// Runtime-only field - not in ToOptions().
func OptInputReconciledPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Validated File", s) {
			c.Input.ReconciledPath = s
		}
	}
}

// OptInputOutputPath sets an explicit output file instead of a generated
// name. Runtime-only field - not in ToOptions().
func OptInputOutputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output File", s) {
			c.Input.OutputPath = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
