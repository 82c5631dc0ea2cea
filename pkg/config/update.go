package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Input).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	s = c.Reconcile.Strategy
	if s != "" {
		res = append(res, OptReconcileStrategy(s))
	}

	s = c.Output.Dir
	if s != "" {
		res = append(res, OptOutputDir(s))
	}
	s = c.Output.SummaryFormat
	if s != "" {
		res = append(res, OptOutputSummaryFormat(s))
	}
	res = append(res,
		OptOutputWithSummary(c.Output.WithSummary),
		OptOutputWithProgress(c.Output.WithProgress),
	)
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

var enums = map[string][]string{
	"Reconcile.Strategy":   {"primary", "recency"},
	"Output.SummaryFormat": {"yaml", "json"},
	"Log.Level":            {"debug", "info", "warn", "error"},
	"Log.Format":           {"json", "text", "tint"},
	"Log.Destination":      {"file", "stderr", "stdout"},
}

func isValidEnum(name, val string) bool {
	data := make(map[string]struct{})
	for _, v := range enums[name] {
		data[v] = struct{}{}
	}
	if _, ok := data[val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(data))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
