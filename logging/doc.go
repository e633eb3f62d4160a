// Package logging builds the slog.Logger used by the application and the cfgq tool.
// JSON output is the default; the text format is meant for terminals.
package logging
