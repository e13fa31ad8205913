// Package logging assembles structured slog loggers and formatting helpers used
// across streamgate.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so rule evaluation and copy code
// automatically tag log lines with the rule, file, and invocation ID. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Logs never go to stdout: the host adapter owns stdout for its responses.
package logging
