// Package language normalizes stream language tags and language codes that
// appear in filter configuration.
//
// Evaluation compares codes literally after lowercasing, so this package
// never rewrites a configured code into another form. It only extracts tags,
// supplies the "und" default, and produces display names and validity hints
// for CLI output and config checks.
package language
